package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masssize/domain/relation"
	"masssize/internal/logging"
	"masssize/ports"
)

func sampleSeries(label string) ports.Series {
	return ports.Series{
		Label:   label,
		LogM:    []float64{9.0, 9.5, 10.0, 10.5, 11.0},
		SizeKpc: []float64{1.0, 2.0, 3.5, 6.0, 10.0},
		Fit:     relation.Fit{Alpha: 0.3, Beta: 0.55, Pivot: 10.0, N: 5},
	}
}

func decodable(t *testing.T, path string) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())
}

func TestRenderRelationWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relation.png")

	err := NewPNG(300, logging.Nop()).RenderRelation(path, sampleSeries("Galaxies"))
	require.NoError(t, err)
	decodable(t, path)
}

func TestRenderMorphologyWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "morphology.png")

	err := NewPNG(300, logging.Nop()).RenderMorphology(path, sampleSeries("Disk-like"), sampleSeries("Spheroid-like"))
	require.NoError(t, err)
	decodable(t, path)
}

func TestRenderOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relation.png")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	err := NewPNG(150, logging.Nop()).RenderRelation(path, sampleSeries("Galaxies"))
	require.NoError(t, err)
	decodable(t, path)
}

func TestRenderDPIScalesRaster(t *testing.T) {
	dir := t.TempDir()
	low := filepath.Join(dir, "low.png")
	high := filepath.Join(dir, "high.png")

	require.NoError(t, NewPNG(100, logging.Nop()).RenderRelation(low, sampleSeries("Galaxies")))
	require.NoError(t, NewPNG(300, logging.Nop()).RenderRelation(high, sampleSeries("Galaxies")))

	assert.Greater(t, width(t, high), width(t, low))
}

func width(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width
}

func TestRenderFailsOnUnwritablePath(t *testing.T) {
	err := NewPNG(300, logging.Nop()).RenderRelation(filepath.Join(t.TempDir(), "missing", "relation.png"), sampleSeries("Galaxies"))
	assert.Error(t, err)
}
