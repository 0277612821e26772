package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesReferenceAnalysis(t *testing.T) {
	cfg := Default()

	assert.Equal(t, filepath.Join("data", "nsa_v1_0_1.fits"), cfg.Catalog.Path)
	assert.Equal(t, 1.0, cfg.Catalog.QualityFlag)
	assert.Equal(t, 70.0, cfg.Cosmology.H0)
	assert.Equal(t, 0.3, cfg.Cosmology.OmegaM)
	assert.Equal(t, 0.5, cfg.Cuts.MinSizeKpc)
	assert.Equal(t, 2.5, cfg.Cuts.MorphologyThreshold)
	assert.Equal(t, 10.0, cfg.Cuts.MassPivot)
	assert.Equal(t, 300, cfg.Output.DPI)
	assert.Equal(t, "mass_size_relation_fit.png", cfg.Output.RelationPlot)
	assert.Equal(t, "mass_size_relation_morphology.png", cfg.Output.MorphologyPlot)
}

func TestLoadAppliesEnvironmentOverrides(t *testing.T) {
	t.Setenv("NSA_CATALOG", "/data/custom.fits")
	t.Setenv("MASSSIZE_H0", "67.4")
	t.Setenv("MASSSIZE_MIN_SIZE_KPC", "1.0")
	t.Setenv("MASSSIZE_OUT_DIR", "/tmp/figures")
	t.Setenv("MASSSIZE_DPI", "150")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/custom.fits", cfg.Catalog.Path)
	assert.Equal(t, 67.4, cfg.Cosmology.H0)
	assert.Equal(t, 1.0, cfg.Cuts.MinSizeKpc)
	assert.Equal(t, 150, cfg.Output.DPI)
	assert.Equal(t, filepath.Join("/tmp/figures", "mass_size_relation_fit.png"), cfg.Output.RelationPath())
}

func TestLoadRejectsInvalidCosmology(t *testing.T) {
	t.Setenv("MASSSIZE_H0", "-70")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsInvalidOmegaM(t *testing.T) {
	t.Setenv("MASSSIZE_OMEGA_M", "1.5")

	_, err := Load()
	assert.Error(t, err)
}

func TestOutputPathsJoinDir(t *testing.T) {
	out := OutputConfig{Dir: "results", RelationPlot: "a.png", MorphologyPlot: "b.png"}
	assert.Equal(t, filepath.Join("results", "a.png"), out.RelationPath())
	assert.Equal(t, filepath.Join("results", "b.png"), out.MorphologyPath())
}
