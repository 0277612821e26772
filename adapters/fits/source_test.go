package fits

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masssize/domain/catalog"
	"masssize/internal/errors"
	"masssize/internal/logging"
	"masssize/internal/testkit"
)

func TestLoadMissingFileFailsFast(t *testing.T) {
	source := NewSource(logging.Nop())

	_, err := source.Load(context.Background(), filepath.Join(t.TempDir(), "absent.fits"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeCatalogNotFound, errors.GetCode(err))
	assert.Contains(t, err.Error(), "absent.fits")
}

func TestLoadRoundTripsSyntheticCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nsa.fits")
	galaxies := testkit.TenGalaxyScenario()
	require.NoError(t, testkit.WriteFITS(path, galaxies))

	cat, err := NewSource(logging.Nop()).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, len(galaxies), cat.Len())
	for _, name := range catalog.Required {
		_, ok := cat.Column(name)
		assert.True(t, ok, "column %s", name)
	}

	mass := cat.MustColumn(catalog.ColMass)
	size := cat.MustColumn(catalog.ColSize)
	flag := cat.MustColumn(catalog.ColFlag)
	for i, gal := range galaxies {
		if math.IsNaN(gal.Mass) {
			assert.True(t, math.IsNaN(mass[i]), "row %d", i)
		} else {
			assert.Equal(t, gal.Mass, mass[i], "row %d", i)
		}
		assert.Equal(t, gal.Size, size[i], "row %d", i)
		assert.Equal(t, gal.Flag, flag[i], "row %d", i)
	}
}

func TestLoadKeepsAllColumnNamesForInspection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nsa.fits")
	require.NoError(t, testkit.WriteFITS(path, testkit.TenGalaxyScenario()))

	cat, err := NewSource(logging.Nop()).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, catalog.Required, cat.ColumnNames())
}

func TestLoadRejectsNonFITSFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.fits")
	require.NoError(t, os.WriteFile(path, []byte("not a fits file"), 0o644))

	_, err := NewSource(logging.Nop()).Load(context.Background(), path)
	require.Error(t, err)
	assert.Equal(t, errors.CodeCatalogMalformed, errors.GetCode(err))
}
