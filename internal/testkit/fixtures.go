package testkit

import (
	"context"
	"os"

	"github.com/astrogo/fitsio"

	"masssize/domain/catalog"
)

// fitsRow mirrors the catalog table layout for fixture files
type fitsRow struct {
	Mass    float64 `fits:"SERSIC_MASS"`
	Size    float64 `fits:"SERSIC_TH50"`
	Flag    int32   `fits:"SERSIC_OK"`
	SersicN float64 `fits:"SERSIC_N"`
	Z       float64 `fits:"Z"`
}

// WriteFITS writes a synthetic galaxy population as a FITS binary table
// in HDU 1, matching the shape the loader expects
func WriteFITS(path string, galaxies []Galaxy) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()

	f, err := fitsio.Create(w)
	if err != nil {
		return err
	}
	defer f.Close()

	phdu, err := fitsio.NewPrimaryHDU(nil)
	if err != nil {
		return err
	}
	if err := f.Write(phdu); err != nil {
		return err
	}

	tbl, err := fitsio.NewTable("NSA", []fitsio.Column{
		{Name: "SERSIC_MASS", Format: "D"},
		{Name: "SERSIC_TH50", Format: "D"},
		{Name: "SERSIC_OK", Format: "J"},
		{Name: "SERSIC_N", Format: "D"},
		{Name: "Z", Format: "D"},
	}, fitsio.BINARY_TBL)
	if err != nil {
		return err
	}
	defer tbl.Close()

	for _, gal := range galaxies {
		row := fitsRow{
			Mass:    gal.Mass,
			Size:    gal.Size,
			Flag:    int32(gal.Flag),
			SersicN: gal.SersicN,
			Z:       gal.Z,
		}
		if err := tbl.Write(&row); err != nil {
			return err
		}
	}

	return f.Write(tbl)
}

// StaticSource serves a prebuilt catalog, standing in for the FITS
// adapter in pipeline tests
type StaticSource struct {
	Catalog *catalog.Catalog
	Err     error
}

// Load returns the configured catalog or error regardless of path
func (s *StaticSource) Load(ctx context.Context, path string) (*catalog.Catalog, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Catalog, nil
}
