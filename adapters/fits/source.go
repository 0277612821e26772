package fits

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/astrogo/fitsio"
	"github.com/rs/zerolog"

	"masssize/domain/catalog"
	"masssize/internal/errors"
)

// Source implements ports.CatalogSource on top of a FITS binary table
type Source struct {
	log zerolog.Logger
}

// NewSource creates a FITS-backed catalog source
func NewSource(log zerolog.Logger) *Source {
	return &Source{log: log}
}

// record mirrors one catalog row; fitsio scans fields by fits tag
type record struct {
	Mass    float64 `fits:"SERSIC_MASS"`
	Size    float64 `fits:"SERSIC_TH50"`
	Flag    int32   `fits:"SERSIC_OK"`
	SersicN float64 `fits:"SERSIC_N"`
	Z       float64 `fits:"Z"`
}

// Load opens the FITS file, verifies the record table in HDU 1 carries the
// required columns, and materializes them into a Catalog. The file handle
// is released on every exit path.
func (s *Source) Load(ctx context.Context, path string) (*catalog.Catalog, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.CatalogNotFound(path)
	}

	r, err := os.Open(path)
	if err != nil {
		return nil, errors.CatalogMalformed(fmt.Sprintf("opening %s", path), err)
	}
	defer r.Close()

	f, err := fitsio.Open(r)
	if err != nil {
		return nil, errors.CatalogMalformed(fmt.Sprintf("parsing FITS structure of %s", path), err)
	}
	defer f.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(f.HDUs()) < 2 {
		return nil, errors.CatalogMalformed(
			fmt.Sprintf("%s has %d HDUs, expected a record table in HDU 1", path, len(f.HDUs())), nil)
	}
	tbl, ok := f.HDU(1).(*fitsio.Table)
	if !ok {
		return nil, errors.CatalogMalformed(fmt.Sprintf("HDU 1 of %s is not a table", path), nil)
	}

	s.logStructure(path, f)

	names := make([]string, 0, tbl.NumCols())
	for _, col := range tbl.Cols() {
		names = append(names, col.Name)
	}
	for _, want := range catalog.Required {
		if !containsFold(names, want) {
			return nil, errors.ColumnMissing(want)
		}
	}

	nrows := int(tbl.NumRows())
	mass := make([]float64, nrows)
	size := make([]float64, nrows)
	flag := make([]float64, nrows)
	sersicN := make([]float64, nrows)
	z := make([]float64, nrows)

	rows, err := tbl.Read(0, tbl.NumRows())
	if err != nil {
		return nil, errors.CatalogMalformed(fmt.Sprintf("reading table rows of %s", path), err)
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		var rec record
		if err := rows.Scan(&rec); err != nil {
			return nil, errors.CatalogMalformed(fmt.Sprintf("scanning row %d of %s", i, path), err)
		}
		mass[i] = rec.Mass
		size[i] = rec.Size
		flag[i] = float64(rec.Flag)
		sersicN[i] = rec.SersicN
		z[i] = rec.Z
		i++
	}
	if err := rows.Err(); err != nil {
		return nil, errors.CatalogMalformed(fmt.Sprintf("iterating rows of %s", path), err)
	}

	cat := catalog.New(names, nrows)
	for name, values := range map[string][]float64{
		catalog.ColMass:    mass,
		catalog.ColSize:    size,
		catalog.ColFlag:    flag,
		catalog.ColSersicN: sersicN,
		catalog.ColZ:       z,
	} {
		if err := cat.AddColumn(name, values); err != nil {
			return nil, errors.CatalogMalformed(fmt.Sprintf("materializing column %s", name), err)
		}
	}

	s.log.Info().
		Str("path", path).
		Int("rows", nrows).
		Int("columns", len(names)).
		Msg("catalog loaded")

	return cat, nil
}

// logStructure mirrors the file-structure summary the analysis prints on
// open: one line per HDU
func (s *Source) logStructure(path string, f *fitsio.File) {
	for i, hdu := range f.HDUs() {
		ev := s.log.Debug().Str("path", path).Int("hdu", i).Str("name", hdu.Name())
		if tbl, ok := hdu.(*fitsio.Table); ok {
			ev = ev.Int64("rows", tbl.NumRows()).Int("cols", tbl.NumCols())
		}
		ev.Msg("catalog structure")
	}
}

func containsFold(names []string, want string) bool {
	for _, n := range names {
		if strings.EqualFold(n, want) {
			return true
		}
	}
	return false
}
