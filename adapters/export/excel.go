package export

import (
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"masssize/domain/relation"
	"masssize/internal/errors"
	"masssize/ports"
)

// SheetName is the single summary sheet of the workbook
const SheetName = "Summary"

// Excel writes an analysis report as an xlsx workbook
type Excel struct {
	log zerolog.Logger
}

// NewExcel creates an xlsx exporter
func NewExcel(log zerolog.Logger) *Excel {
	return &Excel{log: log}
}

// Export writes the run summary to path, overwriting any existing file
func (e *Excel) Export(path string, report *ports.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return errors.ExportError(path, err)
	}

	rows := [][]interface{}{
		{"run_id", report.RunID},
		{"catalog", report.CatalogPath},
		{"generated_at", report.GeneratedAt.Format("2006-01-02 15:04:05")},
		{},
		{"stage", "rows"},
		{"catalog", report.TotalRows},
		{"quality cuts", report.QualityRows},
		{"size cut", report.SizeCutRows},
		{"disk-like", report.DiskCount},
		{"spheroid-like", report.SpheroidCount},
		{"unclassified Sersic index", report.Unclassified},
		{},
		{"sample", "alpha", "beta", "pivot", "n"},
		fitRow("all", report.FitAll),
		fitRow("disk", report.FitDisk),
		fitRow("spheroid", report.FitSpheroid),
		{},
		{"scatter_dex", report.ScatterDex},
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.ExportError(path, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return errors.ExportError(path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.ExportError(path, err)
	}
	e.log.Info().Str("path", path).Msg("summary workbook written")
	return nil
}

func fitRow(label string, fit relation.Fit) []interface{} {
	return []interface{}{label, fit.Alpha, fit.Beta, fit.Pivot, fit.N}
}
