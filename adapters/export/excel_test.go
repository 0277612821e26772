package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"masssize/domain/relation"
	"masssize/internal/logging"
	"masssize/ports"
)

func sampleReport() *ports.Report {
	return &ports.Report{
		RunID:         "run-123",
		CatalogPath:   "data/nsa_v1_0_1.fits",
		GeneratedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		TotalRows:     10,
		QualityRows:   7,
		SizeCutRows:   6,
		DiskCount:     3,
		SpheroidCount: 3,
		Unclassified:  0,
		FitAll:        relation.Fit{Alpha: 0.31, Beta: 0.52, Pivot: 10, N: 6},
		FitDisk:       relation.Fit{Alpha: 0.28, Beta: 0.60, Pivot: 10, N: 3},
		FitSpheroid:   relation.Fit{Alpha: 0.45, Beta: 0.40, Pivot: 10, N: 3},
		ScatterDex:    0.12,
	}
}

func TestExportWritesSummaryWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")

	require.NoError(t, NewExcel(logging.Nop()).Export(path, sampleReport()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	runID, err := f.GetCellValue(SheetName, "B1")
	require.NoError(t, err)
	assert.Equal(t, "run-123", runID)

	sizeCut, err := f.GetCellValue(SheetName, "B8")
	require.NoError(t, err)
	assert.Equal(t, "6", sizeCut)

	fitLabel, err := f.GetCellValue(SheetName, "A14")
	require.NoError(t, err)
	assert.Equal(t, "all", fitLabel)

	alpha, err := f.GetCellValue(SheetName, "B14")
	require.NoError(t, err)
	assert.Equal(t, "0.31", alpha)
}

func TestExportFailsOnUnwritablePath(t *testing.T) {
	err := NewExcel(logging.Nop()).Export(filepath.Join(t.TempDir(), "missing", "summary.xlsx"), sampleReport())
	assert.Error(t, err)
}
