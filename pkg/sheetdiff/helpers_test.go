package sheetdiff

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetdiff/pkg/sheetdiff/models"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves sheets to a temporary xlsx file and returns its path.
// Sheets are created in the order given.
func writeWorkbook(t *testing.T, name string, sheets []models.SheetData) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet.Name))
		} else {
			_, err := f.NewSheet(sheet.Name)
			require.NoError(t, err)
		}
		for r, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := []any(row)
			require.NoError(t, f.SetSheetRow(sheet.Name, cell, &values))
		}
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func collect(findings *[]models.Finding) Reporter {
	return ReporterFunc(func(f models.Finding) {
		*findings = append(*findings, f)
	})
}
