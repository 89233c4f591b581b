package sheetdiff

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/sheetdiff/pkg/sheetdiff/models"
	"github.com/ukaji3/sheetdiff/pkg/sheetdiff/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads every sheet of an xlsx workbook in workbook order.
func Load(path string) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	wb := &models.WorkbookData{Name: filepath.Base(path)}
	for _, sheetName := range f.GetSheetList() {
		rows, err := parser.ReadRows(f, sheetName)
		if err != nil {
			return nil, NewLoadError(path, sheetName, err)
		}
		wb.Sheets = append(wb.Sheets, models.SheetData{
			Name: sheetName,
			Rows: rows,
		})
	}

	return wb, nil
}
