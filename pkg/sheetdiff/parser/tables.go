package parser

import (
	"errors"

	"github.com/ukaji3/sheetdiff/pkg/sheetdiff/models"
)

// ErrEmptySheet indicates a sheet without a header row.
var ErrEmptySheet = errors.New("sheet has no header row")

// ExtractTable converts a sheet grid into a Table keyed by the first column.
//
// The first row supplies the headers. Every row is padded with the blank
// marker to the width of the widest row, so short rows compare as blank
// cells. Duplicate row keys and duplicate headers overwrite earlier values.
func ExtractTable(sheet models.SheetData) (*models.Table, error) {
	if len(sheet.Rows) == 0 {
		return nil, ErrEmptySheet
	}

	width := findWidth(sheet.Rows)
	headers := padTexts(sheet.Rows[0], width)

	table := models.NewTable()
	for _, row := range sheet.Rows[1:] {
		cells := padTexts(row, width)
		rec := models.NewRecord()
		for i, header := range headers {
			rec.Set(header, cells[i])
		}
		table.Set(rowKey(cells), rec)
	}

	return table, nil
}

// findWidth returns the length of the longest row.
func findWidth(rows []models.Row) int {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	return width
}

// padTexts coerces row to text and pads it with blanks up to width.
func padTexts(row models.Row, width int) []string {
	texts := row.Texts()
	for len(texts) < width {
		texts = append(texts, models.Blank)
	}
	return texts
}

func rowKey(cells []string) string {
	if len(cells) == 0 {
		return models.Blank
	}
	return cells[0]
}
