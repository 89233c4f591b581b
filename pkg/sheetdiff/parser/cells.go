// Package parser reads sheet grids and turns them into keyed tables.
package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/sheetdiff/pkg/sheetdiff/models"
	"github.com/xuri/excelize/v2"
)

// builtInDateFormats lists the built-in number format IDs that display dates or times.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	45: true, 46: true, 47: true,
}

// cellReader converts raw cell text into typed values for one sheet.
type cellReader struct {
	f          *excelize.File
	sheetName  string
	date1904   bool
	dateStyles map[int]bool
}

// ReadRows reads every row of a sheet using the streaming row iterator.
//
// Cells are read without number formatting and typed by their stored kind:
// booleans become bool, numbers int64 or float64, date-formatted numbers
// time.Time and everything else string. Empty cells are returned as nil.
func ReadRows(f *excelize.File, sheetName string) (rows []models.Row, err error) {
	iter, err := f.Rows(sheetName)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := iter.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	cr := &cellReader{
		f:          f,
		sheetName:  sheetName,
		dateStyles: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		cr.date1904 = *props.Date1904
	}

	rowNum := 0
	for iter.Next() {
		rowNum++ // 1-based row index
		cols, err := iter.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, err
		}
		row := make(models.Row, len(cols))
		for colIdx, cellValue := range cols {
			if cellValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			if row[colIdx], err = cr.value(cellName, cellValue); err != nil {
				return nil, err
			}
		}
		rows = append(rows, row)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}

	return rows, nil
}

// value types the raw text of a non-empty cell.
func (cr *cellReader) value(cellName, raw string) (any, error) {
	cellType, err := cr.f.GetCellType(cr.sheetName, cellName)
	if err != nil {
		return nil, err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1", nil
	case excelize.CellTypeDate:
		return parseISODate(raw), nil
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		v := parseValue(raw)
		serial, ok := v.(float64)
		if i, isInt := v.(int64); isInt {
			serial, ok = float64(i), true
		}
		if !ok {
			return v, nil
		}
		isDate, err := cr.isDateCell(cellName)
		if err != nil {
			return nil, err
		}
		if !isDate {
			return v, nil
		}
		t, err := excelize.ExcelDateToTime(serial, cr.date1904)
		if err != nil {
			return v, nil
		}
		return t.Round(time.Millisecond), nil
	default:
		return raw, nil
	}
}

// isDateCell reports whether the cell's number format displays a date or time.
func (cr *cellReader) isDateCell(cellName string) (bool, error) {
	styleID, err := cr.f.GetCellStyle(cr.sheetName, cellName)
	if err != nil {
		return false, err
	}
	if isDate, ok := cr.dateStyles[styleID]; ok {
		return isDate, nil
	}

	style, err := cr.f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	isDate := builtInDateFormats[style.NumFmt]
	if style.CustomNumFmt != nil {
		isDate = isDateFormatCode(*style.CustomNumFmt)
	}
	cr.dateStyles[styleID] = isDate
	return isDate, nil
}

// isDateFormatCode reports whether a custom number format code contains
// date or time tokens. Quoted literals, escaped characters and bracketed
// sections such as [Red] are ignored.
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote := false
	depth := 0
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case c == '"':
			inQuote = true
		case c == '\\':
			i++
		case c == '[':
			depth++
		case c == ']':
			if depth > 0 {
				depth--
			}
		case depth > 0:
		default:
			b.WriteByte(c)
		}
	}
	return strings.ContainsAny(b.String(), "dmyhsDMYHS")
}

// parseISODate parses the ISO 8601 text of a date-typed cell.
// Unparseable text is returned unchanged.
func parseISODate(s string) any {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return s
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
