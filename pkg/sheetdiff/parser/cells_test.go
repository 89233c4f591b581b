package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetdiff/pkg/sheetdiff/models"
	"github.com/xuri/excelize/v2"
)

// reopen saves f to a temporary file and opens it again.
func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestReadRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	require.NoError(t, f.SetCellValue(sheetName, "A1", "id"))
	require.NoError(t, f.SetCellValue(sheetName, "B1", "name"))
	require.NoError(t, f.SetCellValue(sheetName, "C1", "email"))
	require.NoError(t, f.SetCellValue(sheetName, "A2", 100))
	require.NoError(t, f.SetCellValue(sheetName, "C2", "a@example.com"))
	require.NoError(t, f.SetCellValue(sheetName, "A3", "007"))

	rows, err := ReadRows(reopen(t, f), sheetName)
	require.NoError(t, err)

	assert.Equal(t, []models.Row{
		{"id", "name", "email"},
		{int64(100), nil, "a@example.com"},
		{"007"},
	}, rows)
}

func TestReadRowsTypedValues(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	when := time.Date(2023, 12, 7, 9, 30, 0, 0, time.UTC)
	require.NoError(t, f.SetCellValue(sheetName, "A1", true))
	require.NoError(t, f.SetCellValue(sheetName, "B1", false))
	require.NoError(t, f.SetCellValue(sheetName, "C1", 1.231))
	require.NoError(t, f.SetCellValue(sheetName, "D1", when))

	rounded, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheetName, "C1", "C1", rounded))

	rows, err := ReadRows(reopen(t, f), sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, true, row[0])
	assert.Equal(t, false, row[1])
	assert.Equal(t, 1.231, row[2])
	assert.Equal(t, "2023-12-07 09:30:00", models.Text(row[3]))
	assert.Equal(t, []string{"True", "False", "1.231", "2023-12-07 09:30:00"}, row.Texts())
}

func TestReadRowsUnknownSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := ReadRows(f, "Missing")
	assert.Error(t, err)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"0.30000000000000004", 0.30000000000000004},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseValue(tt.input), "parseValue(%q)", tt.input)
	}
}

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"yyyy-mm-dd", true},
		{"h:mm:ss", true},
		{"[h]:mm", true},
		{"0.00", false},
		{"General", false},
		{`0.0 "days"`, false},
		{`[Red]#,##0`, false},
		{`#,##0\d`, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, isDateFormatCode(tt.code), "isDateFormatCode(%q)", tt.code)
	}
}

func TestParseISODate(t *testing.T) {
	assert.Equal(t, time.Date(2023, 12, 7, 9, 30, 0, 0, time.UTC), parseISODate("2023-12-07T09:30:00Z"))
	assert.Equal(t, time.Date(2023, 12, 7, 0, 0, 0, 0, time.UTC), parseISODate("2023-12-07"))
	assert.Equal(t, "not a date", parseISODate("not a date"))
}
