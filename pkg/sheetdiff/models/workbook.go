// Package models defines data structures for workbook comparison.
package models

// WorkbookData represents an ordered collection of named sheets.
type WorkbookData struct {
	// Name is the workbook file name (no path).
	Name string `json:"name"`
	// Sheets holds the sheets in workbook order.
	Sheets []SheetData `json:"sheets"`
}

// SheetNames returns the sheet names in workbook order.
func (w *WorkbookData) SheetNames() []string {
	names := make([]string, 0, len(w.Sheets))
	for _, sheet := range w.Sheets {
		names = append(names, sheet.Name)
	}
	return names
}
