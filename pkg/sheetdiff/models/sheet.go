package models

// SheetData represents the raw grid of a single sheet.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows contains the rows in sheet order. Rows[0] is the header row.
	Rows []Row `json:"rows,omitempty"`
}
