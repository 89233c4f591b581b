package models

import "fmt"

// Kind identifies the type of discrepancy a Finding describes.
type Kind int

const (
	// RowMissingInNew is a row key present in the original sheet only.
	RowMissingInNew Kind = iota + 1
	// RowMissingInOld is a row key present in the updated sheet only.
	RowMissingInOld
	// ColumnMissingInOld is a header present in the updated row but not in the original row.
	ColumnMissingInOld
	// ValueChanged is a cell whose text differs between the two sheets.
	ValueChanged
)

func (k Kind) String() string {
	switch k {
	case RowMissingInNew:
		return "row_missing_in_new"
	case RowMissingInOld:
		return "row_missing_in_old"
	case ColumnMissingInOld:
		return "column_missing_in_old"
	case ValueChanged:
		return "value_changed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Finding is one discrepancy between two corresponding sheets.
type Finding struct {
	// Kind is the discrepancy type.
	Kind Kind `json:"kind"`
	// Sheet is the sheet name, set when comparing workbooks.
	Sheet string `json:"sheet,omitempty"`
	// Row is the row key.
	Row string `json:"row"`
	// Header is the column header (column and value findings only).
	Header string `json:"header,omitempty"`
	// Old is the original value (ValueChanged only).
	Old string `json:"old,omitempty"`
	// New is the updated value (ValueChanged only).
	New string `json:"new,omitempty"`
}

// String renders the finding as a report line.
func (f Finding) String() string {
	switch f.Kind {
	case RowMissingInNew:
		return fmt.Sprintf("Row %s not in sheet 2", f.Row)
	case RowMissingInOld:
		return fmt.Sprintf("Row %s not in sheet 1", f.Row)
	case ColumnMissingInOld:
		return fmt.Sprintf("Row %s column '%s' not in original values", f.Row, f.Header)
	case ValueChanged:
		return fmt.Sprintf("* In %s, update '%s' from %s to %s", f.Row, f.Header, f.Old, f.New)
	default:
		return fmt.Sprintf("unknown finding %v for row %s", f.Kind, f.Row)
	}
}
