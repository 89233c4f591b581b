package sheetdiff

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sheetdiff/pkg/sheetdiff/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrEmptySheet indicates a sheet without a header row.
var ErrEmptySheet = parser.ErrEmptySheet

// LoadError represents an error while reading a sheet of a workbook.
type LoadError struct {
	Path      string
	SheetName string
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in %s sheet %q: %v", e.Path, e.SheetName, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, sheetName string, err error) *LoadError {
	return &LoadError{
		Path:      path,
		SheetName: sheetName,
		Err:       err,
	}
}

// StructuralMismatchError reports workbooks whose sheet names differ.
type StructuralMismatchError struct {
	Old []string
	New []string
}

func (e *StructuralMismatchError) Error() string {
	return fmt.Sprintf("cannot compare workbooks: sheet names differ: %v vs %v", e.Old, e.New)
}
