package sheetdiff

import (
	"fmt"
	"slices"

	"github.com/ukaji3/sheetdiff/pkg/sheetdiff/diff"
	"github.com/ukaji3/sheetdiff/pkg/sheetdiff/models"
	"github.com/ukaji3/sheetdiff/pkg/sheetdiff/parser"
)

// CompareWorkbooks reports the findings of every sheet pair to r.
//
// Both workbooks must have the same sheet names in the same order,
// otherwise a *StructuralMismatchError is returned and nothing is reported.
// Sheets are compared in workbook order and each sheet's findings are
// reported before the next sheet is read.
func CompareWorkbooks(old, updated *models.WorkbookData, r Reporter) error {
	oldNames, newNames := old.SheetNames(), updated.SheetNames()
	if !slices.Equal(oldNames, newNames) {
		return &StructuralMismatchError{Old: oldNames, New: newNames}
	}

	for i := range old.Sheets {
		if err := CompareSheets(old.Sheets[i], updated.Sheets[i], r); err != nil {
			return err
		}
	}
	return nil
}

// CompareSheets reports the findings between two versions of a sheet to r.
func CompareSheets(old, updated models.SheetData, r Reporter) error {
	before, err := parser.ExtractTable(old)
	if err != nil {
		return fmt.Errorf("original sheet %q: %w", old.Name, err)
	}
	after, err := parser.ExtractTable(updated)
	if err != nil {
		return fmt.Errorf("updated sheet %q: %w", updated.Name, err)
	}

	for f := range diff.Tables(before, after) {
		f.Sheet = updated.Name
		r.Report(f)
	}
	return nil
}
