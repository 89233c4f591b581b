// Package diff compares keyed tables.
package diff

import (
	"iter"

	"github.com/ukaji3/sheetdiff/pkg/sheetdiff/models"
)

// Tables yields the findings between an original and an updated table.
//
// Rows missing from the updated table come first, in original row order.
// Then, in updated row order, each row yields either a RowMissingInOld
// finding or its column findings in updated header order. Headers that
// exist only in the original table are not reported.
func Tables(before, after *models.Table) iter.Seq[models.Finding] {
	return func(yield func(models.Finding) bool) {
		for _, key := range before.Keys() {
			if after.Has(key) {
				continue
			}
			if !yield(models.Finding{Kind: models.RowMissingInNew, Row: key}) {
				return
			}
		}

		for _, key := range after.Keys() {
			oldRec, ok := before.Get(key)
			if !ok {
				if !yield(models.Finding{Kind: models.RowMissingInOld, Row: key}) {
					return
				}
				continue
			}
			newRec, _ := after.Get(key)
			for _, f := range compareRecords(key, oldRec, newRec) {
				if !yield(f) {
					return
				}
			}
		}
	}
}

func compareRecords(key string, oldRec, newRec *models.Record) []models.Finding {
	var findings []models.Finding
	for _, header := range newRec.Headers() {
		newVal, _ := newRec.Get(header)
		oldVal, ok := oldRec.Get(header)
		switch {
		case !ok:
			findings = append(findings, models.Finding{
				Kind:   models.ColumnMissingInOld,
				Row:    key,
				Header: header,
			})
		case oldVal != newVal:
			findings = append(findings, models.Finding{
				Kind:   models.ValueChanged,
				Row:    key,
				Header: header,
				Old:    oldVal,
				New:    newVal,
			})
		}
	}
	return findings
}
