package engine

// ============================================================================
// DIAGNOSTICS — Missing-data reports
// ============================================================================
// Read-only. Nothing is corrected or dropped; callers only get counts.
// ============================================================================

// ColumnMissing is the missing-value count for one column.
type ColumnMissing struct {
	Column  string `json:"column"`
	Missing int    `json:"missing"`
}

// MissingCounts returns, in header order, every column with at least one
// missing value.
func MissingCounts(view RecordView) []ColumnMissing {
	var out []ColumnMissing
	for _, key := range view.DimensionKeys() {
		var n int
		for i := 0; i < view.Len(); i++ {
			if view.Missing(i, key) {
				n++
			}
		}
		if n > 0 {
			out = append(out, ColumnMissing{Column: key, Missing: n})
		}
	}
	return out
}

// CountIncomplete counts records missing at least one of columns.
func CountIncomplete(view RecordView, columns []string) (int, error) {
	for _, c := range columns {
		if !HasDimension(view, c) {
			return 0, unknownColumn(c)
		}
	}
	return countMissingAny(view, columns), nil
}

// CountMissingWhere narrows view with filters, then counts the matching
// records that miss at least one of columns. matched is the size of the
// filtered view, so flagged ≤ matched always holds.
func CountMissingWhere(view RecordView, filters Filters, columns []string) (matched, flagged int, err error) {
	if err := checkFilterColumns(view, filters); err != nil {
		return 0, 0, err
	}
	for _, c := range columns {
		if !HasDimension(view, c) {
			return 0, 0, unknownColumn(c)
		}
	}
	filtered := ApplyFilters(view, filters)
	return filtered.Len(), countMissingAny(filtered, columns), nil
}

func countMissingAny(view RecordView, columns []string) int {
	var n int
	for i := 0; i < view.Len(); i++ {
		for _, c := range columns {
			if view.Missing(i, c) {
				n++
				break
			}
		}
	}
	return n
}
