package engine

// ============================================================================
// CROSS-TABULATION — counts for every (row value, column value) pair
// ============================================================================
// Built on groupByMulti: primary groups are rows, sub-groups are columns.
// Row and column labels are sorted ascending (numbers numerically).
// Records missing either key are left out.
// ============================================================================

// CrossTab holds counts for two categorical columns.
type CrossTab struct {
	RowKey string   `json:"rowKey"`
	ColKey string   `json:"colKey"`
	Rows   []string `json:"rows"`
	Cols   []string `json:"cols"`
	Counts [][]int  `json:"counts"` // Counts[row][col]
}

// BuildCrossTab counts records by rowKey × colKey.
func BuildCrossTab(view RecordView, rowKey, colKey string) *CrossTab {
	ct := &CrossTab{RowKey: rowKey, ColKey: colKey}

	groups := groupByMulti(view, []string{rowKey, colKey})

	colSet := make(map[string]bool)
	for _, g := range groups {
		// A row whose every record lacks the column key has no sub-groups.
		if len(g.SubGroups) == 0 {
			continue
		}
		ct.Rows = append(ct.Rows, g.Key)
		for _, sg := range g.SubGroups {
			if !colSet[sg.Key] {
				colSet[sg.Key] = true
				ct.Cols = append(ct.Cols, sg.Key)
			}
		}
	}
	SortLabels(ct.Rows)
	SortLabels(ct.Cols)

	rowIndex := indexOf(ct.Rows)
	colIndex := indexOf(ct.Cols)

	ct.Counts = make([][]int, len(ct.Rows))
	for i := range ct.Counts {
		ct.Counts[i] = make([]int, len(ct.Cols))
	}
	for _, g := range groups {
		r, ok := rowIndex[g.Key]
		if !ok {
			continue
		}
		for _, sg := range g.SubGroups {
			ct.Counts[r][colIndex[sg.Key]] = sg.View.Len()
		}
	}
	return ct
}

// RowTotal returns the sum of a row's counts.
func (ct *CrossTab) RowTotal(row int) int {
	var total int
	for _, c := range ct.Counts[row] {
		total += c
	}
	return total
}

// ColumnTotals returns the per-column sums.
func (ct *CrossTab) ColumnTotals() []int {
	totals := make([]int, len(ct.Cols))
	for _, row := range ct.Counts {
		for j, c := range row {
			totals[j] += c
		}
	}
	return totals
}

// Total returns the number of records counted.
func (ct *CrossTab) Total() int {
	var total int
	for i := range ct.Rows {
		total += ct.RowTotal(i)
	}
	return total
}

// Values returns the counts as floats.
func (ct *CrossTab) Values() [][]float64 {
	out := make([][]float64, len(ct.Rows))
	for i, row := range ct.Counts {
		out[i] = make([]float64, len(row))
		for j, c := range row {
			out[i][j] = float64(c)
		}
	}
	return out
}

// Normalize returns row percentages: every row sums to 100.
func (ct *CrossTab) Normalize() [][]float64 {
	out := make([][]float64, len(ct.Rows))
	for i, row := range ct.Counts {
		total := ct.RowTotal(i)
		out[i] = make([]float64, len(row))
		for j, c := range row {
			out[i][j] = Percent(c, total)
		}
	}
	return out
}

// Count returns the count for a (row, col) label pair, 0 when absent.
func (ct *CrossTab) Count(row, col string) int {
	for i, r := range ct.Rows {
		if r != row {
			continue
		}
		for j, c := range ct.Cols {
			if c == col {
				return ct.Counts[i][j]
			}
		}
	}
	return 0
}

func indexOf(labels []string) map[string]int {
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		idx[l] = i
	}
	return idx
}
