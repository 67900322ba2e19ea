package engine

import "fmt"

// ============================================================================
// TABLE BUILDER — Produces TableData from QuerySpec + Groups / CrossTab
// ============================================================================
// Tables feed the console summary. Counts print as integers, percentages
// with two decimals.
// ============================================================================

// BuildTable produces a frequency table: one row per group.
func BuildTable(spec QuerySpec, groups []Group) *TableData {
	groupLabel := "Group"
	if len(spec.GroupBy) > 0 {
		groupLabel = LabelForDimension(spec.GroupBy[0])
	}
	valueLabel := LabelForAggregation(spec.Aggregation)

	columns := []Column{
		{Key: "group", Label: groupLabel, Type: "text", Align: "left"},
		{Key: "value", Label: valueLabel, Type: valueType(spec.Aggregation), Align: "right"},
	}

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{g.Label, formatValue(spec.Aggregation, g.Value)})
	}

	total := TotalCount(groups)
	summaryValue := FormatInt(total)
	if spec.Aggregation == "percent" && total > 0 {
		summaryValue = FormatPercent(100)
	}

	return &TableData{
		Title:   spec.Title,
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label:  "Total",
			Values: map[string]string{"value": summaryValue},
		},
	}
}

// BuildCrossTabTable produces a rows × columns table from a cross-tab and
// the matching values (counts or row percentages).
func BuildCrossTabTable(spec QuerySpec, ct *CrossTab, values [][]float64) *TableData {
	columns := make([]Column, 0, len(ct.Cols)+1)
	columns = append(columns, Column{
		Key:   ct.RowKey,
		Label: LabelForDimension(ct.RowKey),
		Type:  "text",
		Align: "left",
	})
	for _, col := range ct.Cols {
		columns = append(columns, Column{
			Key:   col,
			Label: col,
			Type:  valueType(spec.Aggregation),
			Align: "right",
		})
	}

	rows := make([][]string, 0, len(ct.Rows))
	for i, label := range ct.Rows {
		row := make([]string, 0, len(ct.Cols)+1)
		row = append(row, label)
		for j := range ct.Cols {
			row = append(row, formatValue(spec.Aggregation, values[i][j]))
		}
		rows = append(rows, row)
	}

	summary := &Summary{Label: "Total", Values: map[string]string{}}
	for j, total := range ct.ColumnTotals() {
		summary.Values[ct.Cols[j]] = FormatInt(total)
	}

	return &TableData{
		Title:   spec.Title,
		Columns: columns,
		Rows:    rows,
		Summary: summary,
	}
}

func valueType(aggregation string) string {
	if aggregation == "percent" {
		return "percent"
	}
	return "number"
}

func formatValue(aggregation string, v float64) string {
	if aggregation == "percent" {
		return fmt.Sprintf("%.2f", v)
	}
	return FormatInt(int(v))
}
