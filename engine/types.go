package engine

// ============================================================================
// ENGINE TYPES — Records, Queries, Results
// ============================================================================
// Records carry string dimensions only. Every statistic in the report is a
// count, so there are no numeric measures to aggregate.
// ============================================================================

// ============================================================================
// RECORD — Generic data row
// ============================================================================

// Record is a single data row keyed by normalized column name.
// A column whose cell was missing (NA) is absent from Dimensions.
//
// Record{Dimensions["employment status"]="Employed", ["gender"]="Female"}
type Record struct {
	Dimensions map[string]string `json:"dimensions"`
}

// ============================================================================
// QUERYSPEC — What the engine should compute
// ============================================================================

// QuerySpec defines one computation over a view.
//
// One GroupBy key gives a frequency table. Two keys give a cross-tabulation
// (rows by the first key, columns by the second). MultiSelect treats
// GroupBy[0] as a multi-select column and counts each of Options in it.
type QuerySpec struct {
	Intent      string   `json:"intent"`      // "chart", "table"
	Filters     Filters  `json:"filters"`     // Which records to include
	Aggregation string   `json:"aggregation"` // "count", "percent"
	GroupBy     []string `json:"groupBy"`     // ["employment status"], ["gender", "employment status"]
	MultiSelect bool     `json:"multiSelect,omitempty"`
	Options     []string `json:"options,omitempty"` // vocabulary for MultiSelect
	Normalize   string   `json:"normalize,omitempty"` // "row" for cross-tab row percentages
	SortBy      string   `json:"sortBy"`              // "value_desc", "numeric_asc", "label_asc", ...
	Limit       int      `json:"limit"`               // 0 = all
	Visualize   string   `json:"visualize"`           // "bar", "grouped_bar", "stacked_bar", "table"
	Title       string   `json:"title"`
	XAxis       string   `json:"xAxis,omitempty"`
	YAxis       string   `json:"yAxis,omitempty"`
	LegendTitle string   `json:"legendTitle,omitempty"`

	// SeriesLabel renames cross-tab column values before they become series
	// names (e.g. is_stem "True" → "STEM").
	SeriesLabel func(string) string `json:"-"`
}

// Filters define which records to include.
// Keys are dimension names. Values are allowed values.
// OR within a dimension, AND across dimensions. Empty = all.
type Filters struct {
	Dimensions map[string][]string `json:"dimensions"`
}

// IsEmpty returns true if no filters are set.
func (f Filters) IsEmpty() bool {
	for _, vals := range f.Dimensions {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}

// ============================================================================
// RESULT — Render-ready output
// ============================================================================

// Result is the engine's output for one QuerySpec.
type Result struct {
	Type  string `json:"type"` // "chart", "table"
	Title string `json:"title"`
	Total int    `json:"total"` // records considered after filtering

	// Groups is set for frequency and multi-select queries, CrossTab for
	// two-key queries.
	Groups   []Group   `json:"groups,omitempty"`
	CrossTab *CrossTab `json:"crossTab,omitempty"`

	// Exactly one of these is populated based on Type.
	ChartConfig *ChartConfig `json:"chartConfig,omitempty"`
	TableData   *TableData   `json:"tableData,omitempty"`
}

// ============================================================================
// GROUP — Intermediate computation result
// ============================================================================

// Group is one bucket of a frequency table.
type Group struct {
	Key       string     `json:"key"`
	Label     string     `json:"label"`
	Value     float64    `json:"value"` // count or percentage, per aggregation
	Count     int        `json:"count"`
	SubGroups []Group    `json:"subGroups,omitempty"`
	View      RecordView `json:"-"` // Sub-view for records in this group (zero-copy)
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartConfig describes a bar chart independently of the drawing library.
type ChartConfig struct {
	ChartType   string        `json:"chartType"` // "bar", "grouped_bar", "stacked_bar"
	Title       string        `json:"title"`
	XAxis       string        `json:"xAxis,omitempty"`
	YAxis       string        `json:"yAxis,omitempty"`
	Categories  []string      `json:"categories"`
	Series      []ChartSeries `json:"series"`
	Colors      []string      `json:"colors,omitempty"`
	ShowLegend  bool          `json:"showLegend"`
	LegendTitle string        `json:"legendTitle,omitempty"`
}

// ChartSeries represents a data series in a chart. Data is aligned with
// ChartConfig.Categories.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// IsStacked reports whether series are drawn on top of each other.
func (c *ChartConfig) IsStacked() bool { return c.ChartType == "stacked_bar" }

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to print a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number", "percent"
	Align string `json:"align"` // "left", "center", "right"
}

// Summary provides totals for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}

// Headers returns the column labels in order.
func (t *TableData) Headers() []string {
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Label
	}
	return headers
}
