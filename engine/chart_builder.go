package engine

// ============================================================================
// CHART BUILDER — Produces ChartConfig from QuerySpec + Groups / CrossTab
// ============================================================================
// Single-key queries give one series with a colour per bar. Cross-tabs give
// one series per column value, grouped or stacked per QuerySpec.Visualize.
// ============================================================================

// Set2 palette, one colour per bar or per series.
var defaultColors = []string{
	"#66C2A5", "#FC8D62", "#8DA0CB", "#E78AC3",
	"#A6D854", "#FFD92F", "#E5C494", "#B3B3B3",
}

// DefaultColors returns a copy of the chart palette.
func DefaultColors() []string {
	return append([]string(nil), defaultColors...)
}

// BuildChart produces a single-series ChartConfig from aggregated groups.
func BuildChart(spec QuerySpec, groups []Group) *ChartConfig {
	if len(groups) == 0 {
		return nil
	}

	config := newChartConfig(spec, "bar")

	points := make([]ChartPoint, 0, len(groups))
	for _, g := range groups {
		config.Categories = append(config.Categories, g.Label)
		points = append(points, ChartPoint{
			Label: g.Label,
			Value: RoundTo2(g.Value),
		})
	}

	name := spec.YAxis
	if name == "" {
		name = LabelForAggregation(spec.Aggregation)
	}
	config.Series = []ChartSeries{{Name: name, Data: points}}
	config.Colors = assignColors(len(groups))
	config.ShowLegend = false
	return config
}

// BuildCrossTabChart produces a multi-series ChartConfig: categories are the
// cross-tab rows, series are its columns (renamed by spec.SeriesLabel, with
// columns that share a name merged).
func BuildCrossTabChart(spec QuerySpec, ct *CrossTab, values [][]float64) *ChartConfig {
	if ct == nil || len(ct.Rows) == 0 || len(ct.Cols) == 0 {
		return nil
	}

	chartType := spec.Visualize
	if chartType != "stacked_bar" {
		chartType = "grouped_bar"
	}
	config := newChartConfig(spec, chartType)
	config.Categories = append(config.Categories, ct.Rows...)
	config.ShowLegend = true

	names, colOf := seriesNames(ct.Cols, spec.SeriesLabel)
	series := make([]ChartSeries, len(names))
	for s, name := range names {
		series[s] = ChartSeries{
			Name:  name,
			Data:  make([]ChartPoint, len(ct.Rows)),
			Color: defaultColors[s%len(defaultColors)],
		}
		for r, row := range ct.Rows {
			series[s].Data[r].Label = row
		}
	}
	for r := range ct.Rows {
		for c := range ct.Cols {
			s := colOf[c]
			series[s].Data[r].Value = RoundTo2(series[s].Data[r].Value + values[r][c])
		}
	}

	config.Series = series
	config.Colors = assignColors(len(series))
	return config
}

func newChartConfig(spec QuerySpec, chartType string) *ChartConfig {
	xAxis := spec.XAxis
	if xAxis == "" && len(spec.GroupBy) > 0 {
		xAxis = LabelForDimension(spec.GroupBy[0])
	}
	yAxis := spec.YAxis
	if yAxis == "" {
		yAxis = LabelForAggregation(spec.Aggregation)
	}
	return &ChartConfig{
		ChartType:   chartType,
		Title:       spec.Title,
		XAxis:       xAxis,
		YAxis:       yAxis,
		LegendTitle: spec.LegendTitle,
	}
}

// seriesNames maps cross-tab columns to series. colOf[c] is the series index
// for column c.
func seriesNames(cols []string, rename func(string) string) (names []string, colOf []int) {
	colOf = make([]int, len(cols))
	index := make(map[string]int)
	for c, col := range cols {
		name := col
		if rename != nil {
			name = rename(col)
		}
		s, ok := index[name]
		if !ok {
			s = len(names)
			index[name] = s
			names = append(names, name)
		}
		colOf[c] = s
	}
	return names, colOf
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
