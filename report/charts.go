package report

import (
	"strings"

	"github.com/spektr-org/gradreport/engine"
	"github.com/spektr-org/gradreport/schema"
)

// ============================================================================
// CHARTS — The seven fixed report figures
// ============================================================================

// Dataset selects which input table a chart reads.
type Dataset int

const (
	Graduates Dataset = iota
	Prospective
)

// Chart is one saved figure: the query that feeds it and how it is drawn.
type Chart struct {
	File     string
	Dataset  Dataset
	Spec     engine.QuerySpec
	Width    float64 // inches
	Height   float64 // inches
	Rotation float64 // x tick labels, degrees
}

const (
	yGraduates = "Number of Graduates"
	yStudents  = "Number of Students"
)

// Charts returns the report figures in output order. Axis and legend titles
// come from the schemas' display names.
func Charts(graduates, prospective schema.Config) []Chart {
	label := graduates.DisplayName
	return []Chart{
		{
			File:    "employment_status_distribution.png",
			Dataset: Graduates,
			Width:   10, Height: 6,
			Spec: engine.QuerySpec{
				Intent:      "chart",
				Aggregation: "count",
				GroupBy:     []string{ColStatus},
				SortBy:      "value_desc",
				Visualize:   "bar",
				Title:       "Distribution of Employment Status Among Graduates",
				XAxis:       label(ColStatus),
				YAxis:       yGraduates,
			},
		},
		{
			File:    "employment_status_by_stem.png",
			Dataset: Graduates,
			Width:   12, Height: 7,
			Spec: engine.QuerySpec{
				Intent:      "chart",
				Aggregation: "count",
				GroupBy:     []string{ColStatus, ColStem},
				Visualize:   "stacked_bar",
				Title:       "Employment Status by STEM vs Non-STEM Field",
				XAxis:       label(ColStatus),
				YAxis:       yGraduates,
				LegendTitle: label(ColStem),
				SeriesLabel: StemLabel,
			},
		},
		{
			File:    "university_distribution.png",
			Dataset: Graduates,
			Width:   12, Height: 7, Rotation: 45,
			Spec: engine.QuerySpec{
				Intent:      "chart",
				Aggregation: "count",
				GroupBy:     []string{ColUniversity},
				SortBy:      "value_desc",
				Limit:       10,
				Visualize:   "bar",
				Title:       "Top 10 Universities Attended by Graduates",
				XAxis:       label(ColUniversity),
				YAxis:       yGraduates,
			},
		},
		{
			File:    "graduation_year_distribution.png",
			Dataset: Graduates,
			Width:   10, Height: 6,
			Spec: engine.QuerySpec{
				Intent:      "chart",
				Aggregation: "count",
				GroupBy:     []string{ColYear},
				SortBy:      "numeric_asc",
				Visualize:   "bar",
				Title:       "Distribution of Graduation Years",
				XAxis:       label(ColYear),
				YAxis:       yGraduates,
			},
		},
		{
			File:    "gender_employment_status.png",
			Dataset: Graduates,
			Width:   12, Height: 7,
			Spec: engine.QuerySpec{
				Intent:      "chart",
				Aggregation: "count",
				GroupBy:     []string{ColGender, ColStatus},
				Visualize:   "grouped_bar",
				Title:       "Gender Distribution by Employment Status",
				XAxis:       label(ColGender),
				YAxis:       yGraduates,
				LegendTitle: label(ColStatus),
			},
		},
		{
			File:    "prospective_career_interests.png",
			Dataset: Prospective,
			Width:   10, Height: 6, Rotation: 45,
			Spec: engine.QuerySpec{
				Intent:      "chart",
				Aggregation: "count",
				GroupBy:     []string{ColCareer},
				SortBy:      "value_desc",
				Visualize:   "bar",
				Title:       "Career Interests of Prospective Graduates",
				XAxis:       prospective.DisplayName(ColCareer),
				YAxis:       yStudents,
			},
		},
		{
			File:    "prospective_support_needed.png",
			Dataset: Prospective,
			Width:   12, Height: 7, Rotation: 45,
			Spec: engine.QuerySpec{
				Intent:      "chart",
				Aggregation: "count",
				GroupBy:     []string{ColSupport},
				MultiSelect: prospective.IsMultiSelect(ColSupport),
				Options:     SupportOptions,
				SortBy:      "value_desc",
				Visualize:   "bar",
				Title:       "Support Needed by Prospective Graduates",
				XAxis:       prospective.DisplayName(ColSupport),
				YAxis:       yStudents,
			},
		},
	}
}

// StemLabel maps an is_stem value to its series name.
func StemLabel(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "y", "stem":
		return "STEM"
	}
	return "Non-STEM"
}

// stackNonStemFirst puts the Non-STEM series at the bottom of the stack.
func stackNonStemFirst(cfg *engine.ChartConfig) {
	if len(cfg.Series) == 2 && cfg.Series[0].Name == "STEM" {
		cfg.Series[0], cfg.Series[1] = cfg.Series[1], cfg.Series[0]
		cfg.Series[0].Color, cfg.Series[1].Color = cfg.Series[1].Color, cfg.Series[0].Color
	}
}
