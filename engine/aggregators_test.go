package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type labelCount struct {
	Label string
	Count int
}

func labelCounts(groups []Group) []labelCount {
	out := make([]labelCount, len(groups))
	for i, g := range groups {
		out[i] = labelCount{g.Label, g.Count}
	}
	return out
}

func TestGroupAndAggregateThreeRowScenario(t *testing.T) {
	view := NewSliceView([]Record{
		row("employment status", "Employed"),
		row("employment status", "Unemployed"),
		row("employment status", "Employed"),
	})

	groups := GroupAndAggregate(view, []string{"employment status"}, "count", "value_desc", 0)

	want := []labelCount{{"Employed", 2}, {"Unemployed", 1}}
	if diff := cmp.Diff(want, labelCounts(groups)); diff != "" {
		t.Fatalf("value counts mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2.0, groups[0].Value)
}

func TestValueCountsSumToRowCount(t *testing.T) {
	view := graduatesView(t)

	for _, key := range []string{"employment status", "gender", "university attended", "graduation year"} {
		groups := GroupAndAggregate(view, []string{key}, "count", "value_desc", 0)
		assert.Equal(t, view.Len(), TotalCount(groups), key)
	}
}

func TestValueCountsSkipMissing(t *testing.T) {
	view := graduatesView(t)

	groups := GroupAndAggregate(view, []string{"job title"}, "count", "value_desc", 0)

	// three rows have no job title
	assert.Equal(t, 3, TotalCount(groups))
	for _, g := range groups {
		assert.NotEmpty(t, g.Label)
	}
}

func TestPercentDistribution(t *testing.T) {
	view := graduatesView(t)

	groups := GroupAndAggregate(view, []string{"is_stem"}, "percent", "value_desc", 0)
	require.Len(t, groups, 2)

	assert.Equal(t, "True", groups[0].Key)
	assert.InDelta(t, 66.6667, groups[0].Value, 1e-3)
	assert.InDelta(t, 33.3333, groups[1].Value, 1e-3)
	assert.InDelta(t, 100, groups[0].Value+groups[1].Value, 1e-9)
}

func TestTopNLimit(t *testing.T) {
	view := graduatesView(t)

	groups := GroupAndAggregate(view, []string{"university attended"}, "count", "value_desc", 2)

	want := []labelCount{{"KNUST", 3}, {"UG", 2}}
	if diff := cmp.Diff(want, labelCounts(groups)); diff != "" {
		t.Fatalf("top universities mismatch (-want +got):\n%s", diff)
	}
}

func TestGraduationYearsSortByYear(t *testing.T) {
	view := graduatesView(t)

	groups := GroupAndAggregate(view, []string{"graduation year"}, "count", "numeric_asc", 0)

	want := []labelCount{{"2019", 1}, {"2020", 2}, {"2021", 2}, {"2022", 1}}
	if diff := cmp.Diff(want, labelCounts(groups)); diff != "" {
		t.Fatalf("year order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortGroupsStableOnTies(t *testing.T) {
	groups := []Group{
		{Key: "b", Value: 1}, {Key: "a", Value: 3}, {Key: "c", Value: 1}, {Key: "d", Value: 1},
	}
	SortGroups(groups, "value_desc")

	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, keys)
}

func TestSortGroupsModes(t *testing.T) {
	input := func() []Group {
		return []Group{
			{Key: "10", Value: 2}, {Key: "9", Value: 5}, {Key: "2020", Value: 1}, {Key: "100", Value: 2},
		}
	}
	tests := []struct {
		sortBy string
		want   []string
	}{
		{"value_desc", []string{"9", "10", "100", "2020"}},
		{"value_asc", []string{"2020", "10", "100", "9"}},
		{"label_asc", []string{"10", "100", "2020", "9"}},
		{"label_desc", []string{"9", "2020", "100", "10"}},
		{"numeric_asc", []string{"9", "10", "100", "2020"}},
		{"numeric_desc", []string{"2020", "100", "10", "9"}},
		{"", []string{"10", "9", "2020", "100"}},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			groups := input()
			SortGroups(groups, tt.sortBy)

			keys := make([]string, len(groups))
			for i, g := range groups {
				keys[i] = g.Key
			}
			assert.Equal(t, tt.want, keys)
		})
	}
}

func TestLessLabel(t *testing.T) {
	assert.True(t, LessLabel("9", "10"))
	assert.True(t, LessLabel("2019", "2020.0"))
	assert.True(t, LessLabel("2020", "unknown"))
	assert.False(t, LessLabel("unknown", "2020"))
	assert.True(t, LessLabel("Female", "Male"))
}

func TestLabelForDimension(t *testing.T) {
	assert.Equal(t, "Employment Status", LabelForDimension("employment status"))
	assert.Equal(t, "Is Stem", LabelForDimension("is_stem"))
	assert.Equal(t, "", LabelForDimension(""))
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "999", FormatInt(999))
	assert.Equal(t, "1,000", FormatInt(1000))
	assert.Equal(t, "-12,345,678", FormatInt(-12345678))
}
