package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCrossTabCounts(t *testing.T) {
	view := graduatesView(t)

	ct := BuildCrossTab(view, "gender", "employment status")

	assert.Equal(t, []string{"Female", "Male"}, ct.Rows)
	assert.Equal(t, []string{"Employed", "Self-employed", "Unemployed"}, ct.Cols)
	want := [][]int{
		{2, 0, 1},
		{1, 1, 1},
	}
	if diff := cmp.Diff(want, ct.Counts); diff != "" {
		t.Fatalf("counts mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, view.Len(), ct.Total())
	assert.Equal(t, []int{3, 1, 2}, ct.ColumnTotals())
	assert.Equal(t, 1, ct.Count("Male", "Self-employed"))
	assert.Equal(t, 0, ct.Count("Female", "Self-employed"))
	assert.Equal(t, 0, ct.Count("Other", "Employed"))
}

func TestCrossTabRowNormalizedSumsTo100(t *testing.T) {
	view := graduatesView(t)

	ct := BuildCrossTab(view, "employment status", "is_stem")
	require.Equal(t, []string{"False", "True"}, ct.Cols)

	pct := ct.Normalize()
	for i, r := range ct.Rows {
		var sum float64
		for _, v := range pct[i] {
			sum += v
		}
		assert.InDelta(t, 100, sum, 1e-9, r)
	}

	// Employed: Ama (True), Esi (False), unnamed (True)
	assert.InDelta(t, 33.3333, pct[0][0], 1e-3)
	assert.InDelta(t, 66.6667, pct[0][1], 1e-3)
}

func TestCrossTabSkipsMissingKeys(t *testing.T) {
	view := NewSliceView([]Record{
		row("a", "x", "b", "1"),
		row("a", "x", "b", "<NA>"),
		row("a", "<NA>", "b", "2"),
		row("a", "y", "b", "<NA>"),
	})

	ct := BuildCrossTab(view, "a", "b")

	assert.Equal(t, []string{"x"}, ct.Rows)
	assert.Equal(t, []string{"1"}, ct.Cols)
	assert.Equal(t, 1, ct.Total())
}

func TestCrossTabNumericColumnsSortNumerically(t *testing.T) {
	view := NewSliceView([]Record{
		row("a", "x", "b", "10"),
		row("a", "x", "b", "9"),
		row("a", "x", "b", "100"),
	})

	ct := BuildCrossTab(view, "a", "b")

	assert.Equal(t, []string{"9", "10", "100"}, ct.Cols)
}
