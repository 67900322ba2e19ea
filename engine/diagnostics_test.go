package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var employedFilter = Filters{Dimensions: map[string][]string{"employment status": {"Employed"}}}

func TestMissingCountsOnlyReportsGaps(t *testing.T) {
	view := graduatesView(t)

	got := MissingCounts(view)

	want := []ColumnMissing{
		{Column: "name", Missing: 1},
		{Column: "organization/company/sector", Missing: 3},
		{Column: "job title", Missing: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("missing counts mismatch (-want +got):\n%s", diff)
	}
	for _, m := range got {
		assert.LessOrEqual(t, m.Missing, view.Len())
	}
}

func TestMissingCountsIncludesEmptyColumn(t *testing.T) {
	view := NewSliceViewWithKeys([]Record{row("a", "1"), row("a", "2")}, []string{"a", "b"})

	got := MissingCounts(view)

	assert.Equal(t, []ColumnMissing{{Column: "b", Missing: 2}}, got)
}

func TestCountIncomplete(t *testing.T) {
	view := graduatesView(t)

	n, err := CountIncomplete(view, []string{"name", "university attended", "employment status"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = CountIncomplete(view, []string{"name", "job title"})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCountIncompleteUnknownColumn(t *testing.T) {
	view := graduatesView(t)

	_, err := CountIncomplete(view, []string{"name", "email adress"})
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestCountMissingWhereEmployed(t *testing.T) {
	view := graduatesView(t)

	matched, flagged, err := CountMissingWhere(view, employedFilter,
		[]string{"organization/company/sector", "job title"})
	require.NoError(t, err)

	// Esi lacks an organization, the unnamed graduate lacks a job title.
	assert.Equal(t, 3, matched)
	assert.Equal(t, 2, flagged)
	assert.LessOrEqual(t, flagged, matched)
}

func TestCountMissingWhereIsCaseSensitive(t *testing.T) {
	view := NewSliceView([]Record{
		row("employment status", "employed", "job title", "<NA>"),
		row("employment status", "Employed", "job title", "Dev"),
	})

	matched, flagged, err := CountMissingWhere(view, employedFilter, []string{"job title"})
	require.NoError(t, err)
	assert.Equal(t, 1, matched)
	assert.Equal(t, 0, flagged)
}

func TestCountMissingWhereUnknownFilterColumn(t *testing.T) {
	view := NewSliceView([]Record{row("job title", "Dev")})

	_, _, err := CountMissingWhere(view, employedFilter, []string{"job title"})
	assert.ErrorIs(t, err, ErrUnknownColumn)
}
