package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var supportOptions = []string{
	"cv writing support", "interview preparation", "job search strategies",
	"linkedin/profile branding", "networking opportunities",
	"entrepreneurship guidance", "understanding job market expectations",
}

const supportKey = "support"

func TestMatchingOptionsCaseInsensitive(t *testing.T) {
	got := MatchingOptions("CV Writing Support, Networking Opportunities", supportOptions)

	assert.Equal(t, []string{"cv writing support", "networking opportunities"}, got)
}

func TestMatchingOptionsNone(t *testing.T) {
	assert.Empty(t, MatchingOptions("Mentorship", supportOptions))
	assert.Empty(t, MatchingOptions("", supportOptions))
}

func TestMatchOptionsCountsEveryOption(t *testing.T) {
	view := NewSliceView([]Record{
		row(supportKey, "CV Writing Support, Networking Opportunities"),
		row(supportKey, "Interview preparation;LinkedIn/Profile Branding;CV writing support"),
		row(supportKey, "<NA>"),
		row(supportKey, "Mentorship"),
	})

	groups := MatchOptions(view, supportKey, supportOptions)
	aggregateGroups(groups, "count")
	require.Len(t, groups, len(supportOptions))

	counts := make(map[string]int)
	for _, g := range groups {
		counts[g.Key] = g.Count
	}
	assert.Equal(t, map[string]int{
		"cv writing support":                    2,
		"interview preparation":                 1,
		"job search strategies":                 0,
		"linkedin/profile branding":             1,
		"networking opportunities":              1,
		"entrepreneurship guidance":             0,
		"understanding job market expectations": 0,
	}, counts)

	SortGroups(groups, "value_desc")
	assert.Equal(t, "cv writing support", groups[0].Key)
	assert.Equal(t, 2.0, groups[0].Value)
}

func TestSingleResponseIncrementsOnlyItsOptions(t *testing.T) {
	view := NewSliceView([]Record{
		row(supportKey, "CV Writing Support, Networking Opportunities"),
	})

	groups := MatchOptions(view, supportKey, supportOptions)
	aggregateGroups(groups, "count")

	for _, g := range groups {
		switch g.Key {
		case "cv writing support", "networking opportunities":
			assert.Equal(t, 1, g.Count, g.Key)
		default:
			assert.Zero(t, g.Count, g.Key)
		}
	}
}

func TestUnmatchedResponses(t *testing.T) {
	view := NewSliceView([]Record{
		row(supportKey, "CV Writing Support"),
		row(supportKey, "Mentorship"),
		row(supportKey, "<NA>"),
		row(supportKey, "  "),
	})

	assert.Equal(t, 1, UnmatchedResponses(view, supportKey, supportOptions))
}
