package engine

import "strings"

// ============================================================================
// MULTI-SELECT — one response cell holding several chosen options
// ============================================================================
// Options are matched as case-insensitive literal substrings, so the
// vocabulary must match the survey wording. A response that matches no
// option is simply not counted anywhere.
// ============================================================================

// MatchingOptions returns the options contained in value, in vocabulary order.
func MatchingOptions(value string, options []string) []string {
	lower := strings.ToLower(value)
	var matched []string
	for _, opt := range options {
		if opt == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(opt)) {
			matched = append(matched, opt)
		}
	}
	return matched
}

// MatchOptions counts, for each option, the records whose key column
// contains it. Every option gets a group, zero counts included, in
// vocabulary order; a record can add to several groups.
func MatchOptions(view RecordView, key string, options []string) []Group {
	indices := make([][]int, len(options))
	for i := 0; i < view.Len(); i++ {
		if view.Missing(i, key) {
			continue
		}
		lower := strings.ToLower(view.Dimension(i, key))
		for j, opt := range options {
			if opt != "" && strings.Contains(lower, strings.ToLower(opt)) {
				indices[j] = append(indices[j], i)
			}
		}
	}

	groups := make([]Group, len(options))
	for j, opt := range options {
		groups[j] = Group{
			Key:   opt,
			Label: opt,
			View:  newSubView(view, indices[j]),
		}
	}
	return groups
}

// UnmatchedResponses counts non-missing responses that match none of the
// options. A non-zero result usually means the vocabulary has drifted from
// the survey wording.
func UnmatchedResponses(view RecordView, key string, options []string) int {
	var n int
	for i := 0; i < view.Len(); i++ {
		if view.Missing(i, key) {
			continue
		}
		if strings.TrimSpace(view.Dimension(i, key)) == "" {
			continue
		}
		if len(MatchingOptions(view.Dimension(i, key), options)) == 0 {
			n++
		}
	}
	return n
}
