package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// FIXTURES
// ============================================================================

var graduateKeys = []string{
	"name", "university attended", "employment status", "is_stem",
	"organization/company/sector", "job title", "graduation year", "gender",
}

// row builds a Record from alternating key/value pairs. A value of "<NA>"
// leaves the key out, marking the cell missing.
func row(kv ...string) Record {
	r := Record{Dimensions: make(map[string]string)}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "<NA>" {
			continue
		}
		r.Dimensions[kv[i]] = kv[i+1]
	}
	return r
}

func graduatesView(t *testing.T) RecordView {
	t.Helper()
	records := []Record{
		row("name", "Ama", "university attended", "KNUST", "employment status", "Employed", "is_stem", "True",
			"organization/company/sector", "MTN", "job title", "Engineer", "graduation year", "2021", "gender", "Female"),
		row("name", "Kofi", "university attended", "UG", "employment status", "Unemployed", "is_stem", "False",
			"organization/company/sector", "<NA>", "job title", "<NA>", "graduation year", "2020", "gender", "Male"),
		row("name", "Esi", "university attended", "KNUST", "employment status", "Employed", "is_stem", "False",
			"organization/company/sector", "<NA>", "job title", "Teacher", "graduation year", "2021", "gender", "Female"),
		row("name", "Yaw", "university attended", "UCC", "employment status", "Self-employed", "is_stem", "True",
			"organization/company/sector", "Own shop", "job title", "Owner", "graduation year", "2019", "gender", "Male"),
		row("name", "<NA>", "university attended", "KNUST", "employment status", "Employed", "is_stem", "True",
			"organization/company/sector", "Google", "job title", "<NA>", "graduation year", "2022", "gender", "Male"),
		row("name", "Abena", "university attended", "UG", "employment status", "Unemployed", "is_stem", "True",
			"organization/company/sector", "<NA>", "job title", "<NA>", "graduation year", "2020", "gender", "Female"),
	}
	view := NewSliceViewWithKeys(records, graduateKeys)
	require.Equal(t, 6, view.Len())
	return view
}
