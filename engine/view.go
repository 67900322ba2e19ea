package engine

import "sort"

// ============================================================================
// RECORD VIEW — Zero-Copy Data Access Interface
// ============================================================================
// The engine never owns loaded data. It reads through this interface.
//
// Implementations:
//   SliceView — wraps []Record in header order (CSV loader)
//   SubView   — filtered subset (indices into parent, zero-copy)
// ============================================================================

// RecordView provides indexed access to a dataset.
// The engine calls Dimension/Missing in tight loops; keep implementations fast.
type RecordView interface {
	Len() int
	Dimension(index int, key string) string
	Missing(index int, key string) bool
	DimensionKeys() []string // column names in header order
}

// HasDimension reports whether key is one of the view's columns.
func HasDimension(view RecordView, key string) bool {
	for _, k := range view.DimensionKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// ============================================================================
// SLICE VIEW — wraps []Record
// ============================================================================

// SliceView wraps a []Record slice as a RecordView.
type SliceView struct {
	records []Record
	dimKeys []string
}

// NewSliceView creates a RecordView from records. Keys are discovered from
// the records and sorted; use NewSliceViewWithKeys to keep header order.
func NewSliceView(records []Record) RecordView {
	v := &SliceView{records: records}
	v.cacheKeys()
	return v
}

// NewSliceViewWithKeys creates a RecordView whose DimensionKeys are exactly
// keys. Columns that are entirely missing still exist in the view.
func NewSliceViewWithKeys(records []Record, keys []string) RecordView {
	return &SliceView{records: records, dimKeys: keys}
}

func (v *SliceView) cacheKeys() {
	seen := make(map[string]bool)
	for _, r := range v.records {
		for k := range r.Dimensions {
			if !seen[k] {
				seen[k] = true
				v.dimKeys = append(v.dimKeys, k)
			}
		}
	}
	sort.Strings(v.dimKeys)
}

func (v *SliceView) Len() int { return len(v.records) }

func (v *SliceView) Dimension(i int, key string) string {
	if i < 0 || i >= len(v.records) {
		return ""
	}
	return v.records[i].Dimensions[key]
}

func (v *SliceView) Missing(i int, key string) bool {
	if i < 0 || i >= len(v.records) {
		return true
	}
	_, ok := v.records[i].Dimensions[key]
	return !ok
}

func (v *SliceView) DimensionKeys() []string { return v.dimKeys }

// ============================================================================
// SUB VIEW — filtered subset (zero-copy)
// ============================================================================

// SubView is a filtered subset of a parent RecordView.
// Holds indices into the parent, no data copy.
type SubView struct {
	parent  RecordView
	indices []int
}

func newSubView(parent RecordView, indices []int) RecordView {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int { return len(v.indices) }

func (v *SubView) Dimension(i int, key string) string {
	if i < 0 || i >= len(v.indices) {
		return ""
	}
	return v.parent.Dimension(v.indices[i], key)
}

func (v *SubView) Missing(i int, key string) bool {
	if i < 0 || i >= len(v.indices) {
		return true
	}
	return v.parent.Missing(v.indices[i], key)
}

func (v *SubView) DimensionKeys() []string { return v.parent.DimensionKeys() }
