package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spektr-org/gradreport/engine"
)

// ============================================================================
// SCHEMA — Describes the shape of an input table
// ============================================================================
// A Config names the file a dataset lives in and the columns the report
// reads from it. Keys are normalized column names (trimmed, lower-case).
// Nothing here rejects rows; Require only reports columns that are absent.
// ============================================================================

// ErrMissingColumns is returned by Require when a table lacks named columns.
var ErrMissingColumns = errors.New("missing columns")

// Config describes one dataset.
type Config struct {
	Name        string          `json:"name"`
	File        string          `json:"file"`
	Dimensions  []DimensionMeta `json:"dimensions"`
}

// DimensionMeta describes a column used for grouping or diagnostics.
type DimensionMeta struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
	MultiSelect bool   `json:"multiSelect,omitempty"` // several options in one cell
	Important   bool   `json:"important,omitempty"`   // counted by the incomplete-entry check
}

// DefaultDimension creates a DimensionMeta with the display name derived
// from the key when displayName is empty.
func DefaultDimension(key, displayName string) DimensionMeta {
	if displayName == "" {
		displayName = engine.LabelForDimension(key)
	}
	return DimensionMeta{
		Key:         NormalizeKey(key),
		DisplayName: displayName,
	}
}

// NormalizeKey trims and lower-cases a column header.
func NormalizeKey(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

// DimensionKeys returns all dimension keys.
func (c Config) DimensionKeys() []string {
	keys := make([]string, len(c.Dimensions))
	for i, d := range c.Dimensions {
		keys[i] = d.Key
	}
	return keys
}

// ImportantKeys returns the keys flagged Important, in declaration order.
func (c Config) ImportantKeys() []string {
	var keys []string
	for _, d := range c.Dimensions {
		if d.Important {
			keys = append(keys, d.Key)
		}
	}
	return keys
}

// IsMultiSelect reports whether key is declared as a multi-select column.
func (c Config) IsMultiSelect(key string) bool {
	for _, d := range c.Dimensions {
		if d.Key == key {
			return d.MultiSelect
		}
	}
	return false
}

// DisplayName returns the display name for key, or a title-cased key when
// the schema does not declare it.
func (c Config) DisplayName(key string) string {
	for _, d := range c.Dimensions {
		if d.Key == key {
			return d.DisplayName
		}
	}
	return engine.LabelForDimension(key)
}

// Require checks that every declared dimension is among columns.
func (c Config) Require(columns []string) error {
	have := make(map[string]bool, len(columns))
	for _, col := range columns {
		have[col] = true
	}
	var missing []string
	for _, key := range c.DimensionKeys() {
		if !have[key] {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: %s", c.Name, ErrMissingColumns, strings.Join(missing, ", "))
	}
	return nil
}
