package engine

import (
	"fmt"

	"go.uber.org/zap"
)

// ============================================================================
// EXECUTOR — Dispatcher
// ============================================================================
// Entry point: Execute(spec, view, opts...)
//
// Pipeline:
//   1. Check columns, apply filters → SubView
//   2. Group: single key, two keys (cross-tab) or multi-select options
//   3. Aggregate, sort, limit
//   4. Dispatch to builder (chart / table)
//   5. Return Result
// ============================================================================

// Execute runs a QuerySpec against a RecordView and returns a render-ready Result.
func Execute(spec QuerySpec, view RecordView, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts)
	log := cfg.Logger

	if err := validateSpec(spec, view); err != nil {
		return nil, err
	}

	// 1. Apply filters → SubView (zero-copy)
	filtered := ApplyFilters(view, spec.Filters)
	if filtered.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", spec.Title, ErrEmptyView)
	}

	log.Debug("🔧 executing query",
		zap.String("title", spec.Title),
		zap.Strings("groupBy", spec.GroupBy),
		zap.String("aggregation", spec.Aggregation),
		zap.Int("records", filtered.Len()),
		zap.Int("from", view.Len()),
	)

	result := &Result{
		Title: spec.Title,
		Total: filtered.Len(),
	}

	// 2–3. Group and aggregate
	switch {
	case spec.MultiSelect:
		groups := MatchOptions(filtered, spec.GroupBy[0], spec.Options)
		aggregateGroups(groups, spec.Aggregation)
		SortGroups(groups, spec.SortBy)
		if spec.Limit > 0 && len(groups) > spec.Limit {
			groups = groups[:spec.Limit]
		}
		result.Groups = groups

	case len(spec.GroupBy) == 2:
		result.CrossTab = BuildCrossTab(filtered, spec.GroupBy[0], spec.GroupBy[1])

	default:
		result.Groups = GroupAndAggregate(filtered, spec.GroupBy, spec.Aggregation, spec.SortBy, spec.Limit)
	}

	// 4. Dispatch to builder
	switch spec.Intent {
	case "chart":
		result.Type = "chart"
		if result.CrossTab != nil {
			result.ChartConfig = BuildCrossTabChart(spec, result.CrossTab, crossTabValues(spec, result.CrossTab))
		} else {
			result.ChartConfig = BuildChart(spec, result.Groups)
		}
		if result.ChartConfig == nil {
			return nil, fmt.Errorf("%s: nothing to chart: %w", spec.Title, ErrEmptyView)
		}

	default:
		result.Type = "table"
		if result.CrossTab != nil {
			tableSpec := spec
			if spec.Normalize == "row" {
				tableSpec.Aggregation = "percent"
			}
			result.TableData = BuildCrossTabTable(tableSpec, result.CrossTab, crossTabValues(spec, result.CrossTab))
		} else {
			result.TableData = BuildTable(spec, result.Groups)
		}
	}

	return result, nil
}

func crossTabValues(spec QuerySpec, ct *CrossTab) [][]float64 {
	if spec.Normalize == "row" {
		return ct.Normalize()
	}
	return ct.Values()
}

// validateSpec rejects specs that cannot be executed against view.
func validateSpec(spec QuerySpec, view RecordView) error {
	if len(spec.GroupBy) == 0 {
		return fmt.Errorf("%w: %s: groupBy is empty", ErrInvalidQuery, spec.Title)
	}
	if len(spec.GroupBy) > 2 {
		return fmt.Errorf("%w: %s: at most two groupBy keys", ErrInvalidQuery, spec.Title)
	}
	if spec.MultiSelect {
		if len(spec.GroupBy) != 1 {
			return fmt.Errorf("%w: %s: multi-select needs exactly one groupBy key", ErrInvalidQuery, spec.Title)
		}
		if len(spec.Options) == 0 {
			return fmt.Errorf("%w: %s: multi-select needs options", ErrInvalidQuery, spec.Title)
		}
	} else if len(spec.Options) > 0 {
		return fmt.Errorf("%w: %s: options are only used by multi-select", ErrInvalidQuery, spec.Title)
	}
	for _, key := range spec.GroupBy {
		if !HasDimension(view, key) {
			return unknownColumn(key)
		}
	}
	return checkFilterColumns(view, spec.Filters)
}
