// Package gradreport produces a descriptive report over graduate employment
// records and prospective-graduate survey responses.
//
// Usage:
//
//	import "github.com/spektr-org/gradreport/report"
//
//	err := report.Run(ctx, config.Default(), os.Stdout,
//	    report.WithLogger(logger),
//	)
//
// The engine package does the grouping, counting and diagnostics over
// generic records. The render package turns the engine's ChartConfig into
// PNG bar charts. The report package wires the two datasets, the console
// summary and the seven fixed charts together.
package gradreport
