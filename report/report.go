package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/spektr-org/gradreport/config"
	"github.com/spektr-org/gradreport/engine"
	"github.com/spektr-org/gradreport/helpers"
	"github.com/spektr-org/gradreport/render"
	"github.com/spektr-org/gradreport/schema"
)

// ============================================================================
// REPORT — Load → summarize → diagnose → render
// ============================================================================
// Run is sequential. The context is checked between stages and before each
// chart; files already written stay on disk when it is cancelled.
// ============================================================================

// Option configures Run via functional options pattern.
type Option func(*options)

type options struct {
	Logger *zap.Logger
}

// WithLogger routes report, engine and render logs to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

func applyOptions(opts []Option) *options {
	o := &options{Logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type runner struct {
	cfg         config.Config
	out         io.Writer
	log         *zap.Logger
	schemas     [2]schema.Config // indexed by Dataset
	graduates   *helpers.Table
	prospective *helpers.Table
}

// Run produces the full report: console summary on out, PNG charts in
// cfg.Output.Dir.
func Run(ctx context.Context, cfg config.Config, out io.Writer, opts ...Option) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	r := &runner{
		cfg: cfg,
		out: out,
		log: applyOptions(opts).Logger,
		schemas: [2]schema.Config{
			Graduates:   GraduatesSchema(cfg.Inputs.Graduates),
			Prospective: ProspectiveSchema(cfg.Inputs.Prospective),
		},
	}

	stages := []struct {
		name string
		fn   func() error
	}{
		{"load", r.load},
		{"summary", r.summarize},
		{"diagnostics", r.diagnose},
		{"charts", func() error { return r.renderCharts(ctx) }},
	}
	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("report stopped before %s: %w", stage.name, err)
		}
		if err := stage.fn(); err != nil {
			return err
		}
	}

	printDone(out)
	r.log.Info("✅ report complete", zap.String("dir", cfg.Output.Dir))
	return nil
}

func (r *runner) load() error {
	tables := make([]*helpers.Table, len(r.schemas))
	for i, sch := range r.schemas {
		t, err := helpers.LoadCSVFile(sch.File, sch)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", sch.Name, err)
		}
		tables[i] = t
	}
	r.graduates, r.prospective = tables[Graduates], tables[Prospective]

	for _, t := range []*helpers.Table{r.graduates, r.prospective} {
		rows, cols := t.Shape()
		r.log.Info("📂 dataset loaded",
			zap.String("name", t.Name),
			zap.String("file", t.Path),
			zap.Int("rows", rows),
			zap.Int("columns", cols),
		)
	}

	printShape(r.out, "Graduates", r.graduates)
	printShape(r.out, "Prospective graduates", r.prospective)
	return nil
}

func (r *runner) summarize() error {
	view := r.graduates.View

	sections := []struct {
		heading string
		footer  bool
		spec    engine.QuerySpec
	}{
		{"Employment Status Counts", true, engine.QuerySpec{
			Intent:      "table",
			Aggregation: "count",
			GroupBy:     []string{ColStatus},
			SortBy:      "value_desc",
		}},
		{"Percentage of STEM vs non-STEM graduates", true, engine.QuerySpec{
			Intent:      "table",
			Aggregation: "percent",
			GroupBy:     []string{ColStem},
			SortBy:      "value_desc",
		}},
		{"Employment Status by STEM field (%)", false, engine.QuerySpec{
			Intent:      "table",
			Aggregation: "count",
			GroupBy:     []string{ColStatus, ColStem},
			Normalize:   "row",
		}},
	}

	for _, s := range sections {
		result, err := engine.Execute(s.spec, view, engine.WithLogger(r.log))
		if err != nil {
			return fmt.Errorf("%s: %w", s.heading, err)
		}
		printTable(r.out, s.heading, result.TableData, s.footer)
	}
	return nil
}

func (r *runner) diagnose() error {
	view := r.graduates.View
	sch := r.schemas[Graduates]

	printMissing(r.out, "Missing Values in Graduates Dataset", engine.MissingCounts(view))

	incomplete, err := engine.CountIncomplete(view, sch.ImportantKeys())
	if err != nil {
		return fmt.Errorf("incomplete entries: %w", err)
	}
	printCount(r.out, "Number of incomplete entries", incomplete)

	employed, flagged, err := engine.CountMissingWhere(view,
		engine.Filters{Dimensions: map[string][]string{ColStatus: {StatusEmployed}}},
		[]string{ColOrganization, ColJobTitle},
	)
	if err != nil {
		return fmt.Errorf("employed missing details: %w", err)
	}
	printCount(r.out, "Employed graduates missing organization or job title", flagged)

	r.log.Debug("🔍 diagnostics",
		zap.Int("incomplete", incomplete),
		zap.Int("employed", employed),
		zap.Int("employedMissingDetails", flagged),
	)

	if n := engine.UnmatchedResponses(r.prospective.View, ColSupport, SupportOptions); n > 0 {
		r.log.Warn("⚠️ support responses match no known option",
			zap.Int("responses", n),
			zap.String("column", ColSupport),
		)
	}
	return nil
}

func (r *runner) renderCharts(ctx context.Context) error {
	if err := os.MkdirAll(r.cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	for _, chart := range Charts(r.schemas[Graduates], r.schemas[Prospective]) {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("report stopped before %s: %w", chart.File, err)
		}
		if err := r.renderChart(chart); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) renderChart(chart Chart) error {
	view := r.graduates.View
	if chart.Dataset == Prospective {
		view = r.prospective.View
	}

	result, err := engine.Execute(chart.Spec, view, engine.WithLogger(r.log))
	if err != nil {
		return fmt.Errorf("%s: %w", chart.File, err)
	}
	if result.ChartConfig.IsStacked() {
		stackNonStemFirst(result.ChartConfig)
	}

	return render.BarChart(result.ChartConfig, filepath.Join(r.cfg.Output.Dir, chart.File),
		render.WithSize(chart.Width, chart.Height),
		render.WithDPI(r.cfg.Output.DPI),
		render.WithLabelRotation(chart.Rotation),
		render.WithLogger(r.log),
	)
}
