package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/spektr-org/gradreport/engine"
)

// ============================================================================
// BAR RENDERER — engine.ChartConfig → PNG
// ============================================================================
// Three layouts:
//   bar          one series, one colour per bar
//   grouped_bar  series side by side around each category tick
//   stacked_bar  series stacked, segment values inside, "Total: N" on top
// Every bar carries its value as a label.
// ============================================================================

// ErrEmptyChart is returned for a chart with no categories or series.
var ErrEmptyChart = errors.New("empty chart")

const (
	titleSize = 16
	axisSize  = 14
	labelSize = 11

	// share of each category slot covered by bars
	barFill = 0.6
	// head room above the tallest bar for its label
	headRoom = 1.12
)

// BarChart renders cfg and writes a PNG to path.
func BarChart(cfg *engine.ChartConfig, path string, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := WritePNG(f, cfg, opts...); err != nil {
		f.Close()
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	applyOptions(opts).Logger.Info("🖼️ chart saved",
		zap.String("file", path),
		zap.String("title", cfg.Title),
		zap.Int("bars", len(cfg.Categories)*len(cfg.Series)),
	)
	return nil
}

// WritePNG renders cfg as a PNG image to w.
func WritePNG(w io.Writer, cfg *engine.ChartConfig, opts ...Option) error {
	o := applyOptions(opts)

	p, err := buildPlot(cfg, o)
	if err != nil {
		return err
	}

	c := vgimg.NewWith(vgimg.UseWH(o.Width, o.Height), vgimg.UseDPI(o.DPI))
	p.Draw(draw.New(c))

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

func validate(cfg *engine.ChartConfig) error {
	if cfg == nil || len(cfg.Categories) == 0 || len(cfg.Series) == 0 {
		return ErrEmptyChart
	}
	for _, s := range cfg.Series {
		if len(s.Data) != len(cfg.Categories) {
			return fmt.Errorf("series %q has %d points for %d categories: %w",
				s.Name, len(s.Data), len(cfg.Categories), ErrEmptyChart)
		}
	}
	return nil
}

func buildPlot(cfg *engine.ChartConfig, o *options) (*plot.Plot, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.Title.TextStyle.Font.Size = vg.Points(titleSize)
	p.X.Label.Text = cfg.XAxis
	p.X.Label.TextStyle.Font.Size = vg.Points(axisSize)
	p.Y.Label.Text = cfg.YAxis
	p.Y.Label.TextStyle.Font.Size = vg.Points(axisSize)

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	slot := o.Width * 0.85 / vg.Length(len(cfg.Categories))

	var maxY float64
	var err error
	switch {
	case cfg.IsStacked():
		maxY, err = addStacked(p, cfg, slot*barFill)
	case len(cfg.Series) > 1:
		maxY, err = addGrouped(p, cfg, slot*barFill)
	default:
		maxY, err = addSingle(p, cfg, slot*barFill)
	}
	if err != nil {
		return nil, err
	}

	p.NominalX(cfg.Categories...)
	if o.LabelRotation != 0 {
		p.X.Tick.Label.Rotation = o.LabelRotation * math.Pi / 180
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	if cfg.ShowLegend {
		p.Legend.Top = true
	}

	p.Y.Min = 0
	if maxY <= 0 {
		maxY = 1
	}
	p.Y.Max = maxY * headRoom
	return p, nil
}

// addSingle draws one bar per category, each with its own colour.
func addSingle(p *plot.Plot, cfg *engine.ChartConfig, width vg.Length) (float64, error) {
	palette := engine.DefaultColors()
	series := cfg.Series[0]

	var maxY float64
	xys := make(plotter.XYs, len(series.Data))
	labels := make([]string, len(series.Data))
	for i, pt := range series.Data {
		bars, err := plotter.NewBarChart(plotter.Values{pt.Value}, width)
		if err != nil {
			return 0, fmt.Errorf("bar %q: %w", pt.Label, err)
		}
		bars.XMin = float64(i)
		bars.Color = paletteColor(cfg.Colors, i, palette)
		bars.LineStyle.Width = 0
		p.Add(bars)

		xys[i] = plotter.XY{X: float64(i), Y: pt.Value}
		labels[i] = formatValue(pt.Value)
		maxY = math.Max(maxY, pt.Value)
	}

	l, err := valueLabels(xys, labels, draw.YBottom, labelColor)
	if err != nil {
		return 0, err
	}
	l.Offset = vg.Point{Y: vg.Points(2)}
	p.Add(l)
	return maxY, nil
}

// addGrouped draws the series side by side, centred on each category.
func addGrouped(p *plot.Plot, cfg *engine.ChartConfig, slotWidth vg.Length) (float64, error) {
	palette := engine.DefaultColors()
	k := len(cfg.Series)
	width := slotWidth / vg.Length(k)

	if cfg.LegendTitle != "" {
		p.Legend.Add(cfg.LegendTitle)
	}

	var maxY float64
	for s, series := range cfg.Series {
		values := seriesValues(series)
		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return 0, fmt.Errorf("series %q: %w", series.Name, err)
		}
		bars.Color = paletteColor(seriesColors(cfg), s, palette)
		bars.LineStyle.Width = 0
		bars.Offset = (vg.Length(s) - vg.Length(k-1)/2) * width
		p.Add(bars)
		p.Legend.Add(series.Name, bars)

		xys := make(plotter.XYs, len(values))
		labels := make([]string, len(values))
		for i, v := range values {
			xys[i] = plotter.XY{X: float64(i), Y: v}
			labels[i] = formatValue(v)
			maxY = math.Max(maxY, v)
		}
		l, err := valueLabels(xys, labels, draw.YBottom, labelColor)
		if err != nil {
			return 0, err
		}
		l.Offset = vg.Point{X: bars.Offset, Y: vg.Points(2)}
		p.Add(l)
	}
	return maxY, nil
}

// addStacked stacks the series in order; the first series sits on the axis.
func addStacked(p *plot.Plot, cfg *engine.ChartConfig, width vg.Length) (float64, error) {
	palette := engine.DefaultColors()

	if cfg.LegendTitle != "" {
		p.Legend.Add(cfg.LegendTitle)
	}

	n := len(cfg.Categories)
	base := make([]float64, n)

	var segXYs plotter.XYs
	var segLabels []string
	var below *plotter.BarChart
	for s, series := range cfg.Series {
		values := seriesValues(series)
		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return 0, fmt.Errorf("series %q: %w", series.Name, err)
		}
		bars.Color = paletteColor(seriesColors(cfg), s, palette)
		bars.LineStyle.Width = 0
		if below != nil {
			bars.StackOn(below)
		}
		below = bars
		p.Add(bars)
		p.Legend.Add(series.Name, bars)

		for i, v := range values {
			if v > 0 {
				segXYs = append(segXYs, plotter.XY{X: float64(i), Y: base[i] + v/2})
				segLabels = append(segLabels, formatValue(v))
			}
			base[i] += v
		}
	}

	if len(segXYs) > 0 {
		l, err := valueLabels(segXYs, segLabels, draw.YCenter, segmentColor)
		if err != nil {
			return 0, err
		}
		p.Add(l)
	}

	var maxY float64
	totals := make(plotter.XYs, n)
	totalLabels := make([]string, n)
	for i, total := range base {
		totals[i] = plotter.XY{X: float64(i), Y: total}
		totalLabels[i] = "Total: " + formatValue(total)
		maxY = math.Max(maxY, total)
	}
	l, err := valueLabels(totals, totalLabels, draw.YBottom, labelColor)
	if err != nil {
		return 0, err
	}
	l.Offset = vg.Point{Y: vg.Points(2)}
	p.Add(l)
	return maxY, nil
}

func valueLabels(xys plotter.XYs, labels []string, yAlign draw.YAlignment, c color.Color) (*plotter.Labels, error) {
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("value labels: %w", err)
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Font.Size = vg.Points(labelSize)
		l.TextStyle[i].XAlign = draw.XCenter
		l.TextStyle[i].YAlign = yAlign
		l.TextStyle[i].Color = c
	}
	return l, nil
}

func seriesValues(s engine.ChartSeries) plotter.Values {
	values := make(plotter.Values, len(s.Data))
	for i, pt := range s.Data {
		values[i] = pt.Value
	}
	return values
}

func seriesColors(cfg *engine.ChartConfig) []string {
	colors := make([]string, len(cfg.Series))
	for i, s := range cfg.Series {
		colors[i] = s.Color
		if colors[i] == "" && i < len(cfg.Colors) {
			colors[i] = cfg.Colors[i]
		}
	}
	return colors
}

// formatValue prints whole numbers without decimals.
func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
