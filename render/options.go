package render

import (
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

// DefaultDPI is the raster resolution of saved charts.
const DefaultDPI = 300

// Option configures a render via functional options pattern.
type Option func(*options)

type options struct {
	Width         vg.Length
	Height        vg.Length
	DPI           int
	LabelRotation float64 // degrees, x tick labels
	Logger        *zap.Logger
}

// WithSize sets the figure size in inches.
func WithSize(widthIn, heightIn float64) Option {
	return func(o *options) {
		o.Width = vg.Length(widthIn) * vg.Inch
		o.Height = vg.Length(heightIn) * vg.Inch
	}
}

// WithDPI sets the raster resolution.
func WithDPI(dpi int) Option {
	return func(o *options) {
		if dpi > 0 {
			o.DPI = dpi
		}
	}
}

// WithLabelRotation rotates x tick labels by degrees; rotated labels are
// right-aligned to their tick.
func WithLabelRotation(degrees float64) Option {
	return func(o *options) {
		o.LabelRotation = degrees
	}
}

// WithLogger routes render logs to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

func applyOptions(opts []Option) *options {
	o := &options{
		Width:  12 * vg.Inch,
		Height: 8 * vg.Inch,
		DPI:    DefaultDPI,
		Logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
