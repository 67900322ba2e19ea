package render

import (
	"image/color"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Fixed colours for everything that is not a bar.
var (
	labelColor   color.Color = drawing.ColorBlack
	segmentColor color.Color = drawing.ColorWhite // labels inside stacked segments
	gridColor    color.Color = chart.ColorAlternateGray
)

// paletteColor resolves the i-th colour of a chart, falling back to the
// engine's cycle when colors is short.
func paletteColor(colors []string, i int, fallback []string) color.Color {
	if i < len(colors) && colors[i] != "" {
		return parseHex(colors[i])
	}
	return parseHex(fallback[i%len(fallback)])
}

func parseHex(hex string) color.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
