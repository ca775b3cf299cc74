// Package render draws a contribution grid as a terminal heatmap.
package render

import (
	"fmt"

	"github.com/penwyp/go-gh-heat/internal/core/model"
	"github.com/penwyp/go-gh-heat/internal/util"
)

// Levels is the number of intensity buckets, including the empty bucket.
const Levels = 6

var (
	symbolGlyphs = [Levels]string{"  ", "..", "--", "~~", "**", "##"}
	symbolColors = [Levels]string{"", util.ColorBrightBlack, util.ColorBlue, util.ColorGreen, util.ColorYellow, util.ColorRed}

	darkRamp = [Levels]util.RGB{
		{},
		{R: 59}, {R: 102}, {R: 157}, {R: 204}, {R: 255},
	}
	lightRamp = [Levels]util.RGB{
		{},
		{R: 220, G: 247, B: 220},
		{R: 153, G: 237, B: 153},
		{R: 85, G: 219, B: 85},
		{R: 44, G: 160, B: 44},
		{R: 0, G: 109, B: 0},
	}
)

// Classify buckets a daily count into an intensity level from 0 to 5.
func Classify(count int) int {
	switch {
	case count <= 0:
		return 0
	case count < 5:
		return 1
	case count < 10:
		return 2
	case count < 15:
		return 3
	case count < 20:
		return 4
	default:
		return 5
	}
}

// ResolveMode picks the cell mode from the CLI switches. Numbers win over
// symbols, which win over color.
func ResolveMode(symbols, numbers bool) string {
	switch {
	case numbers:
		return model.ModeNumbers
	case symbols:
		return model.ModeSymbols
	default:
		return model.ModeColor
	}
}

// Options control how cells are drawn.
type Options struct {
	Mode     string
	DarkMode bool
	// Color enables ANSI escapes. Without it color mode falls back to glyphs.
	Color bool
}

// Cell formats a single day. Every cell is two columns wide.
func (o Options) Cell(count int) string {
	switch o.Mode {
	case model.ModeNumbers:
		return fmt.Sprintf("%2d", count)
	case model.ModeSymbols:
		return o.symbol(Classify(count))
	default:
		if !o.Color {
			return o.symbol(Classify(count))
		}
		return o.block(Classify(count))
	}
}

func (o Options) symbol(level int) string {
	glyph := symbolGlyphs[level]
	if !o.Color || symbolColors[level] == "" {
		return glyph
	}
	return util.Paint(glyph, symbolColors[level])
}

func (o Options) block(level int) string {
	if level == 0 {
		return "  "
	}
	ramp := lightRamp
	if o.DarkMode {
		ramp = darkRamp
	}
	return util.Paint("  ", ramp[level].Background())
}
