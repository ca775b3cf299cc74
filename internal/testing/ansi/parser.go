// Package ansi decodes SGR-styled terminal output so tests can assert on
// colors as well as text.
package ansi

import (
	"regexp"
	"strconv"
	"strings"
)

// ANSI escape code patterns
var (
	ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	ansiSGR    = regexp.MustCompile(`\x1b\[([0-9;]*)m`)
)

// Style is the graphic state in effect for a run of text.
type Style struct {
	Bold       bool
	Foreground int // SGR color code, 0 when unset
	Background *[3]int
}

// Segment is a run of text printed with one style.
type Segment struct {
	Text  string
	Style Style
}

// StripANSI removes all ANSI escape codes from a string
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// Parse splits a line into styled segments. Adjacent text with the same style
// is merged.
func Parse(line string) []Segment {
	var segments []Segment
	var style Style

	emit := func(text string) {
		if text == "" {
			return
		}
		if n := len(segments); n > 0 && sameStyle(segments[n-1].Style, style) {
			segments[n-1].Text += text
			return
		}
		segments = append(segments, Segment{Text: text, Style: style})
	}

	rest := line
	for {
		loc := ansiSGR.FindStringSubmatchIndex(rest)
		if loc == nil {
			emit(rest)
			return segments
		}
		emit(rest[:loc[0]])
		style = apply(style, params(rest[loc[2]:loc[3]]))
		rest = rest[loc[1]:]
	}
}

// Backgrounds returns the background of each printed column pair, nil where
// no background is set. It is meant for heatmap rows whose cells are two
// columns wide.
func Backgrounds(line string) []*[3]int {
	var cells []*[3]int
	for _, seg := range Parse(line) {
		for i := 0; i+1 < len(seg.Text); i += 2 {
			cells = append(cells, seg.Style.Background)
		}
	}
	return cells
}

func params(raw string) []int {
	if raw == "" {
		return []int{0}
	}
	parts := strings.Split(raw, ";")
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		values = append(values, n)
	}
	return values
}

// apply folds SGR parameters into the current style.
func apply(style Style, codes []int) Style {
	for i := 0; i < len(codes); i++ {
		switch c := codes[i]; {
		case c == 0:
			style = Style{}
		case c == 1:
			style.Bold = true
		case c == 48 && i+4 < len(codes) && codes[i+1] == 2:
			style.Background = &[3]int{codes[i+2], codes[i+3], codes[i+4]}
			i += 4
		case c == 49:
			style.Background = nil
		case (c >= 30 && c <= 37) || (c >= 90 && c <= 97):
			style.Foreground = c
		case c == 39:
			style.Foreground = 0
		}
	}
	return style
}

func sameStyle(a, b Style) bool {
	if a.Bold != b.Bold || a.Foreground != b.Foreground {
		return false
	}
	if a.Background == nil || b.Background == nil {
		return a.Background == b.Background
	}
	return *a.Background == *b.Background
}
