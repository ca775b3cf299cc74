package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/penwyp/go-gh-heat/internal/core/heatmap"
	"github.com/penwyp/go-gh-heat/internal/core/model"
	"github.com/penwyp/go-gh-heat/internal/util"
)

var weekdayLabels = [7]string{"    ", "Mon ", "    ", "Wed ", "    ", "Fri ", "    "}

// keyCounts sample one count from each intensity bucket.
var keyCounts = [Levels]int{0, 4, 8, 12, 16, 20}

// Renderer writes heatmaps to an output stream.
type Renderer struct {
	out  io.Writer
	opts Options
}

func NewRenderer(out io.Writer, opts Options) *Renderer {
	return &Renderer{out: out, opts: opts}
}

// Render draws the month header, the bordered grid and the key.
func (r *Renderer) Render(grid heatmap.Grid, records model.Contributions) error {
	w := bufio.NewWriter(r.out)
	width := grid.Width()

	w.WriteString("\n")
	w.WriteString(MonthHeader(grid))
	w.WriteString("\n")
	w.WriteString(border(width, "  "+grid.Range.Start.String()+"-"+grid.Range.End.String()))

	for day := 0; day < 7; day++ {
		w.WriteString(weekdayLabels[day])
		for _, week := range grid.Weeks {
			w.WriteString(r.opts.Cell(records.Get(week[day])))
		}
		w.WriteString("\n")
	}

	w.WriteString(border(width, ""))
	w.WriteString("\n")
	if line := r.Key(); line != "" {
		w.WriteString(line)
		w.WriteString("\n")
	}
	return w.Flush()
}

// Key returns the legend line, or "" in numbers mode.
func (r *Renderer) Key() string {
	if r.opts.Mode == model.ModeNumbers {
		return ""
	}
	var b strings.Builder
	b.WriteString("  Less ")
	for _, c := range keyCounts {
		b.WriteString(r.opts.Cell(c))
	}
	b.WriteString(" More")
	return b.String()
}

// MonthHeader places each month label above its week column. A label that
// would run into the previous one is dropped.
func MonthHeader(grid heatmap.Grid) string {
	line := strings.Repeat(" ", heatmap.LabelGutter)
	for i, label := range grid.MonthLabels {
		col := label.Column()
		if i > 0 && util.GetDisplayWidth(line) >= col {
			continue
		}
		line = util.PadRight(line, col) + label.Name
	}
	return strings.TrimRight(line, " ")
}

func border(width int, suffix string) string {
	return strings.Repeat("=", width) + suffix + "\n"
}
