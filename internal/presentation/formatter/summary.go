package formatter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/penwyp/go-gh-heat/internal/util"
)

// SummaryFormatter prints the totals block shown under the heatmap.
type SummaryFormatter struct {
	out   io.Writer
	color bool
}

// NewSummaryFormatter creates a SummaryFormatter. With color off no ANSI
// sequences are written.
func NewSummaryFormatter(out io.Writer, color bool) *SummaryFormatter {
	return &SummaryFormatter{out: out, color: color}
}

// Format writes the summary block for report.
func (f *SummaryFormatter) Format(report Report) error {
	s := report.Summary
	_, err := fmt.Fprintf(f.out,
		"\nUser: %s\n"+
			"Total Contributions: %s\n"+
			"Active Days: %s\n"+
			"Max Contributions in a Day: %s\n"+
			"Average Contributions on Active Days: %s\n"+
			"Longest Streak: %s\n"+
			"Current Streak: %s\n",
		f.paint(report.Username, util.ColorBrightWhite, util.ColorBold),
		f.number(s.Total),
		f.number(s.ActiveDays),
		f.number(s.Peak),
		util.FormatAverage(s.Average),
		util.FormatDays(s.LongestStreak),
		util.FormatDays(s.CurrentStreak),
	)
	return err
}

func (f *SummaryFormatter) number(n int) string {
	return f.paint(strconv.Itoa(n), util.ColorGreen)
}

func (f *SummaryFormatter) paint(text string, codes ...string) string {
	if !f.color {
		return text
	}
	return util.Paint(text, codes...)
}
