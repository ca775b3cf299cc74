package formatter

import (
	"github.com/penwyp/go-gh-heat/internal/core/heatmap"
	"github.com/penwyp/go-gh-heat/internal/core/model"
)

// Report is everything a formatter may print about one user.
type Report struct {
	Username string           `json:"username"`
	Source   string           `json:"source"`
	Range    model.DateRange  `json:"range"`
	Days     []model.DayCount `json:"days"`
	Summary  heatmap.Summary  `json:"summary"`
}

// NewReport assembles a report from the fetched records.
func NewReport(username, source string, grid heatmap.Grid, records model.Contributions, summary heatmap.Summary) Report {
	return Report{
		Username: username,
		Source:   source,
		Range:    grid.Range,
		Days:     records.Sorted(),
		Summary:  summary,
	}
}

// Formatter writes a report in one output format.
type Formatter interface {
	Format(report Report) error
}
