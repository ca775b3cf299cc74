// Package heatmap lays contributions out into a week-major calendar grid and
// derives the summary statistics shown next to it.
package heatmap

import (
	"time"

	"github.com/penwyp/go-gh-heat/internal/core/model"
)

const (
	// LabelGutter is the width of the weekday label column.
	LabelGutter = 4
	// CellWidth is the width of one rendered day.
	CellWidth = 2
	// labelPadding is extra room kept after the last month label.
	labelPadding = 10
)

// Week holds seven consecutive days, Sunday first.
type Week [7]model.Date

// MonthLabel marks the week column where a month's name is printed.
type MonthLabel struct {
	Position int
	Name     string
}

// Column returns the character offset of the label from the start of the line.
func (l MonthLabel) Column() int {
	return LabelGutter + CellWidth*l.Position
}

// Grid is the calendar layout of a contribution map.
type Grid struct {
	Weeks       []Week
	Range       model.DateRange
	MonthLabels []MonthLabel
}

// BuildGrid derives the grid for records. The range spans the earliest to the
// latest record, with the start moved back to a Sunday. An empty record set
// yields a single week containing today.
func BuildGrid(records model.Contributions, today model.Date) Grid {
	start, end, ok := records.Bounds()
	if ok {
		start = start.LastSunday()
	} else {
		start, end = today, today
	}

	weeks := buildWeeks(start, end)
	return Grid{
		Weeks:       weeks,
		Range:       model.DateRange{Start: start, End: end},
		MonthLabels: monthLabels(weeks),
	}
}

// buildWeeks walks start..end, closing a week after each Saturday, and pads
// the trailing partial week forward to seven days.
func buildWeeks(start, end model.Date) []Week {
	var weeks []Week
	var current []model.Date

	for d := start; !d.After(end); d = d.AddDays(1) {
		current = append(current, d)
		if d.Weekday() == time.Saturday {
			weeks = append(weeks, toWeek(current))
			current = current[:0]
		}
	}

	if len(current) > 0 {
		for len(current) < 7 {
			current = append(current, current[len(current)-1].AddDays(1))
		}
		weeks = append(weeks, toWeek(current))
	}
	return weeks
}

// toWeek copies days into a Week. Only the empty-record range can start on a
// day other than Sunday; its days keep calendar order.
func toWeek(days []model.Date) Week {
	var w Week
	copy(w[:], days)
	return w
}

// monthLabels puts each month's name above the first week whose first day
// falls in that month. The first column is always labeled.
func monthLabels(weeks []Week) []MonthLabel {
	labels := make([]MonthLabel, 0, 13)
	for i, week := range weeks {
		month := week[0].Month
		if i == 0 || month != weeks[i-1][0].Month {
			labels = append(labels, MonthLabel{Position: i, Name: MonthAbbrev(month)})
		}
	}
	return labels
}

// FinalLabelPosition is the week column of the last month label.
func (g Grid) FinalLabelPosition() int {
	if len(g.MonthLabels) == 0 {
		return 0
	}
	return g.MonthLabels[len(g.MonthLabels)-1].Position
}

// Width is the border width: wide enough for both the grid and the month header.
func (g Grid) Width() int {
	gridWidth := LabelGutter + CellWidth*len(g.Weeks)
	headerWidth := LabelGutter + CellWidth*g.FinalLabelPosition() + labelPadding
	return max(gridWidth, headerWidth)
}

// Days returns every date in the grid in calendar order, padding included.
func (g Grid) Days() []model.Date {
	days := make([]model.Date, 0, 7*len(g.Weeks))
	for _, w := range g.Weeks {
		days = append(days, w[:]...)
	}
	return days
}

// MonthAbbrev returns the three-letter English month name.
func MonthAbbrev(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return m.String()[:3]
}
