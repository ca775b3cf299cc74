package heatmap

import "github.com/penwyp/go-gh-heat/internal/core/model"

// Summary holds aggregate statistics over a contribution map.
type Summary struct {
	Total         int        `json:"total"`
	ActiveDays    int        `json:"active_days"`
	Peak          int        `json:"peak"`
	PeakDate      model.Date `json:"peak_date"`
	Average       float64    `json:"average"`
	LongestStreak int        `json:"longest_streak"`
	CurrentStreak int        `json:"current_streak"`
}

// Summarize computes the statistics for records as of today.
func Summarize(records model.Contributions, today model.Date) Summary {
	var s Summary

	days := records.Sorted()
	run := 0
	var prev model.Date
	for _, d := range days {
		s.Total += d.Count
		if d.Count > s.Peak {
			s.Peak = d.Count
			s.PeakDate = d.Date
		}
		if d.Count <= 0 {
			run = 0
			continue
		}

		s.ActiveDays++
		if run > 0 && prev.AddDays(1) == d.Date {
			run++
		} else {
			run = 1
		}
		prev = d.Date
		s.LongestStreak = max(s.LongestStreak, run)
	}

	if s.ActiveDays > 0 {
		s.Average = float64(s.Total) / float64(s.ActiveDays)
	}
	s.CurrentStreak = currentStreak(records, today)
	return s
}

// currentStreak counts consecutive active days ending today, or ending
// yesterday when nothing has been recorded for today yet.
func currentStreak(records model.Contributions, today model.Date) int {
	day := today
	if records[day] <= 0 {
		day = day.AddDays(-1)
	}

	n := 0
	for records[day] > 0 {
		n++
		day = day.AddDays(-1)
	}
	return n
}
