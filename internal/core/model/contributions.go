package model

import "sort"

// Contributions maps a calendar day to the number of recorded actions on it.
type Contributions map[Date]int

// DayCount is a single activity record.
type DayCount struct {
	Date  Date `json:"date"`
	Count int  `json:"count"`
}

// DateRange is an inclusive span of days.
type DateRange struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// Contains reports whether d falls inside the range.
func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days returns the number of days in the range, both ends included.
func (r DateRange) Days() int {
	return r.Start.DaysUntil(r.End) + 1
}

// Bounds returns the earliest and latest dates present. ok is false when empty.
func (c Contributions) Bounds() (earliest, latest Date, ok bool) {
	for d := range c {
		if !ok {
			earliest, latest, ok = d, d, true
			continue
		}
		if d.Before(earliest) {
			earliest = d
		}
		if d.After(latest) {
			latest = d
		}
	}
	return earliest, latest, ok
}

// Get returns the count for d, zero when the day is missing.
func (c Contributions) Get(d Date) int {
	return c[d]
}

// Sorted returns the records in ascending date order.
func (c Contributions) Sorted() []DayCount {
	days := make([]DayCount, 0, len(c))
	for d, n := range c {
		days = append(days, DayCount{Date: d, Count: n})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days
}
