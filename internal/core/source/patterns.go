package source

import (
	"regexp"
	"strconv"

	"github.com/penwyp/go-gh-heat/internal/core/model"
)

// Pattern extracts (date, value) pairs from one known calendar markup layout.
// The first capture group is the date, the second the numeric value.
type Pattern struct {
	Name    string
	re      *regexp.Regexp
	toCount func(value int) int
}

// NewPattern compiles expr. toCount converts the captured value into a count;
// nil keeps the value as-is.
func NewPattern(name, expr string, toCount func(int) int) Pattern {
	if toCount == nil {
		toCount = func(v int) int { return v }
	}
	return Pattern{Name: name, re: regexp.MustCompile(expr), toCount: toCount}
}

// Extract returns every pair the pattern finds. A captured date that is not a
// real calendar day is a parse error.
func (p Pattern) Extract(markup string) (model.Contributions, error) {
	contributions := make(model.Contributions)
	for _, m := range p.re.FindAllStringSubmatch(markup, -1) {
		date, err := model.ParseDate(m[1])
		if err != nil {
			return nil, newFetchError(model.TierScrape, KindParse, err, "invalid date format: %s", m[1])
		}
		value, err := strconv.Atoi(m[2])
		if err != nil {
			value = 0
		}
		contributions[date] = p.toCount(value)
	}
	return contributions, nil
}

// LevelToCount maps a calendar intensity level (0-4) to a representative count.
// Levels outside that range are used as the count directly.
func LevelToCount(level int) int {
	switch level {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return 4
	case 3:
		return 8
	case 4:
		return 12
	default:
		return level
	}
}

const datePattern = `data-date="([0-9]{4}-[0-9]{2}-[0-9]{2})"`

// DefaultPatterns lists the calendar layouts seen so far, in the order they are tried.
var DefaultPatterns = []Pattern{
	NewPattern("data-level", datePattern+`[^>]*data-level="([0-9]+)"[^>]*>`, LevelToCount),
	NewPattern("rect-data-count", `<rect[^>]*`+datePattern+`[^>]*data-count="([0-9]+)"[^>]*>`, nil),
	NewPattern("td-calendar-day", `<td[^>]*`+datePattern+`[^>]*class="ContributionCalendar-day"[^>]*data-level="([0-9]+)"[^>]*>`, LevelToCount),
}

// ExtractContributions tries patterns in order and returns the result of the
// first one that matches anything, with its name. Nothing matching is not an
// error; the map is simply empty.
func ExtractContributions(markup string, patterns []Pattern) (model.Contributions, string, error) {
	for _, p := range patterns {
		contributions, err := p.Extract(markup)
		if err != nil {
			return nil, p.Name, err
		}
		if len(contributions) > 0 {
			return contributions, p.Name, nil
		}
	}
	return model.Contributions{}, "", nil
}
