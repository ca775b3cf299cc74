package formatter

import (
	"bytes"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-gh-heat/internal/core/heatmap"
	"github.com/penwyp/go-gh-heat/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = model.NewDate(2024, time.March, 13)

func aliceReport() Report {
	records := model.Contributions{}
	for i, c := range []int{0, 1, 4, 8, 12, 0, 1} {
		records[today.AddDays(i-6)] = c
	}
	grid := heatmap.BuildGrid(records, today)
	return NewReport("alice", model.TierScrape, grid, records, heatmap.Summarize(records, today))
}

func TestJSONFormatterFormat(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewJSONFormatter(&buf).Format(aliceReport()))

	var doc struct {
		Username string `json:"username"`
		Source   string `json:"source"`
		Range    struct {
			Start string `json:"start"`
			End   string `json:"end"`
		} `json:"range"`
		Days []struct {
			Date  string `json:"date"`
			Count int    `json:"count"`
		} `json:"days"`
		Summary struct {
			Total      int     `json:"total"`
			ActiveDays int     `json:"active_days"`
			Peak       int     `json:"peak"`
			PeakDate   string  `json:"peak_date"`
			Average    float64 `json:"average"`
		} `json:"summary"`
	}
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "alice", doc.Username)
	assert.Equal(t, "scrape", doc.Source)
	assert.Equal(t, "2024-03-03", doc.Range.Start)
	assert.Equal(t, "2024-03-13", doc.Range.End)
	require.Len(t, doc.Days, 7)
	assert.Equal(t, "2024-03-07", doc.Days[0].Date)
	assert.Equal(t, 12, doc.Days[4].Count)
	assert.Equal(t, 26, doc.Summary.Total)
	assert.Equal(t, 5, doc.Summary.ActiveDays)
	assert.Equal(t, 12, doc.Summary.Peak)
	assert.Equal(t, "2024-03-11", doc.Summary.PeakDate)
	assert.InDelta(t, 5.2, doc.Summary.Average, 1e-9)
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("}\n")))
}

func TestJSONFormatterFormat_NoDays(t *testing.T) {
	var buf bytes.Buffer
	report := Report{Username: "bob", Source: model.TierSynthetic, Summary: heatmap.Summary{PeakDate: today}}

	require.NoError(t, NewJSONFormatter(&buf).Format(report))

	var doc map[string]any
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, []any{}, doc["days"])
}
