package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/penwyp/go-gh-heat/internal/core/heatmap"
	"github.com/penwyp/go-gh-heat/internal/core/model"
	"github.com/penwyp/go-gh-heat/internal/testing/ansi"
	"github.com/penwyp/go-gh-heat/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = model.NewDate(2024, time.March, 13)

func aliceRecords() model.Contributions {
	records := model.Contributions{}
	for i, c := range []int{0, 1, 4, 8, 12, 0, 1} {
		records[today.AddDays(i-6)] = c
	}
	return records
}

func TestRender_Numbers(t *testing.T) {
	records := aliceRecords()
	var buf bytes.Buffer

	r := NewRenderer(&buf, Options{Mode: model.ModeNumbers, Color: true})
	require.NoError(t, r.Render(heatmap.BuildGrid(records, today), records))

	want := strings.Join([]string{
		"",
		"    Mar",
		"==============  2024-03-03-2024-03-13",
		"     0 8",
		"Mon  012",
		"     0 0",
		"Wed  0 1",
		"     0 0",
		"Fri  1 0",
		"     4 0",
		"==============",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRender_SymbolsWithKey(t *testing.T) {
	records := aliceRecords()
	var buf bytes.Buffer

	r := NewRenderer(&buf, Options{Mode: model.ModeSymbols, Color: true})
	require.NoError(t, r.Render(heatmap.BuildGrid(records, today), records))

	lines := strings.Split(util.StripANSI(buf.String()), "\n")
	require.Len(t, lines, 14)
	assert.Equal(t, "      --", lines[3])
	assert.Equal(t, "Mon   ~~", lines[4])
	assert.Equal(t, "Fri ..  ", lines[8])
	assert.Equal(t, "  Less   ..--~~**## More", lines[12])
	assert.Contains(t, buf.String(), util.ColorBlue+"--"+util.ColorReset)
}

func TestRender_ColorRows(t *testing.T) {
	records := aliceRecords()
	var buf bytes.Buffer

	r := NewRenderer(&buf, Options{Mode: model.ModeColor, Color: true})
	require.NoError(t, r.Render(heatmap.BuildGrid(records, today), records))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 14)

	// Mon row: 2024-03-04 (0) and 2024-03-11 (12).
	mon := ansi.Backgrounds(strings.TrimPrefix(lines[4], "Mon "))
	require.Len(t, mon, 2)
	assert.Nil(t, mon[0])
	assert.Equal(t, &[3]int{85, 219, 85}, mon[1])

	// Sat row: 2024-03-09 (4) and the padded 2024-03-16.
	sat := ansi.Backgrounds(strings.TrimPrefix(lines[9], "    "))
	require.Len(t, sat, 2)
	assert.Equal(t, &[3]int{220, 247, 220}, sat[0])
	assert.Nil(t, sat[1])
}

func TestRender_NoColorEmitsNoEscapes(t *testing.T) {
	records := aliceRecords()
	var buf bytes.Buffer

	r := NewRenderer(&buf, Options{Mode: model.ModeColor, DarkMode: true})
	require.NoError(t, r.Render(heatmap.BuildGrid(records, today), records))

	assert.NotContains(t, buf.String(), "\033[")
	assert.Contains(t, buf.String(), "  Less   ..--~~**## More\n")
}

func TestRender_ColorKey(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, Options{Mode: model.ModeColor, DarkMode: true, Color: true})

	key := r.Key()

	assert.True(t, strings.HasPrefix(key, "  Less   "))
	assert.True(t, strings.HasSuffix(key, " More"))
	assert.Contains(t, key, "\033[48;2;255;0;0m  \033[0m")
	assert.Equal(t, len("  Less ")+2*Levels+len(" More"), util.GetDisplayWidth(util.StripANSI(key)))
}

func TestKey_OmittedForNumbers(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, Options{Mode: model.ModeNumbers})
	assert.Empty(t, r.Key())
}

func TestMonthHeader(t *testing.T) {
	t.Run("aligned_to_columns", func(t *testing.T) {
		grid := heatmap.Grid{MonthLabels: []heatmap.MonthLabel{
			{Position: 0, Name: "Feb"},
			{Position: 4, Name: "Mar"},
			{Position: 9, Name: "Apr"},
		}}
		header := MonthHeader(grid)

		assert.Equal(t, "    Feb     Mar       Apr", header)
		assert.Equal(t, 4+2*4, strings.Index(header, "Mar"))
		assert.Equal(t, 4+2*9, strings.Index(header, "Apr"))
	})

	t.Run("overlapping_label_dropped", func(t *testing.T) {
		grid := heatmap.Grid{MonthLabels: []heatmap.MonthLabel{
			{Position: 0, Name: "Dec"},
			{Position: 1, Name: "Jan"},
			{Position: 5, Name: "Feb"},
		}}
		assert.Equal(t, "    Dec       Feb", MonthHeader(grid))
	})
}
