package model

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "valid", input: "2024-03-09", want: Date{2024, time.March, 9}},
		{name: "leap_day", input: "2024-02-29", want: Date{2024, time.February, 29}},
		{name: "month_out_of_range", input: "2024-13-01", wantErr: true},
		{name: "day_out_of_range", input: "2023-02-29", wantErr: true},
		{name: "wrong_layout", input: "03/09/2024", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2024, time.December, 30)

	assert.Equal(t, NewDate(2025, time.January, 2), d.AddDays(3))
	assert.Equal(t, NewDate(2024, time.December, 1), d.AddDays(-29))
	assert.Equal(t, time.Monday, d.Weekday())
	assert.Equal(t, NewDate(2024, time.December, 29), d.LastSunday())
	assert.Equal(t, NewDate(2024, time.December, 29), NewDate(2024, time.December, 29).LastSunday())
	assert.Equal(t, NewDate(2025, time.February, 1), NewDate(2025, time.January, 32))
	assert.Equal(t, 3, d.DaysUntil(d.AddDays(3)))
	assert.Equal(t, -365, d.DaysUntil(d.AddDays(-365)))
}

func TestDateCompare(t *testing.T) {
	a := NewDate(2024, time.May, 1)
	b := NewDate(2024, time.May, 2)
	c := NewDate(2025, time.January, 1)

	assert.True(t, a.Before(b))
	assert.True(t, c.After(b))
	assert.False(t, a.Before(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, b.Compare(c))
	assert.True(t, Date{}.IsZero())
}

func TestDateOfUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	ts := time.Date(2024, time.June, 30, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, NewDate(2024, time.June, 30), DateOf(ts))
	assert.Equal(t, NewDate(2024, time.July, 1), DateOf(ts.In(loc)))
}

func TestDateJSON(t *testing.T) {
	data, err := sonic.Marshal(DayCount{Date: NewDate(2024, time.January, 5), Count: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-01-05","count":3}`, string(data))

	var dc DayCount
	require.NoError(t, sonic.Unmarshal([]byte(`{"date":"2023-11-30","count":7}`), &dc))
	assert.Equal(t, NewDate(2023, time.November, 30), dc.Date)

	assert.Error(t, sonic.Unmarshal([]byte(`{"date":"2023-11-31","count":7}`), &dc))
}
