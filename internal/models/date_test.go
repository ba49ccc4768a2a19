package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-03-01 ")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.March, 1), d)

	_, err = ParseDate("03/01/2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")
}

func TestDate_MonthHelpers(t *testing.T) {
	d := NewDate(2024, time.February, 14)

	assert.Equal(t, NewDate(2024, time.February, 1), d.FirstOfMonth())
	assert.Equal(t, NewDate(2024, time.February, 29), d.LastOfMonth())
	assert.Equal(t, NewDate(2024, time.March, 14), d.AddMonths(1))
	assert.Equal(t, NewDate(2024, time.January, 31), d.FirstOfMonth().AddDays(-1))
	assert.Equal(t, 13, d.DaysSince(d.FirstOfMonth()))
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  Date
	}{
		{"time from postgres", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), NewDate(2024, 1, 5)},
		{"plain text", "2024-01-05", NewDate(2024, 1, 5)},
		{"sqlite timestamp text", "2024-01-05 00:00:00+00:00", NewDate(2024, 1, 5)},
		{"bytes", []byte("2024-01-05"), NewDate(2024, 1, 5)},
		{"null", nil, Date{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.value))
			assert.Equal(t, tt.want, d)
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
}

func TestDate_ValueAndJSON(t *testing.T) {
	d := NewDate(2024, time.December, 31)

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", v)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-12-31"`, string(raw))

	raw, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))

	var decoded Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-12-31"`), &decoded))
	assert.True(t, decoded.Equal(d))
}

func TestPeriod_DaysAndContains(t *testing.T) {
	p := Period{Start: NewDate(2024, 1, 1), End: NewDate(2024, 1, 28)}

	assert.Equal(t, 28, p.Days())
	assert.True(t, p.Contains(NewDate(2024, 1, 1)))
	assert.True(t, p.Contains(NewDate(2024, 1, 28)))
	assert.False(t, p.Contains(NewDate(2024, 1, 29)))
	assert.False(t, p.IsZero())
	assert.True(t, Period{}.IsZero())
}
