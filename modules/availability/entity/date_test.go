package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, Date("2024-06-03"), d)

	_, err = ParseDate("03/06/2024")
	assert.Error(t, err)

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
}

func TestDateWeekday(t *testing.T) {
	// 2024-06-03 is a Monday
	tests := []struct {
		date    Date
		weekday int
	}{
		{"2024-06-03", 0},
		{"2024-06-04", 1},
		{"2024-06-07", 4},
		{"2024-06-08", 5},
		{"2024-06-09", 6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.weekday, tt.date.Weekday(), "weekday of %s", tt.date)
	}
}

func TestDateAddDays(t *testing.T) {
	d := Date("2024-06-03")
	assert.Equal(t, Date("2024-06-10"), d.AddDays(7))
	assert.Equal(t, Date("2024-05-31"), d.AddDays(-3))
	assert.Equal(t, d, d.AddDays(0))

	// month and year boundaries
	assert.Equal(t, Date("2025-01-01"), Date("2024-12-31").AddDays(1))
}

func TestMondayOnOrBefore(t *testing.T) {
	assert.Equal(t, Date("2024-06-03"), Date("2024-06-03").MondayOnOrBefore())
	assert.Equal(t, Date("2024-06-03"), Date("2024-06-05").MondayOnOrBefore())
	assert.Equal(t, Date("2024-06-03"), Date("2024-06-09").MondayOnOrBefore())
	assert.Equal(t, Date("2024-06-10"), Date("2024-06-10").MondayOnOrBefore())
}

func TestDateBefore(t *testing.T) {
	assert.True(t, Date("2024-06-03").Before("2024-06-04"))
	assert.False(t, Date("2024-06-04").Before("2024-06-04"))
	assert.False(t, Date("2024-06-05").Before("2024-06-04"))

	// ordering holds across month and year boundaries
	assert.True(t, Date("2024-09-30").Before("2024-10-01"))
	assert.True(t, Date("2024-12-31").Before("2025-01-01"))
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2024, 6, 3, 15, 30, 0, 0, time.UTC)))
	assert.Equal(t, Date("2024-06-03"), d)

	require.NoError(t, d.Scan("2024-06-04"))
	assert.Equal(t, Date("2024-06-04"), d)

	require.NoError(t, d.Scan([]byte("2024-06-05")))
	assert.Equal(t, Date("2024-06-05"), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2024, 6, 5, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, Date("2024-06-05"), DateOf(ts))
}
