package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidTimeString(t *testing.T) {
	valid := []string{"00:00", "09:00", "12:30", "23:59"}
	for _, s := range valid {
		require.True(t, ValidTimeString(s), "expected %q to be valid", s)
	}
	invalid := []string{"", "9:00", "24:00", "12:60", "12:5", "12-30", "ab:cd", "12:30pm"}
	for _, s := range invalid {
		require.False(t, ValidTimeString(s), "expected %q to be invalid", s)
	}
}

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"12:30", 750},
		{"23:50", 1430},
		{"23:59", 1439},
	}
	for _, tc := range tests {
		got, err := TimeToMinutes(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	_, err := TimeToMinutes("24:00")
	require.Error(t, err)
}

func TestMinutesToTime(t *testing.T) {
	require.Equal(t, "00:00", MinutesToTime(0))
	require.Equal(t, "09:05", MinutesToTime(545))
	require.Equal(t, "23:59", MinutesToTime(1439))
	// Values past midnight wrap onto the next day's clock face.
	require.Equal(t, "00:00", MinutesToTime(1440))
	require.Equal(t, "00:20", MinutesToTime(1460))
	require.Equal(t, "23:59", MinutesToTime(-1))
}

func TestAddMinutesToTime(t *testing.T) {
	got, err := AddMinutesToTime("09:00", 90)
	require.NoError(t, err)
	require.Equal(t, "10:30", got)

	got, err = AddMinutesToTime("23:50", 30)
	require.NoError(t, err)
	require.Equal(t, "00:20", got)

	_, err = AddMinutesToTime("9:00", 30)
	require.Error(t, err)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 int
		want           bool
	}{
		{"disjoint before", 540, 600, 660, 720, false},
		{"touching end to start", 540, 600, 600, 660, false},
		{"partial overlap", 540, 630, 600, 660, true},
		{"identical", 540, 600, 540, 600, true},
		{"contained", 540, 720, 600, 660, true},
		{"containing", 600, 660, 540, 720, true},
		{"touching start to end", 600, 660, 540, 600, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Overlaps(tc.s1, tc.e1, tc.s2, tc.e2))
			// The predicate is symmetric.
			require.Equal(t, tc.want, Overlaps(tc.s2, tc.e2, tc.s1, tc.e1))
		})
	}
}

func TestParseDate(t *testing.T) {
	day, err := ParseDate("2024-01-01")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), day)
	require.Equal(t, time.Monday, day.Weekday())

	// RFC 3339 timestamps are accepted and truncated to the calendar day.
	day, err = ParseDate("2024-01-01T15:04:05Z")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), day)

	_, err = ParseDate("01/01/2024")
	require.Error(t, err)
}

func TestDayRange(t *testing.T) {
	day := time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)
	start, end := DayRange(day)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2024, 1, 1, 23, 59, 59, 999000000, time.UTC), end)
}
