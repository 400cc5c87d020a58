// File: utils/clock.go
package utils

import (
	"fmt"
	"regexp"
	"time"
)

// timeSlotPattern matches 24-hour zero-padded "HH:MM" strings.
var timeSlotPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

const minutesPerDay = 24 * 60

// ValidTimeString reports whether s is a well-formed "HH:MM" time.
func ValidTimeString(s string) bool {
	return timeSlotPattern.MatchString(s)
}

// TimeToMinutes converts an "HH:MM" string to minutes from midnight.
func TimeToMinutes(s string) (int, error) {
	if !timeSlotPattern.MatchString(s) {
		return 0, fmt.Errorf("invalid time string %q, expected HH:MM", s)
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	return h*60 + m, nil
}

// MinutesToTime converts minutes from midnight back to a zero-padded
// "HH:MM" string. Values are reduced modulo 1440, so an end time past
// midnight wraps into the next day's clock face without changing the
// calendar date.
func MinutesToTime(m int) string {
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddMinutesToTime adds a duration in minutes to an "HH:MM" time,
// wrapping at the 24h boundary: AddMinutesToTime("23:50", 30) == "00:20".
func AddMinutesToTime(s string, minutes int) (string, error) {
	base, err := TimeToMinutes(s)
	if err != nil {
		return "", err
	}
	return MinutesToTime(base + minutes), nil
}

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// (minutes from midnight) intersect. Touching intervals do not overlap.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && e1 > s2
}

// ParseDate parses a calendar date in "YYYY-MM-DD" form, falling back to
// RFC 3339 for callers that send full timestamps. The result is normalized
// to midnight UTC so day-boundary comparisons are stable.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// DayRange returns the inclusive [00:00:00, 23:59:59.999] boundaries of the
// calendar day containing t, in UTC.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}
