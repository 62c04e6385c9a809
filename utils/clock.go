package utils

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire and storage format for booking dates.
	DateLayout = "2006-01-02"
	// ClockLayout is the wire and storage format for times of day.
	ClockLayout = "15:04"
)

// ParseDate validates a calendar date in DateLayout.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseClock validates a time of day in ClockLayout and returns it as
// minutes from midnight. Zero-padded HH:MM strings compare correctly as
// strings, so callers may keep the string form after validation.
func ParseClock(s string) (int, error) {
	// time.Parse accepts single-digit hours, but the padding is what
	// makes string comparison agree with chronological order.
	t, err := time.Parse(ClockLayout, s)
	if err != nil || len(s) != len(ClockLayout) {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as a zero-padded HH:MM string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
