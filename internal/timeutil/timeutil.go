// ABOUTME: Time utility functions for NetNewsWire timestamps
// ABOUTME: Converts Unix-second floats to local times and report date strings

package timeutil

import (
	"math"
	"time"
)

// Layouts used in article reports
const (
	DateTimeLayout = "2006-01-02 15:04"
	DateLayout     = "2006-01-02"
)

// Placeholder is rendered for unknown timestamps
const Placeholder = "-"

// FromUnix converts Unix seconds (with fractional part) to a local time.
// Returns false when the timestamp is nil or not positive.
func FromUnix(ts *float64) (time.Time, bool) {
	if ts == nil || *ts <= 0 || math.IsNaN(*ts) || math.IsInf(*ts, 0) {
		return time.Time{}, false
	}
	sec, frac := math.Modf(*ts)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).Local(), true
}

// FormatDate renders a timestamp as date and time in local time
func FormatDate(ts *float64) string {
	t, ok := FromUnix(ts)
	if !ok {
		return Placeholder
	}
	return t.Format(DateTimeLayout)
}

// FormatShortDate renders a timestamp as a date only in local time
func FormatShortDate(ts *float64) string {
	t, ok := FromUnix(ts)
	if !ok {
		return Placeholder
	}
	return t.Format(DateLayout)
}
