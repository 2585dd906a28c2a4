package models

import (
	"time"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatTime formats a time.Time according to RFC3339
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// TimeRangeLabel renders the trailing window as "from - to" for display,
// matching the event panel header.
func TimeRangeLabel(now time.Time, window time.Duration) string {
	const layout = "02/01/2006 15:04"
	from := now.Add(-window)
	return from.Format(layout) + " - " + now.Format(layout)
}
