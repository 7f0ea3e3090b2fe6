package services

import "time"

// DateOnly truncates a timestamp to its calendar date in UTC, matching
// how payment dates are stored in the DATE column.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
