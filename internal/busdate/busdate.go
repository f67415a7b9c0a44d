// Package busdate resolves which logical business day a moment belongs to.
//
// A restaurant's trading day extends past midnight: anything recorded
// between 00:00 and 05:00 still counts toward the previous calendar day.
// Every table in the system is partitioned by the business date this
// package computes.
package busdate

import "time"

const (
	// DateLayout is the wire format for business dates.
	DateLayout = "2006-01-02"

	// TimestampLayout is the minute-precision format used for created_at
	// and updated_at columns.
	TimestampLayout = "2006-01-02 15:04"

	// DayStartHour is the local hour at which a new business day begins.
	// 05:00 itself already belongs to the new day.
	DayStartHour = 5
)

// Default returns the business date for the given instant: the previous
// calendar date before 05:00 local time, today's date otherwise.
func Default(now time.Time) string {
	if now.Hour() < DayStartHour {
		return now.AddDate(0, 0, -1).Format(DateLayout)
	}
	return now.Format(DateLayout)
}

// Resolve returns the explicit override when one was supplied, and the
// computed default otherwise. The override is passed through unchanged;
// callers own whatever validation they need.
func Resolve(override string, now time.Time) string {
	if override != "" {
		return override
	}
	return Default(now)
}

// Timestamp formats the given instant at minute precision.
func Timestamp(now time.Time) string {
	return now.Format(TimestampLayout)
}
