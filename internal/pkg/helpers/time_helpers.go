package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the wire format for calendar dates (attendance, grades,
// entrance tests). Dates are opaque strings in this format end to end.
const DateLayout = "2006-01-02"

// MonthLayout is the wire format for billing months.
const MonthLayout = "2006-01"

// Today returns the current date in DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}

// CurrentMonth returns the current month in MonthLayout.
func CurrentMonth() string {
	return time.Now().Format(MonthLayout)
}

// MonthRange expands a MonthLayout month into its first and last day in
// DateLayout. A malformed month falls back to the current one.
func MonthRange(month string) (from, to string) {
	first, err := time.Parse(MonthLayout, month)
	if err != nil {
		first, _ = time.Parse(MonthLayout, CurrentMonth())
	}
	last := first.AddDate(0, 1, -1)
	return first.Format(DateLayout), last.Format(DateLayout)
}

// ParseDuration parses a duration string, returning the default on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}
