package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthRange(t *testing.T) {
	from, to := MonthRange("2026-02")
	assert.Equal(t, "2026-02-01", from)
	assert.Equal(t, "2026-02-28", to)

	from, to = MonthRange("2026-01")
	assert.Equal(t, "2026-01-01", from)
	assert.Equal(t, "2026-01-31", to)

	// Leap year February.
	from, to = MonthRange("2028-02")
	assert.Equal(t, "2028-02-01", from)
	assert.Equal(t, "2028-02-29", to)
}

func TestMonthRangeFallsBackToCurrentMonth(t *testing.T) {
	from, to := MonthRange("not-a-month")
	first, _ := time.Parse(MonthLayout, CurrentMonth())
	assert.Equal(t, first.Format(DateLayout), from)
	assert.Equal(t, first.AddDate(0, 1, -1).Format(DateLayout), to)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("garbage", time.Minute))
}
