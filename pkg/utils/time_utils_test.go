package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func unix(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC).Unix()
}

func TestAddMonthsPlainCase(t *testing.T) {
	got := AddMonths(unix(2025, time.March, 15), 1)
	assert.Equal(t, unix(2025, time.April, 15), got)
}

func TestAddMonthsClampsToShorterMonth(t *testing.T) {
	got := AddMonths(unix(2025, time.January, 31), 1)
	assert.Equal(t, unix(2025, time.February, 28), got)
}

func TestAddMonthsClampsLeapYear(t *testing.T) {
	got := AddMonths(unix(2024, time.January, 31), 1)
	assert.Equal(t, unix(2024, time.February, 29), got)
}

func TestAddMonthsCrossesYearBoundary(t *testing.T) {
	got := AddMonths(unix(2025, time.December, 10), 1)
	assert.Equal(t, unix(2026, time.January, 10), got)
}

func TestAddMonthsTwelveMonths(t *testing.T) {
	got := AddMonths(unix(2025, time.June, 1), 12)
	assert.Equal(t, unix(2026, time.June, 1), got)
}
