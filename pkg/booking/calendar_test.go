package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthGridLeadingBlanks(t *testing.T) {
	// April 2025 starts on a Tuesday.
	cells := MonthGrid(date(2025, time.April, 1), date(2025, time.April, 10))

	require.GreaterOrEqual(t, len(cells), 2)
	assert.True(t, cells[0].Blank)
	assert.True(t, cells[1].Blank)
	assert.False(t, cells[2].Blank)
	assert.Equal(t, 1, cells[2].Day)
}

func TestMonthGridWholeWeeks(t *testing.T) {
	months := []time.Time{
		date(2025, time.April, 1),
		date(2025, time.June, 1),
		date(2025, time.February, 1),
		date(2024, time.February, 1), // leap year
	}
	for _, m := range months {
		cells := MonthGrid(m, date(2025, time.January, 1))
		assert.Equal(t, 0, len(cells)%7, "month %s", m.Format("2006-01"))
	}
}

func TestMonthGridNoLeadingBlanksWhenMonthStartsSunday(t *testing.T) {
	// June 2025 starts on a Sunday.
	cells := MonthGrid(date(2025, time.June, 1), date(2025, time.June, 1))

	assert.False(t, cells[0].Blank)
	assert.Equal(t, 1, cells[0].Day)
}

func TestMonthGridClassifiesAgainstToday(t *testing.T) {
	today := date(2025, time.April, 10)
	cells := MonthGrid(date(2025, time.April, 1), today)

	byDay := make(map[int]Cell)
	for _, c := range cells {
		if !c.Blank {
			byDay[c.Day] = c
		}
	}

	assert.True(t, byDay[9].Disabled)
	assert.False(t, byDay[10].Disabled)
	assert.True(t, byDay[10].Today)
	assert.False(t, byDay[11].Disabled)
	assert.False(t, byDay[11].Today)
}

func TestMonthGridIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2025, time.April, 10, 18, 30, 0, 0, time.UTC)
	cells := MonthGrid(date(2025, time.April, 1), today)

	for _, c := range cells {
		if !c.Blank && c.Day == 10 {
			assert.True(t, c.Today)
			assert.False(t, c.Disabled)
			return
		}
	}
	t.Fatal("day 10 not found")
}

func TestNextMonthNormalizesCursor(t *testing.T) {
	// A cursor sitting on Jan 31 must land on Feb 1, not skip to March.
	next := NextMonth(date(2025, time.January, 31))
	assert.Equal(t, date(2025, time.February, 1), next)

	prev := PrevMonth(date(2025, time.March, 31))
	assert.Equal(t, date(2025, time.February, 1), prev)
}

func TestMonthNavigationAcrossYearBoundary(t *testing.T) {
	assert.Equal(t, date(2026, time.January, 1), NextMonth(date(2025, time.December, 15)))
	assert.Equal(t, date(2024, time.December, 1), PrevMonth(date(2025, time.January, 15)))
}
