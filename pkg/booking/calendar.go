package booking

import (
	"time"
)

// Cell is one box in the month grid. Leading and trailing blanks align day 1
// to its Sunday-first weekday column and square off the final week.
type Cell struct {
	Blank    bool
	Date     time.Time
	Day      int
	Disabled bool
	Today    bool
}

// MonthStart normalizes t to the first day of its month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DateOnly strips the time-of-day component.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextMonth advances the month cursor by one month.
func NextMonth(month time.Time) time.Time {
	return MonthStart(month).AddDate(0, 1, 0)
}

// PrevMonth moves the month cursor back one month.
func PrevMonth(month time.Time) time.Time {
	return MonthStart(month).AddDate(0, -1, 0)
}

// MonthGrid lays out the full month containing month, classifying each real
// date against today: strictly-before-today dates are disabled, today is
// marked, everything else is selectable. The grid always spans whole weeks.
func MonthGrid(month, today time.Time) []Cell {
	first := MonthStart(month)
	today = DateOnly(today)

	cells := make([]Cell, 0, 42)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, Cell{Blank: true})
	}

	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		cells = append(cells, Cell{
			Date:     d,
			Day:      d.Day(),
			Disabled: d.Before(today),
			Today:    d.Equal(today),
		})
	}

	for len(cells)%7 != 0 {
		cells = append(cells, Cell{Blank: true})
	}
	return cells
}
