package booking

import (
	"time"

	"github.com/dermacare/booking-api/internal/model"
)

// ViewMode is the mutually exclusive pick-a-date / pick-a-time view state.
type ViewMode string

const (
	ModeDate ViewMode = "date"
	ModeTime ViewMode = "time"
)

// FetchRequest tags an availability fetch with the date it was issued for,
// so responses for abandoned dates can be discarded.
type FetchRequest struct {
	DoctorID int64
	Date     string
}

// State is the in-progress booking selection for one doctor. Values are
// immutable; every transition returns a new State.
type State struct {
	DoctorID     int64
	Mode         ViewMode
	Month        time.Time
	Today        time.Time
	SelectedDate time.Time
	SelectedTime string
	Booked       BookedSlotIndex
}

// NewState opens a booking attempt anchored at today, in date mode, with
// the month cursor on today's month and nothing selected.
func NewState(doctorID int64, today time.Time) State {
	return State{
		DoctorID: doctorID,
		Mode:     ModeDate,
		Month:    MonthStart(today),
		Today:    DateOnly(today),
		Booked:   BookedSlotIndex{},
	}
}

// NextMonth shifts the visible month forward without touching the selection.
func (s State) NextMonth() State {
	s.Month = NextMonth(s.Month)
	return s
}

// PrevMonth shifts the visible month back without touching the selection.
func (s State) PrevMonth() State {
	s.Month = PrevMonth(s.Month)
	return s
}

// Grid returns the calendar cells for the visible month.
func (s State) Grid() []Cell {
	return MonthGrid(s.Month, s.Today)
}

// SelectDate records a non-disabled date, switches to time mode and yields
// the availability fetch for that date. Disabled dates are a no-op. Any
// previously chosen time is retained, even though it may now be stale.
func (s State) SelectDate(d time.Time) (State, *FetchRequest) {
	d = DateOnly(d)
	if d.Before(s.Today) {
		return s, nil
	}
	s.SelectedDate = d
	s.Mode = ModeTime
	return s, &FetchRequest{DoctorID: s.DoctorID, Date: d.Format(model.DateFormat)}
}

// Back returns to date mode, preserving the selected date.
func (s State) Back() State {
	s.Mode = ModeDate
	return s
}

// SelectTime records the chosen slot. Selecting a slot that is outside the
// catalog, already booked for the selected date, or while no date is chosen
// leaves the state unchanged.
func (s State) SelectTime(slot string) State {
	if s.Mode != ModeTime || s.SelectedDate.IsZero() {
		return s
	}
	if !InCatalog(slot) {
		return s
	}
	if s.Booked.Booked(s.DateKey(), slot) {
		return s
	}
	s.SelectedTime = slot
	return s
}

// ApplyBookedSlots merges a fetch result into the index. Responses tagged
// with a date other than the currently selected one are stale and dropped.
func (s State) ApplyBookedSlots(date string, slots []string) State {
	if s.SelectedDate.IsZero() || s.DateKey() != date {
		return s
	}
	s.Booked = s.Booked.Put(date, slots)
	return s
}

// DateKey is the wire-format key of the selected date, empty if none.
func (s State) DateKey() string {
	if s.SelectedDate.IsZero() {
		return ""
	}
	return s.SelectedDate.Format(model.DateFormat)
}

// HasSelection reports whether both a date and a time have been chosen.
func (s State) HasSelection() bool {
	return !s.SelectedDate.IsZero() && s.SelectedTime != ""
}

// AvailableSlots lists the selectable slots for the selected date.
func (s State) AvailableSlots() []string {
	if s.SelectedDate.IsZero() {
		return nil
	}
	return s.Booked.Available(s.DateKey())
}
