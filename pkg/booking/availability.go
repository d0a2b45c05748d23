package booking

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// SlotSource fetches the reserved slots for one (doctor, date) pair.
// *scheduling.Client satisfies this.
type SlotSource interface {
	BookedSlots(ctx context.Context, doctorID int64, date string) ([]string, error)
}

// Resolver refreshes the booked-slot index from the scheduling API.
type Resolver struct {
	source SlotSource
	logger zerolog.Logger
}

func NewResolver(source SlotSource, logger zerolog.Logger) *Resolver {
	return &Resolver{source: source, logger: logger}
}

// Refresh performs the fetch described by req and merges the result into the
// state. On failure the index is left untouched for that date and the error
// is returned; the caller retries by reselecting the date.
func (r *Resolver) Refresh(ctx context.Context, st State, req *FetchRequest) (State, error) {
	if req == nil {
		return st, nil
	}

	slots, err := r.source.BookedSlots(ctx, req.DoctorID, req.Date)
	if err != nil {
		r.logger.Error().Err(err).
			Int64("doctor_id", req.DoctorID).
			Str("date", req.Date).
			Msg("booked-slot fetch failed")
		return st, fmt.Errorf("failed to fetch booked slots: %w", err)
	}

	return st.ApplyBookedSlots(req.Date, slots), nil
}

// Prewarm fetches a set of dates at screen entry. Failures are logged and
// skipped; the index only ever holds successfully fetched dates.
func (r *Resolver) Prewarm(ctx context.Context, st State, dates []string) State {
	for _, date := range dates {
		slots, err := r.source.BookedSlots(ctx, st.DoctorID, date)
		if err != nil {
			r.logger.Warn().Err(err).Str("date", date).Msg("prewarm fetch skipped")
			continue
		}
		st.Booked = st.Booked.Put(date, slots)
	}
	return st
}
