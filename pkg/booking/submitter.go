package booking

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/dermacare/booking-api/internal/model"
	"github.com/dermacare/booking-api/pkg/scheduling"
)

// User-facing messages, kept verbatim from the mobile client copy.
const (
	MsgMissingSelection = "Please select both date and time for your appointment."
	MsgMissingEmail     = "Your email could not be retrieved. Please log in again."
	MsgGenericFailure   = "There was an error booking your appointment. Please try again."
)

// ErrSubmitInFlight rejects a second submission while one is outstanding.
var ErrSubmitInFlight = errors.New("a booking submission is already in progress")

// BookingAPI is the single call the submitter makes against the scheduling
// service. *scheduling.Client satisfies this.
type BookingAPI interface {
	BookAppointment(ctx context.Context, req model.BookAppointmentRequest) (*model.BookingConfirmation, error)
}

// Outcome is the interpreted result of one submission attempt.
type Outcome struct {
	Booked        bool
	Message       string
	AppointmentID int64
}

// Submitter validates a completed selection and performs exactly one booking
// attempt per call. It never retries.
type Submitter struct {
	api      BookingAPI
	logger   zerolog.Logger
	inflight atomic.Bool
}

func NewSubmitter(api BookingAPI, logger zerolog.Logger) *Submitter {
	return &Submitter{api: api, logger: logger}
}

// Submit checks preconditions in order (date+time chosen, then patient
// email available), issues the booking request and interprets the result.
// Server-rejected bookings surface the server's detail message; transport
// failures surface the generic fallback.
func (s *Submitter) Submit(ctx context.Context, doctor model.Doctor, st State, patientEmail string) (*Outcome, error) {
	if !s.inflight.CompareAndSwap(false, true) {
		return nil, ErrSubmitInFlight
	}
	defer s.inflight.Store(false)

	if !st.HasSelection() {
		return &Outcome{Message: MsgMissingSelection}, nil
	}
	if patientEmail == "" {
		return &Outcome{Message: MsgMissingEmail}, nil
	}

	req := model.BookAppointmentRequest{
		DoctorID:     doctor.ID,
		Date:         st.DateKey(),
		Time:         st.SelectedTime,
		PatientEmail: patientEmail,
	}

	conf, err := s.api.BookAppointment(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).
			Int64("doctor_id", doctor.ID).
			Str("date", req.Date).
			Str("time", req.Time).
			Msg("booking submission failed")

		var apiErr *scheduling.APIError
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			return &Outcome{Message: apiErr.Detail}, nil
		}
		return &Outcome{Message: MsgGenericFailure}, nil
	}

	msg := fmt.Sprintf(
		"Your appointment with Dr. %s %s has been scheduled for %s at %s.",
		doctor.FirstName, doctor.LastName,
		st.SelectedDate.Format(model.DisplayFormat), st.SelectedTime,
	)
	return &Outcome{
		Booked:        true,
		Message:       msg,
		AppointmentID: conf.AppointmentID,
	}, nil
}
