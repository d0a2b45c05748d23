package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dermacare/booking-api/internal/model"
	"github.com/dermacare/booking-api/pkg/scheduling"
)

type fakeBookingAPI struct {
	mu    sync.Mutex
	calls []model.BookAppointmentRequest
	conf  *model.BookingConfirmation
	err   error
	block chan struct{}
}

func (f *fakeBookingAPI) BookAppointment(_ context.Context, req model.BookAppointmentRequest) (*model.BookingConfirmation, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
	return f.conf, f.err
}

func (f *fakeBookingAPI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func testDoctor() model.Doctor {
	return model.Doctor{ID: 42, FirstName: "Asha", LastName: "Rao"}
}

func completeState() State {
	st, _ := newTestState().SelectDate(date(2025, time.April, 12))
	return st.SelectTime("10:00 AM")
}

func TestSubmitRequiresDateAndTime(t *testing.T) {
	api := &fakeBookingAPI{}
	sub := NewSubmitter(api, zerolog.Nop())

	out, err := sub.Submit(context.Background(), testDoctor(), newTestState(), "pat@example.com")

	require.NoError(t, err)
	assert.False(t, out.Booked)
	assert.Equal(t, "Please select both date and time for your appointment.", out.Message)
	assert.Zero(t, api.callCount())
}

func TestSubmitRequiresEmail(t *testing.T) {
	api := &fakeBookingAPI{}
	sub := NewSubmitter(api, zerolog.Nop())

	out, err := sub.Submit(context.Background(), testDoctor(), completeState(), "")

	require.NoError(t, err)
	assert.Equal(t, "Your email could not be retrieved. Please log in again.", out.Message)
	assert.Zero(t, api.callCount())
}

func TestSubmitSuccess(t *testing.T) {
	api := &fakeBookingAPI{conf: &model.BookingConfirmation{AppointmentID: 7}}
	sub := NewSubmitter(api, zerolog.Nop())

	out, err := sub.Submit(context.Background(), testDoctor(), completeState(), "pat@example.com")

	require.NoError(t, err)
	assert.True(t, out.Booked)
	assert.Equal(t, int64(7), out.AppointmentID)
	assert.Equal(t, "Your appointment with Dr. Asha Rao has been scheduled for April 12, 2025 at 10:00 AM.", out.Message)

	require.Equal(t, 1, api.callCount())
	req := api.calls[0]
	assert.Equal(t, int64(42), req.DoctorID)
	assert.Equal(t, "2025-04-12", req.Date)
	assert.Equal(t, "10:00 AM", req.Time)
	assert.Equal(t, "pat@example.com", req.PatientEmail)
}

func TestSubmitSurfacesServerDetail(t *testing.T) {
	api := &fakeBookingAPI{err: &scheduling.APIError{StatusCode: 409, Detail: "This time slot is already booked"}}
	sub := NewSubmitter(api, zerolog.Nop())

	out, err := sub.Submit(context.Background(), testDoctor(), completeState(), "pat@example.com")

	require.NoError(t, err)
	assert.False(t, out.Booked)
	assert.Equal(t, "This time slot is already booked", out.Message)
}

func TestSubmitPassesDetailThroughVerbatim(t *testing.T) {
	api := &fakeBookingAPI{err: &scheduling.APIError{StatusCode: 400, Detail: "Slot taken"}}
	sub := NewSubmitter(api, zerolog.Nop())

	out, err := sub.Submit(context.Background(), testDoctor(), completeState(), "pat@example.com")

	require.NoError(t, err)
	assert.Equal(t, "Slot taken", out.Message)
}

func TestSubmitTransportFailureUsesGenericMessage(t *testing.T) {
	api := &fakeBookingAPI{err: errors.New("connection refused")}
	sub := NewSubmitter(api, zerolog.Nop())

	out, err := sub.Submit(context.Background(), testDoctor(), completeState(), "pat@example.com")

	require.NoError(t, err)
	assert.False(t, out.Booked)
	assert.Equal(t, "There was an error booking your appointment. Please try again.", out.Message)
}

func TestSubmitRejectsConcurrentSubmission(t *testing.T) {
	block := make(chan struct{})
	api := &fakeBookingAPI{conf: &model.BookingConfirmation{AppointmentID: 1}, block: block}
	sub := NewSubmitter(api, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = sub.Submit(context.Background(), testDoctor(), completeState(), "pat@example.com")
	}()

	// Wait until the first submission is inside the API call.
	require.Eventually(t, func() bool { return api.callCount() == 1 }, time.Second, time.Millisecond)

	_, err := sub.Submit(context.Background(), testDoctor(), completeState(), "pat@example.com")
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(block)
	<-done

	// Once the first attempt finished the guard is released again.
	out, err := sub.Submit(context.Background(), testDoctor(), completeState(), "pat@example.com")
	require.NoError(t, err)
	assert.True(t, out.Booked)
}
