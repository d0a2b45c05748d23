package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlotSource struct {
	slots map[string][]string
	err   error
}

func (f *fakeSlotSource) BookedSlots(_ context.Context, _ int64, date string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.slots[date], nil
}

func TestRefreshMergesFetchResult(t *testing.T) {
	src := &fakeSlotSource{slots: map[string][]string{"2025-04-12": {"10:00 AM"}}}
	r := NewResolver(src, zerolog.Nop())

	st, req := newTestState().SelectDate(date(2025, time.April, 12))
	st, err := r.Refresh(context.Background(), st, req)

	require.NoError(t, err)
	assert.True(t, st.Booked.Booked("2025-04-12", "10:00 AM"))
}

func TestRefreshFailureLeavesIndexUntouched(t *testing.T) {
	src := &fakeSlotSource{err: errors.New("boom")}
	r := NewResolver(src, zerolog.Nop())

	st, req := newTestState().SelectDate(date(2025, time.April, 12))
	st, err := r.Refresh(context.Background(), st, req)

	require.Error(t, err)
	assert.False(t, st.Booked.Fetched("2025-04-12"))
	// With no fetch recorded, every catalog slot still shows available.
	assert.Equal(t, SlotCatalog(), st.AvailableSlots())
}

func TestRefreshNilRequestIsNoOp(t *testing.T) {
	r := NewResolver(&fakeSlotSource{}, zerolog.Nop())

	st, err := r.Refresh(context.Background(), newTestState(), nil)
	require.NoError(t, err)
	assert.Empty(t, st.Booked)
}

func TestPrewarmSkipsFailedDates(t *testing.T) {
	src := &fakeSlotSource{slots: map[string][]string{
		"2025-04-12": {"10:00 AM"},
		"2025-04-13": {"11:00 AM"},
	}}
	r := NewResolver(src, zerolog.Nop())

	st := r.Prewarm(context.Background(), newTestState(), []string{"2025-04-12", "2025-04-13"})
	assert.True(t, st.Booked.Fetched("2025-04-12"))
	assert.True(t, st.Booked.Fetched("2025-04-13"))

	src.err = errors.New("boom")
	st = r.Prewarm(context.Background(), newTestState(), []string{"2025-04-14"})
	assert.False(t, st.Booked.Fetched("2025-04-14"))
}
