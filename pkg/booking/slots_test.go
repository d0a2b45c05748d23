package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotCatalogOrder(t *testing.T) {
	want := []string{
		"10:00 AM", "11:00 AM", "12:00 PM", "01:00 PM",
		"02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM",
	}
	assert.Equal(t, want, SlotCatalog())
}

func TestSlotCatalogReturnsCopy(t *testing.T) {
	got := SlotCatalog()
	got[0] = "mutated"
	assert.Equal(t, "10:00 AM", SlotCatalog()[0])
}

func TestInCatalog(t *testing.T) {
	assert.True(t, InCatalog("10:00 AM"))
	assert.True(t, InCatalog("05:00 PM"))
	assert.False(t, InCatalog("10:00AM"))
	assert.False(t, InCatalog("09:00 AM"))
	assert.False(t, InCatalog(""))
}

func TestIndexPutDropsUnknownLabels(t *testing.T) {
	idx := BookedSlotIndex{}.Put("2025-04-12", []string{"10:00 AM", "bogus", "10:00 AM", "01:00 PM"})

	assert.True(t, idx.Booked("2025-04-12", "10:00 AM"))
	assert.True(t, idx.Booked("2025-04-12", "01:00 PM"))
	assert.False(t, idx.Booked("2025-04-12", "bogus"))
}

func TestIndexPutLastFetchWins(t *testing.T) {
	idx := BookedSlotIndex{}.
		Put("2025-04-12", []string{"10:00 AM"}).
		Put("2025-04-12", []string{"02:00 PM"})

	assert.False(t, idx.Booked("2025-04-12", "10:00 AM"))
	assert.True(t, idx.Booked("2025-04-12", "02:00 PM"))
}

func TestIndexPutDoesNotMutateReceiver(t *testing.T) {
	orig := BookedSlotIndex{}.Put("2025-04-12", []string{"10:00 AM"})
	_ = orig.Put("2025-04-12", []string{"02:00 PM"})

	assert.True(t, orig.Booked("2025-04-12", "10:00 AM"))
	assert.False(t, orig.Booked("2025-04-12", "02:00 PM"))
}

func TestIndexFetched(t *testing.T) {
	idx := BookedSlotIndex{}.Put("2025-04-12", nil)

	assert.True(t, idx.Fetched("2025-04-12"))
	assert.False(t, idx.Fetched("2025-04-13"))
	// An empty booked set still counts as fetched.
	assert.False(t, idx.Booked("2025-04-12", "10:00 AM"))
}

func TestAvailableKeepsCatalogOrder(t *testing.T) {
	idx := BookedSlotIndex{}.Put("2025-04-12", []string{"11:00 AM", "04:00 PM"})

	want := []string{"10:00 AM", "12:00 PM", "01:00 PM", "02:00 PM", "03:00 PM", "05:00 PM"}
	assert.Equal(t, want, idx.Available("2025-04-12"))
}

func TestAvailableOnUnfetchedDateIsFullCatalog(t *testing.T) {
	assert.Equal(t, SlotCatalog(), BookedSlotIndex{}.Available("2025-04-12"))
}
