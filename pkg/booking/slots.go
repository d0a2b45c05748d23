package booking

// slotCatalog is the fixed daily catalog, in display order. Slot labels are
// the exact wire strings; availability is computed against these.
var slotCatalog = []string{
	"10:00 AM", "11:00 AM", "12:00 PM", "01:00 PM",
	"02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM",
}

// SlotCatalog returns the ordered daily slot labels.
func SlotCatalog() []string {
	out := make([]string, len(slotCatalog))
	copy(out, slotCatalog)
	return out
}

// InCatalog reports whether label is one of the bookable daily slots.
func InCatalog(label string) bool {
	for _, s := range slotCatalog {
		if s == label {
			return true
		}
	}
	return false
}

// BookedSlotIndex maps a wire-format date (yyyy-MM-dd) to the set of slot
// labels already reserved for a doctor on that date. A date key exists only
// after at least one successful fetch for that date.
type BookedSlotIndex map[string]map[string]struct{}

// Put returns a copy of the index with the entry for date replaced by slots.
// Last fetch wins; duplicates and labels outside the catalog are dropped.
func (idx BookedSlotIndex) Put(date string, slots []string) BookedSlotIndex {
	next := make(BookedSlotIndex, len(idx)+1)
	for k, v := range idx {
		next[k] = v
	}

	set := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		if InCatalog(s) {
			set[s] = struct{}{}
		}
	}
	next[date] = set
	return next
}

// Booked reports whether the slot is reserved on the given date.
func (idx BookedSlotIndex) Booked(date, slot string) bool {
	set, ok := idx[date]
	if !ok {
		return false
	}
	_, taken := set[slot]
	return taken
}

// Fetched reports whether the index holds an entry for the date.
func (idx BookedSlotIndex) Fetched(date string) bool {
	_, ok := idx[date]
	return ok
}

// Available returns the catalog slots not reserved on the given date, in
// catalog order. A slot is available iff it is in the catalog and absent
// from the date's booked set.
func (idx BookedSlotIndex) Available(date string) []string {
	var out []string
	for _, s := range slotCatalog {
		if !idx.Booked(date, s) {
			out = append(out, s)
		}
	}
	return out
}
