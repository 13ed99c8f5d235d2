package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DayRules are the venue limits a DaySet validates against.
// They come from configuration, never from compile-time constants,
// so venue-specific limits stay testable and swappable.
type DayRules struct {
	MaxEventsPerDay int
}

// DaySet holds the bookings for exactly one calendar date and enforces
// the capacity and slot-conflict invariants before any mutation.
//
// Insertion order is preserved for display but carries no semantic weight.
type DaySet struct {
	date     time.Time
	rules    DayRules
	bookings []Booking
}

// NewDaySet creates an empty set for the given date.
func NewDaySet(date time.Time, rules DayRules) *DaySet {
	return &DaySet{date: date, rules: rules}
}

// RestoreDaySet rebuilds a set from persisted bookings, keeping their order.
// Stored state is trusted: invariants were enforced when the rows were written.
func RestoreDaySet(date time.Time, rules DayRules, bookings []Booking) *DaySet {
	set := NewDaySet(date, rules)
	set.bookings = append(set.bookings, bookings...)
	return set
}

// Date returns the calendar date the set belongs to.
func (s *DaySet) Date() time.Time {
	return s.date
}

// Len returns the number of bookings in the set.
func (s *DaySet) Len() int {
	return len(s.bookings)
}

// IsEmpty returns true if the set holds no bookings.
func (s *DaySet) IsEmpty() bool {
	return len(s.bookings) == 0
}

// Bookings returns a copy of the set's bookings in insertion order.
func (s *DaySet) Bookings() []Booking {
	out := make([]Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// Status derives the day's display status from the booking count alone.
func (s *DaySet) Status() DayStatus {
	return StatusFor(len(s.bookings), s.rules.MaxEventsPerDay)
}

// Add validates a draft and appends it with a fresh unique id.
//
// Validation order: empty name, all-day exclusivity (both directions),
// slot uniqueness, capacity. On rejection the set is left unchanged.
func (s *DaySet) Add(draft BookingDraft) (Booking, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return Booking{}, ErrEmptyName
	}
	if len(name) > MaxBookingNameLen {
		return Booking{}, fmt.Errorf("%w: max %d characters", ErrNameTooLong, MaxBookingNameLen)
	}

	for _, b := range s.bookings {
		if b.Slot.IsAllDay() {
			return Booking{}, fmt.Errorf("%w: day is reserved all day", ErrAllDayConflict)
		}
	}
	if draft.Slot.IsAllDay() && len(s.bookings) > 0 {
		return Booking{}, fmt.Errorf("%w: day already has bookings", ErrAllDayConflict)
	}

	for _, b := range s.bookings {
		if b.Slot == draft.Slot {
			return Booking{}, fmt.Errorf("%w: %s", ErrSlotTaken, draft.Slot)
		}
	}

	if len(s.bookings) >= s.rules.MaxEventsPerDay {
		return Booking{}, fmt.Errorf("%w: max %d per day", ErrCapacityExceeded, s.rules.MaxEventsPerDay)
	}

	booking := Booking{
		ID:        uuid.NewString(),
		Name:      name,
		Slot:      draft.Slot,
		CreatedAt: time.Now().UTC(),
	}
	s.bookings = append(s.bookings, booking)
	return booking, nil
}

// Remove deletes the booking with the given id.
// Removing an absent id is a no-op, not an error.
func (s *DaySet) Remove(bookingID string) bool {
	for i, b := range s.bookings {
		if b.ID == bookingID {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return true
		}
	}
	return false
}

// FirstSlot returns the slot of the earliest-added booking, used as the
// summary label on a partially-booked calendar cell.
func (s *DaySet) FirstSlot() (Slot, bool) {
	if len(s.bookings) == 0 {
		return "", false
	}
	return s.bookings[0].Slot, true
}
