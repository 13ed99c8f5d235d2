package domain

import "time"

// DayStatus is the derived display status of one calendar day.
// It is never persisted, only recomputed from the day's booking count.
type DayStatus string

const (
	StatusAvailable       DayStatus = "available"
	StatusPartiallyBooked DayStatus = "partially-booked"
	StatusFullyBooked     DayStatus = "fully-booked"
)

// Booking is one reservation record for a calendar day.
// It is owned exclusively by the DaySet for its date.
type Booking struct {
	ID        string
	Name      string
	Slot      Slot
	CreatedAt time.Time
}

// BookingDraft is operator input for a new booking, before an ID is assigned.
type BookingDraft struct {
	Name string
	Slot Slot
}

// StatusFor derives a day's status from its booking count.
// available iff count = 0, fully-booked iff count >= maxEvents,
// partially-booked otherwise.
func StatusFor(count, maxEvents int) DayStatus {
	switch {
	case count == 0:
		return StatusAvailable
	case count >= maxEvents:
		return StatusFullyBooked
	default:
		return StatusPartiallyBooked
	}
}
