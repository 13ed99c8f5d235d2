package domain

import "errors"

var (
	// ErrEmptyName is returned when a booking draft has no display name.
	ErrEmptyName = errors.New("domain: booking name must not be empty")

	// ErrNameTooLong is returned when a booking name exceeds MaxBookingNameLen.
	ErrNameTooLong = errors.New("domain: booking name too long")

	// ErrUnknownSlot is returned when a raw label is outside the slot vocabulary.
	ErrUnknownSlot = errors.New("domain: unknown slot")

	// ErrAllDayConflict is returned when an All Day booking would coexist
	// with any other booking on the same day.
	ErrAllDayConflict = errors.New("domain: all-day booking conflicts with existing bookings")

	// ErrSlotTaken is returned when the day already holds a booking for the slot.
	ErrSlotTaken = errors.New("domain: slot already taken for this day")

	// ErrCapacityExceeded is returned when the day is at its booking capacity.
	ErrCapacityExceeded = errors.New("domain: day booking capacity exceeded")
)
