package domain

import "fmt"

// Slot is a time-of-day category a booking is tagged with.
// The vocabulary is closed: a value outside it never enters the system.
type Slot string

const (
	SlotMorning   Slot = "Morning"
	SlotAfternoon Slot = "Afternoon"
	SlotEvening   Slot = "Evening"
	SlotAllDay    Slot = "All Day"
)

// DefaultSlots is the standard vocabulary used when the venue
// configuration does not override it.
var DefaultSlots = []Slot{SlotMorning, SlotAfternoon, SlotEvening, SlotAllDay}

// IsAllDay returns true if the slot occupies the whole day and
// therefore conflicts with every other slot.
func (s Slot) IsAllDay() bool {
	return s == SlotAllDay
}

// Vocabulary is the closed set of slots a venue accepts.
type Vocabulary struct {
	slots []Slot
}

// NewVocabulary builds a vocabulary from configured slot labels.
// An empty list falls back to DefaultSlots.
func NewVocabulary(labels []string) Vocabulary {
	if len(labels) == 0 {
		return Vocabulary{slots: DefaultSlots}
	}
	slots := make([]Slot, len(labels))
	for i, l := range labels {
		slots[i] = Slot(l)
	}
	return Vocabulary{slots: slots}
}

// Slots returns the vocabulary in configured order.
func (v Vocabulary) Slots() []Slot {
	return v.slots
}

// Parse validates a raw label against the vocabulary.
func (v Vocabulary) Parse(raw string) (Slot, error) {
	for _, s := range v.slots {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSlot, raw)
}
