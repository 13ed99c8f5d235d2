package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC)

func newTestSet(t *testing.T, maxEvents int) *DaySet {
	t.Helper()
	return NewDaySet(testDate, DayRules{MaxEventsPerDay: maxEvents})
}

func TestDaySet_AddUpToCapacity(t *testing.T) {
	set := newTestSet(t, 2)

	first, err := set.Add(BookingDraft{Name: "Wedding", Slot: SlotMorning})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, StatusPartiallyBooked, set.Status())

	second, err := set.Add(BookingDraft{Name: "Gala", Slot: SlotEvening})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, StatusFullyBooked, set.Status())

	_, err = set.Add(BookingDraft{Name: "Party", Slot: SlotAfternoon})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 2, set.Len())
}

func TestDaySet_CapacityHoldsForAnySequence(t *testing.T) {
	set := newTestSet(t, 3)

	drafts := []BookingDraft{
		{Name: "A", Slot: SlotMorning},
		{Name: "B", Slot: SlotAfternoon},
		{Name: "C", Slot: SlotEvening},
		{Name: "D", Slot: SlotMorning},
		{Name: "E", Slot: SlotEvening},
	}

	for _, d := range drafts {
		_, _ = set.Add(d)
		assert.LessOrEqual(t, set.Len(), 3)
	}
}

func TestDaySet_AllDayExclusivity(t *testing.T) {
	t.Run("all-day blocks later adds", func(t *testing.T) {
		set := newTestSet(t, 2)

		_, err := set.Add(BookingDraft{Name: "Conference", Slot: SlotAllDay})
		require.NoError(t, err)

		_, err = set.Add(BookingDraft{Name: "Extra", Slot: SlotMorning})
		assert.ErrorIs(t, err, ErrAllDayConflict)
		assert.Equal(t, 1, set.Len())
	})

	t.Run("all-day rejected on non-empty day", func(t *testing.T) {
		set := newTestSet(t, 2)

		_, err := set.Add(BookingDraft{Name: "Breakfast", Slot: SlotMorning})
		require.NoError(t, err)

		_, err = set.Add(BookingDraft{Name: "Takeover", Slot: SlotAllDay})
		assert.ErrorIs(t, err, ErrAllDayConflict)
	})

	t.Run("all-day allowed after conflicting booking removed", func(t *testing.T) {
		set := newTestSet(t, 2)

		b, err := set.Add(BookingDraft{Name: "Breakfast", Slot: SlotMorning})
		require.NoError(t, err)
		require.True(t, set.Remove(b.ID))

		_, err = set.Add(BookingDraft{Name: "Takeover", Slot: SlotAllDay})
		assert.NoError(t, err)
	})
}

func TestDaySet_SlotUniqueness(t *testing.T) {
	set := newTestSet(t, 5)

	_, err := set.Add(BookingDraft{Name: "A", Slot: SlotMorning})
	require.NoError(t, err)

	_, err = set.Add(BookingDraft{Name: "B", Slot: SlotMorning})
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 1, set.Len())
}

func TestDaySet_EmptyNameRejected(t *testing.T) {
	set := newTestSet(t, 2)

	for _, name := range []string{"", "   ", "\t"} {
		_, err := set.Add(BookingDraft{Name: name, Slot: SlotMorning})
		assert.ErrorIs(t, err, ErrEmptyName)
	}
	assert.True(t, set.IsEmpty())
}

func TestDaySet_RemoveIsIdempotent(t *testing.T) {
	set := newTestSet(t, 2)

	b, err := set.Add(BookingDraft{Name: "Wedding", Slot: SlotMorning})
	require.NoError(t, err)

	assert.False(t, set.Remove("no-such-id"))
	assert.Equal(t, 1, set.Len())

	assert.True(t, set.Remove(b.ID))
	assert.False(t, set.Remove(b.ID))
	assert.True(t, set.IsEmpty())
	assert.Equal(t, StatusAvailable, set.Status())
}

func TestDaySet_InsertionOrderPreserved(t *testing.T) {
	set := newTestSet(t, 3)

	_, err := set.Add(BookingDraft{Name: "First", Slot: SlotEvening})
	require.NoError(t, err)
	_, err = set.Add(BookingDraft{Name: "Second", Slot: SlotMorning})
	require.NoError(t, err)

	bookings := set.Bookings()
	require.Len(t, bookings, 2)
	assert.Equal(t, "First", bookings[0].Name)
	assert.Equal(t, "Second", bookings[1].Name)

	slot, ok := set.FirstSlot()
	require.True(t, ok)
	assert.Equal(t, SlotEvening, slot)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		maxEvents int
		want      DayStatus
	}{
		{"empty day is available", 0, 2, StatusAvailable},
		{"one of two is partial", 1, 2, StatusPartiallyBooked},
		{"at capacity is full", 2, 2, StatusFullyBooked},
		{"beyond capacity is still full", 3, 2, StatusFullyBooked},
		{"one of one is full", 1, 1, StatusFullyBooked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.count, tt.maxEvents))
		})
	}
}

func TestVocabulary_Parse(t *testing.T) {
	vocab := NewVocabulary(nil)

	slot, err := vocab.Parse("All Day")
	require.NoError(t, err)
	assert.True(t, slot.IsAllDay())

	_, err = vocab.Parse("Midnight")
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestVocabulary_CustomSlots(t *testing.T) {
	vocab := NewVocabulary([]string{"First Half", "Second Half"})

	_, err := vocab.Parse("First Half")
	assert.NoError(t, err)

	_, err = vocab.Parse("Morning")
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestRestoreDaySet_KeepsStoredOrder(t *testing.T) {
	stored := []Booking{
		{ID: "b-1", Name: "Old", Slot: SlotAfternoon},
		{ID: "b-2", Name: "New", Slot: SlotMorning},
	}

	set := RestoreDaySet(testDate, DayRules{MaxEventsPerDay: 2}, stored)
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, StatusFullyBooked, set.Status())

	slot, ok := set.FirstSlot()
	require.True(t, ok)
	assert.Equal(t, SlotAfternoon, slot)
}
