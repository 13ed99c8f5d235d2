package models

import (
	"time"

	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/domain"
)

// BookingResponse ответ с данными одного бронирования
type BookingResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slot      string    `json:"slot"`
	CreatedAt time.Time `json:"createdAt"`
}

// DayResponse ответ с бронированиями одного дня
type DayResponse struct {
	Date     string            `json:"date"`   // "2026-01-26"
	Status   string            `json:"status"` // available | partially-booked | fully-booked
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Name:      b.Name,
		Slot:      string(b.Slot),
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainDay конвертирует день с бронированиями в DTO
func FromDomainDay(date time.Time, status domain.DayStatus, bookings []domain.Booking) *DayResponse {
	resp := &DayResponse{
		Date:     date.Format(domain.DateFormat),
		Status:   string(status),
		Bookings: make([]BookingResponse, len(bookings)),
	}
	for i, b := range bookings {
		resp.Bookings[i] = FromDomainBooking(b)
	}
	return resp
}
