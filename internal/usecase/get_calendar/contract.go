package get_calendar

import (
	"time"

	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/domain"
)

// BookingSource источник текущего состояния бронирований.
// Реализуется сервисом расписания.
type BookingSource interface {
	Snapshot() map[string][]domain.Booking
	Rules() domain.DayRules
}

// TimeProvider абстракция текущего времени для тестируемости
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider возвращает реальное текущее время
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
