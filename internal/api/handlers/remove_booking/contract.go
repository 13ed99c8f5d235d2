package remove_booking

import (
	"context"
	"time"
)

// ScheduleService интерфейс сервиса расписания
type ScheduleService interface {
	RemoveBooking(ctx context.Context, date time.Time, bookingID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
