package add_booking

import (
	"context"
	"time"

	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/service/schedule/models"
)

// ScheduleService интерфейс сервиса расписания
type ScheduleService interface {
	AddBooking(ctx context.Context, date time.Time, name, slot string) (*models.BookingResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
