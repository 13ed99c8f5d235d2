package get_day_bookings

import (
	"time"

	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/service/schedule/models"
)

// ScheduleService интерфейс сервиса расписания
type ScheduleService interface {
	DayBookings(date time.Time) *models.DayResponse
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
