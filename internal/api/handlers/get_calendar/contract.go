package get_calendar

import (
	"context"

	getCalendar "github.com/Immortalpie-11/VJK-Mahal-Booking/internal/usecase/get_calendar"
)

// GetCalendarUseCase интерфейс use case проекции календаря
type GetCalendarUseCase interface {
	Execute(ctx context.Context, req *getCalendar.Request) (*getCalendar.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
