package schedule

import (
	"context"
	"time"

	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListAll(ctx context.Context) (map[string][]domain.Booking, error)
	DeleteByDate(ctx context.Context, date time.Time) error
	InsertMany(ctx context.Context, date time.Time, bookings []domain.Booking) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
