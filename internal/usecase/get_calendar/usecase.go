package get_calendar

import (
	"context"
	"fmt"

	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/domain"
)

// UseCase use case проекции доступности: сетка календаря на месяц
type UseCase struct {
	source       BookingSource
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(source BookingSource, logger Logger) *UseCase {
	return &UseCase{
		source:       source,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит сетку календаря для запрошенного месяца.
// Проекция чистая: статусы выводятся из снимка карты бронирований,
// ничего не читается из хранилища и не кэшируется между запросами.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Month.IsZero() {
		return nil, fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	snapshot := uc.source.Snapshot()

	cells := buildGrid(req.Month, now, snapshot, uc.source.Rules())

	uc.logger.Info("GetCalendar: month=%s, %d cells, %d days with bookings",
		req.Month.Format(domain.MonthFormat), len(cells), len(snapshot))

	return &Response{
		Month: req.Month.Format(domain.MonthFormat),
		Today: now.Format(domain.DateFormat),
		Cells: cells,
	}, nil
}
