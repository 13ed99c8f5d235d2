package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/domain"
	"github.com/Immortalpie-11/VJK-Mahal-Booking/pkg/dbmetrics"
	"github.com/Immortalpie-11/VJK-Mahal-Booking/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями.
//
// Хранилище используется по протоколу "полная замена дня": запись дня -
// это DeleteByDate + InsertMany, выполняемые сервисом внутри одной
// транзакции (транзакция приходит через context, см. pkg/dbmetrics).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListAll загружает все бронирования, сгруппированные по дате.
// Выполняется один раз при старте сервиса для прогрева in-memory карты.
// Порядок внутри дня восстанавливается по колонке position.
func (r *Repository) ListAll(ctx context.Context) (map[string][]domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"event_date",
		"name",
		"slot",
		"created_at",
	).
		From("bookings").
		OrderBy("event_date ASC, position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	byDate := make(map[string][]domain.Booking)

	for rows.Next() {
		var (
			b         domain.Booking
			eventDate time.Time
			slot      string
		)

		if err := rows.Scan(&b.ID, &eventDate, &b.Name, &slot, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan booking: %v", ErrScanRow, err)
		}
		b.Slot = domain.Slot(slot)

		key := eventDate.Format(domain.DateFormat)
		byDate[key] = append(byDate[key], b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return byDate, nil
}

// DeleteByDate удаляет все бронирования на указанную дату.
// Отсутствие строк не является ошибкой (день мог быть пустым).
func (r *Repository) DeleteByDate(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"event_date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByDate - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// InsertMany вставляет список бронирований дня.
// position фиксирует порядок добавления, чтобы он переживал перезагрузку.
func (r *Repository) InsertMany(ctx context.Context, date time.Time, bookings []domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"event_date",
			"name",
			"slot",
			"position",
			"created_at",
		)

	for i, b := range bookings {
		insertBuilder = insertBuilder.Values(
			b.ID,
			date.Format(domain.DateFormat),
			b.Name,
			string(b.Slot),
			i,
			b.CreatedAt,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: InsertMany - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: InsertMany - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
