package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/domain"
	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/service/schedule/models"
)

// Service поверхность операций управления расписанием (Booking Editor).
//
// Держит in-memory карту дата -> список бронирований, загружаемую целиком
// при старте. Каждая мутация сначала валидируется через domain.DaySet,
// затем фиксируется в хранилище полной заменой дня (delete + insert в одной
// транзакции) и только после подтверждения попадает в карту. Поэтому
// календарь всегда отражает только durably-persisted состояние.
type Service struct {
	repo      BookingRepository
	txManager TransactionManager
	rules     domain.DayRules
	vocab     domain.Vocabulary
	logger    Logger

	mu     sync.RWMutex
	days   map[string][]domain.Booking
	loaded bool
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	repo BookingRepository,
	txManager TransactionManager,
	rules domain.DayRules,
	vocab domain.Vocabulary,
	logger Logger,
) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		rules:     rules,
		vocab:     vocab,
		logger:    logger,
		days:      make(map[string][]domain.Booking),
	}
}

// Load выполняет одноразовую начальную загрузку всех бронирований в карту.
// Вызывается один раз при старте сервиса, до обработки запросов.
func (s *Service) Load(ctx context.Context) error {
	s.logger.Info("Load: loading bookings from storage")

	byDate, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("Load: repository error: %v", err)
		return fmt.Errorf("%w: Load - repository error: %v", ErrPersistence, err)
	}

	s.mu.Lock()
	s.days = byDate
	s.loaded = true
	s.mu.Unlock()

	total := 0
	for _, bookings := range byDate {
		total += len(bookings)
	}
	s.logger.Info("Load: loaded %d bookings across %d days", total, len(byDate))
	return nil
}

// Vocabulary возвращает словарь слотов площадки
func (s *Service) Vocabulary() domain.Vocabulary {
	return s.vocab
}

// Rules возвращает лимиты площадки
func (s *Service) Rules() domain.DayRules {
	return s.rules
}

// AddBooking добавляет бронирование на дату и фиксирует день в хранилище.
//
// Ошибки валидации (domain.ErrEmptyName, ErrAllDayConflict, ErrSlotTaken,
// ErrCapacityExceeded, ErrUnknownSlot) возвращаются как есть и не меняют
// состояние. При ошибке хранилища возвращается ErrPersistence, карта
// остается на прежнем durable-состоянии.
func (s *Service) AddBooking(ctx context.Context, date time.Time, name, slotLabel string) (*models.BookingResponse, error) {
	key := date.Format(domain.DateFormat)
	s.logger.Info("AddBooking: date=%s, slot=%s", key, slotLabel)

	slot, err := s.vocab.Parse(slotLabel)
	if err != nil {
		s.logger.Warn("AddBooking: unknown slot %q for date=%s", slotLabel, key)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, ErrNotLoaded
	}

	set := domain.RestoreDaySet(date, s.rules, s.days[key])
	created, err := set.Add(domain.BookingDraft{Name: name, Slot: slot})
	if err != nil {
		s.logger.Warn("AddBooking: rejected for date=%s: %v", key, err)
		return nil, err
	}

	if err := s.replaceDay(ctx, date, set.Bookings()); err != nil {
		s.logger.Error("AddBooking: failed to persist day %s: %v", key, err)
		return nil, fmt.Errorf("%w: AddBooking - replace day: %v", ErrPersistence, err)
	}

	s.days[key] = set.Bookings()

	s.logger.Info("AddBooking: booking id=%s added to date=%s, status=%s",
		created.ID, key, set.Status())
	resp := models.FromDomainBooking(created)
	return &resp, nil
}

// RemoveBooking удаляет бронирование по id и фиксирует день в хранилище.
// Удаление отсутствующего id - no-op, не ошибка. Когда день становится
// пустым, дата целиком выпадает из карты.
func (s *Service) RemoveBooking(ctx context.Context, date time.Time, bookingID string) error {
	key := date.Format(domain.DateFormat)
	s.logger.Info("RemoveBooking: date=%s, id=%s", key, bookingID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return ErrNotLoaded
	}

	set := domain.RestoreDaySet(date, s.rules, s.days[key])
	if !set.Remove(bookingID) {
		s.logger.Warn("RemoveBooking: booking id=%s not found on date=%s, nothing to do", bookingID, key)
		return nil
	}

	if err := s.replaceDay(ctx, date, set.Bookings()); err != nil {
		s.logger.Error("RemoveBooking: failed to persist day %s: %v", key, err)
		return fmt.Errorf("%w: RemoveBooking - replace day: %v", ErrPersistence, err)
	}

	if set.IsEmpty() {
		delete(s.days, key)
		s.logger.Info("RemoveBooking: date=%s is empty, dropped from map", key)
	} else {
		s.days[key] = set.Bookings()
		s.logger.Info("RemoveBooking: booking id=%s removed from date=%s, status=%s",
			bookingID, key, set.Status())
	}

	return nil
}

// DayBookings возвращает бронирования одного дня для окна управления
func (s *Service) DayBookings(date time.Time) *models.DayResponse {
	key := date.Format(domain.DateFormat)

	s.mu.RLock()
	bookings := append([]domain.Booking(nil), s.days[key]...)
	s.mu.RUnlock()

	status := domain.StatusFor(len(bookings), s.rules.MaxEventsPerDay)
	return models.FromDomainDay(date, status, bookings)
}

// Snapshot возвращает копию карты бронирований для проекции календаря
func (s *Service) Snapshot() map[string][]domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]domain.Booking, len(s.days))
	for key, bookings := range s.days {
		out[key] = append([]domain.Booking(nil), bookings...)
	}
	return out
}

// replaceDay выполняет протокол полной замены дня в одной транзакции:
// удалить все строки даты, вставить итоговый список (пустой список -
// только удаление).
func (s *Service) replaceDay(ctx context.Context, date time.Time, bookings []domain.Booking) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.repo.DeleteByDate(txCtx, date); err != nil {
			return err
		}
		return s.repo.InsertMany(txCtx, date, bookings)
	})
}
