package get_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/domain"
)

type fakeSource struct {
	days  map[string][]domain.Booking
	rules domain.DayRules
}

func (s *fakeSource) Snapshot() map[string][]domain.Booking { return s.days }
func (s *fakeSource) Rules() domain.DayRules                { return s.rules }

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(days map[string][]domain.Booking, now time.Time) *UseCase {
	if days == nil {
		days = make(map[string][]domain.Booking)
	}
	uc := NewUseCase(&fakeSource{days: days, rules: domain.DayRules{MaxEventsPerDay: 2}}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func cellByDate(t *testing.T, cells []DayCell, date string) DayCell {
	t.Helper()
	for _, c := range cells {
		if c.Date == date {
			return c
		}
	}
	t.Fatalf("cell %s not found", date)
	return DayCell{}
}

func TestExecute_GridShape(t *testing.T) {
	// Январь 2026: 1-е - четверг, сетка с вс 28 дек по сб 31 янв, 5 недель
	now := time.Date(2026, 1, 15, 12, 30, 0, 0, time.UTC)
	uc := newTestUseCase(nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Month: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-01", resp.Month)
	assert.Equal(t, "2026-01-15", resp.Today)
	require.Len(t, resp.Cells, 35)

	assert.Equal(t, "2025-12-28", resp.Cells[0].Date)
	assert.Equal(t, "2026-01-31", resp.Cells[len(resp.Cells)-1].Date)

	// Сетка всегда кратна неделе
	assert.Zero(t, len(resp.Cells)%7)
}

func TestExecute_OutsideMonthCells(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Month: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	outside := cellByDate(t, resp.Cells, "2025-12-30")
	assert.False(t, outside.InMonth)
	assert.False(t, outside.Interactive)

	inside := cellByDate(t, resp.Cells, "2026-01-20")
	assert.True(t, inside.InMonth)
	assert.True(t, inside.Interactive)
}

func TestExecute_TodayAndPastFlags(t *testing.T) {
	now := time.Date(2026, 1, 15, 23, 59, 0, 0, time.UTC)
	uc := newTestUseCase(nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Month: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	today := cellByDate(t, resp.Cells, "2026-01-15")
	assert.True(t, today.Today)
	assert.False(t, today.Past)
	assert.True(t, today.Interactive)

	yesterday := cellByDate(t, resp.Cells, "2026-01-14")
	assert.False(t, yesterday.Today)
	assert.True(t, yesterday.Past)

	tomorrow := cellByDate(t, resp.Cells, "2026-01-16")
	assert.False(t, tomorrow.Past)
}

func TestExecute_TodayInNonUTCZone(t *testing.T) {
	// Флаги today/past - сравнение календарных дат, а не моментов времени:
	// ячейки сетки в UTC, "сейчас" - в локальной зоне сервера
	t.Run("west of UTC", func(t *testing.T) {
		now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.FixedZone("UTC-5", -5*3600))
		uc := newTestUseCase(nil, now)

		resp, err := uc.Execute(context.Background(), &Request{
			Month: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Equal(t, "2026-01-15", resp.Today)

		today := cellByDate(t, resp.Cells, "2026-01-15")
		assert.True(t, today.Today)
		assert.False(t, today.Past)
		assert.True(t, today.Interactive)
	})

	t.Run("east of UTC", func(t *testing.T) {
		// 22:00 NZDT 16 янв = 09:00 UTC 16 янв: сегодня - локальная дата
		now := time.Date(2026, 1, 16, 22, 0, 0, 0, time.FixedZone("UTC+13", 13*3600))
		uc := newTestUseCase(nil, now)

		resp, err := uc.Execute(context.Background(), &Request{
			Month: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Equal(t, "2026-01-16", resp.Today)

		today := cellByDate(t, resp.Cells, "2026-01-16")
		assert.True(t, today.Today)
		assert.False(t, today.Past)

		yesterday := cellByDate(t, resp.Cells, "2026-01-15")
		assert.False(t, yesterday.Today)
		assert.True(t, yesterday.Past)
	})
}

func TestExecute_PastDayPolicy(t *testing.T) {
	// Прошедший пустой день инертен, прошедший день с бронированиями - нет
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	days := map[string][]domain.Booking{
		"2026-01-10": {{ID: "b-1", Name: "Wedding", Slot: domain.SlotMorning}},
	}
	uc := newTestUseCase(days, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Month: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	pastBooked := cellByDate(t, resp.Cells, "2026-01-10")
	assert.True(t, pastBooked.Past)
	assert.True(t, pastBooked.Interactive)

	pastEmpty := cellByDate(t, resp.Cells, "2026-01-05")
	assert.True(t, pastEmpty.Past)
	assert.False(t, pastEmpty.Interactive)
}

func TestExecute_StatusesAndFirstSlot(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	days := map[string][]domain.Booking{
		"2026-01-26": {
			{ID: "b-1", Name: "Wedding", Slot: domain.SlotEvening},
		},
		"2026-01-27": {
			{ID: "b-2", Name: "Gala", Slot: domain.SlotMorning},
			{ID: "b-3", Name: "Party", Slot: domain.SlotAfternoon},
		},
	}
	uc := newTestUseCase(days, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Month: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	partial := cellByDate(t, resp.Cells, "2026-01-26")
	assert.Equal(t, string(domain.StatusPartiallyBooked), partial.Status)
	assert.Equal(t, 1, partial.BookingCount)
	// Метка-резюме - слот самого раннего бронирования
	require.NotNil(t, partial.FirstSlot)
	assert.Equal(t, "Evening", *partial.FirstSlot)

	full := cellByDate(t, resp.Cells, "2026-01-27")
	assert.Equal(t, string(domain.StatusFullyBooked), full.Status)
	assert.Equal(t, 2, full.BookingCount)

	empty := cellByDate(t, resp.Cells, "2026-01-20")
	assert.Equal(t, string(domain.StatusAvailable), empty.Status)
	assert.Nil(t, empty.FirstSlot)
}

func TestExecute_RecomputedPerRequest(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	days := make(map[string][]domain.Booking)
	uc := newTestUseCase(days, now)

	req := &Request{Month: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusAvailable), cellByDate(t, resp.Cells, "2026-01-26").Status)

	// Проекция не хранит состояния: изменение снимка видно на следующем запросе
	days["2026-01-26"] = []domain.Booking{{ID: "b-1", Name: "Wedding", Slot: domain.SlotMorning}}

	resp, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPartiallyBooked), cellByDate(t, resp.Cells, "2026-01-26").Status)
}

func TestExecute_InvalidMonth(t *testing.T) {
	uc := newTestUseCase(nil, time.Now())

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGridRange_FebruaryStartingSunday(t *testing.T) {
	// Февраль 2026 начинается с воскресенья и заканчивается в субботу:
	// сетка совпадает с месяцем, ровно 4 недели
	start, end := gridRange(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-02-01", start.Format(domain.DateFormat))
	assert.Equal(t, "2026-02-28", end.Format(domain.DateFormat))
}
