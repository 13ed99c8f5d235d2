package get_calendar

import (
	"time"

	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/domain"
	"github.com/Immortalpie-11/VJK-Mahal-Booking/pkg/ptr"
)

// startOfMonth возвращает первое число месяца даты
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// gridRange возвращает границы отображаемой сетки: воскресенье недели,
// содержащей первое число месяца, и суббота недели, содержащей последнее.
// Неделя начинается с воскресенья.
func gridRange(month time.Time) (time.Time, time.Time) {
	first := startOfMonth(month)
	last := first.AddDate(0, 1, -1)

	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	gridEnd := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	return gridStart, gridEnd
}

// buildGrid строит ячейки сетки месяца по снимку бронирований.
// Сетка пересчитывается заново на каждый запрос и не хранит состояния.
//
// "Сегодня" и "прошлое" - сравнение календарных дат, а не моментов времени:
// ячейки сетки живут в зоне запрошенного месяца, а today приходит в зоне
// сервера. Даты в формате YYYY-MM-DD сравниваются лексикографически.
func buildGrid(month, today time.Time, days map[string][]domain.Booking, rules domain.DayRules) []DayCell {
	month = startOfMonth(month)
	todayKey := today.Format(domain.DateFormat)

	gridStart, gridEnd := gridRange(month)

	cells := make([]DayCell, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		key := day.Format(domain.DateFormat)
		bookings := days[key]

		inMonth := day.Month() == month.Month() && day.Year() == month.Year()
		past := key < todayKey

		cell := DayCell{
			Date:         key,
			Day:          day.Day(),
			InMonth:      inMonth,
			Today:        key == todayKey,
			Past:         past,
			Status:       string(domain.StatusFor(len(bookings), rules.MaxEventsPerDay)),
			BookingCount: len(bookings),
			// Прошедшие дни без бронирований инертны; дни с бронированиями
			// остаются доступными, чтобы история не терялась.
			Interactive: inMonth && !(past && len(bookings) == 0),
		}
		if len(bookings) > 0 {
			cell.FirstSlot = ptr.Ptr(string(bookings[0].Slot))
		}

		cells = append(cells, cell)
	}

	return cells
}
