package get_calendar

import "time"

// Request запрос проекции календаря на месяц
type Request struct {
	Month time.Time // первое число запрошенного месяца
}

// DayCell одна ячейка сетки календаря
type DayCell struct {
	Date         string  `json:"date"` // "2026-01-26"
	Day          int     `json:"day"`  // число месяца для отображения
	InMonth      bool    `json:"inMonth"`
	Today        bool    `json:"today"`
	Past         bool    `json:"past"`
	Status       string  `json:"status"`
	BookingCount int     `json:"bookingCount"`
	FirstSlot    *string `json:"firstSlot,omitempty"` // слот самого раннего бронирования дня
	Interactive  bool    `json:"interactive"`
}

// Response сетка календаря на месяц: 7xN ячеек от воскресенья недели,
// содержащей первое число, до субботы недели, содержащей последнее
type Response struct {
	Month string    `json:"month"` // "2026-01"
	Today string    `json:"today"` // "2026-01-15"
	Cells []DayCell `json:"cells"`
}
