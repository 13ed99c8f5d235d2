package get_day_bookings

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/api/handlers"
	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/domain"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/days/{date}/bookings
// Детализация дня для окна управления, требует токен
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateStr := vars["date"]

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /days/{date}/bookings - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result := h.service.DayBookings(date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
