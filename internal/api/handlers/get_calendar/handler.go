package get_calendar

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/api/handlers"
	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/domain"
	getCalendar "github.com/Immortalpie-11/VJK-Mahal-Booking/internal/usecase/get_calendar"
)

const (
	msgInvalidMonth = "некорректный формат месяца, ожидается YYYY-MM"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/{month}
// Публичный endpoint - сетка доступности на месяц, без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	monthStr := vars["month"]

	month, err := time.Parse(domain.MonthFormat, monthStr)
	if err != nil {
		h.logger.Warn("GET /calendar/{month} - Invalid month %q: %v", monthStr, err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{Month: month})
	if err != nil {
		h.logger.Error("GET /calendar/{month} - Failed to build calendar: month=%s, error=%v", monthStr, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
