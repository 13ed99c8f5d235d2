package remove_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/api/handlers"
	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/domain"
	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/service/schedule"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPersistence = "не удалось сохранить изменения, попробуйте еще раз"
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

// Handle DELETE /api/v1/days/{date}/bookings/{bookingId}
// Management endpoint, требует токен управления.
// Удаление отсутствующего бронирования также отвечает 204 (идемпотентность).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateStr := vars["date"]
	bookingID := vars["bookingId"]

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("DELETE /days/{date}/bookings/{id} - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.RemoveBooking(r.Context(), date, bookingID); err != nil {
		if errors.Is(err, schedule.ErrPersistence) {
			h.logger.Error("DELETE /days/{date}/bookings/{id} - Persistence failure: date=%s, id=%s, error=%v",
				dateStr, bookingID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPersistence)
			return
		}
		h.logger.Error("DELETE /days/{date}/bookings/{id} - Failed to remove booking: date=%s, id=%s, error=%v",
			dateStr, bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /days/{date}/bookings/{id} - Booking removed: date=%s, id=%s", dateStr, bookingID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
