package add_booking

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
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgEmptyName          = "название бронирования не может быть пустым"
	msgNameTooLong        = "название бронирования слишком длинное"
	msgUnknownSlot        = "неизвестный временной слот"
	msgAllDayConflict     = "слот All Day конфликтует с другими бронированиями дня"
	msgSlotTaken          = "на этот слот уже есть бронирование"
	msgCapacityExceeded   = "достигнут лимит бронирований на день"
	msgPersistence        = "не удалось сохранить изменения, попробуйте еще раз"
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

// Handle POST /api/v1/days/{date}/bookings
// Management endpoint, требует токен управления
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateStr := vars["date"]

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("POST /days/{date}/bookings - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req AddBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /days/{date}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddBooking(r.Context(), date, req.Name, req.Slot)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyName):
			handlers.RespondBadRequest(w, msgEmptyName)

		case errors.Is(err, domain.ErrNameTooLong):
			handlers.RespondBadRequest(w, msgNameTooLong)

		case errors.Is(err, domain.ErrUnknownSlot):
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, domain.ErrAllDayConflict):
			h.logger.Warn("POST /days/{date}/bookings - All-day conflict: date=%s", dateStr)
			handlers.RespondConflict(w, msgAllDayConflict)

		case errors.Is(err, domain.ErrSlotTaken):
			h.logger.Warn("POST /days/{date}/bookings - Slot taken: date=%s, slot=%s", dateStr, req.Slot)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, domain.ErrCapacityExceeded):
			h.logger.Warn("POST /days/{date}/bookings - Capacity exceeded: date=%s", dateStr)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, schedule.ErrPersistence):
			h.logger.Error("POST /days/{date}/bookings - Persistence failure: date=%s, error=%v", dateStr, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPersistence)

		default:
			h.logger.Error("POST /days/{date}/bookings - Failed to add booking: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /days/{date}/bookings - Booking created: id=%s, date=%s, slot=%s",
		result.ID, dateStr, result.Slot)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
