package verify_pin

import (
	"errors"
	"net/http"
	"time"

	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/api/handlers"
	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/service/access"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	gate   AccessGate
	logger Logger
}

func NewHandler(gate AccessGate, logger Logger) *Handler {
	return &Handler{
		gate:   gate,
		logger: logger,
	}
}

// Handle POST /api/v1/auth/pin
// Обменивает верный PIN на токен управления: 200 {success:true, token},
// 401 {success:false} при несовпадении. Endpoint стоит за rate limiter.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyPinRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/pin - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.gate.VerifyPIN(req.Pin); err != nil {
		if errors.Is(err, access.ErrInvalidPIN) {
			h.logger.Warn("POST /auth/pin - PIN mismatch from %s", r.RemoteAddr)
			handlers.RespondJSON(w, http.StatusUnauthorized, VerifyPinResponse{Success: false})
			return
		}
		h.logger.Error("POST /auth/pin - Gate error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	token, expiresAt, err := h.gate.IssueToken(time.Now())
	if err != nil {
		h.logger.Error("POST /auth/pin - Failed to issue token: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/pin - Management token issued")
	handlers.RespondJSON(w, http.StatusOK, VerifyPinResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}
