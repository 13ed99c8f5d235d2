package middleware

import (
	"net/http"
	"strings"

	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/api/handlers"
)

// TokenValidator проверяет capability-токен управления
type TokenValidator interface {
	ValidateToken(token string) error
}

// Auth middleware аутентификации management-операций.
// Запросы без валидного Bearer токена отклоняются (fail closed),
// а не полагаются на скрытие элементов интерфейса.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, "требуется токен управления")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				handlers.RespondUnauthorized(w, "некорректный формат токена")
				return
			}

			if err := validator.ValidateToken(token); err != nil {
				handlers.RespondUnauthorized(w, "недействительный токен")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
