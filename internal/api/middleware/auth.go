package middleware

import (
	"net/http"

	"github.com/m04kA/RMS-AvailabilityService/internal/api/handlers"
)

const msgMissingUserID = "требуется заголовок X-User-ID"

// Auth проверяет наличие заголовка X-User-ID
// Идентификацию выполняет api-gateway, здесь только контроль наличия
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingUserID)
			return
		}

		next.ServeHTTP(w, r)
	})
}
