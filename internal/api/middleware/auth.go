package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/eh-co/CryoBookingService/internal/api/handlers"
)

const msgUnauthorized = "Anmeldung erforderlich"

// Auth возвращает middleware, проверяющий Bearer токен админки.
// Сравнение токенов постоянное по времени.
func Auth(adminToken string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			if subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
