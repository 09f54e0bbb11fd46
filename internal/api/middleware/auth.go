package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

const (
	// AdminTokenHeader заголовок с токеном администратора
	AdminTokenHeader = "X-Admin-Token"

	msgMissingToken = "отсутствует токен администратора"
	msgInvalidToken = "некорректный токен администратора"
)

// AdminAuth возвращает middleware, проверяющий заголовок X-Admin-Token
// Токен сравнивается за постоянное время
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(AdminTokenHeader)
			if provided == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondForbidden(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
