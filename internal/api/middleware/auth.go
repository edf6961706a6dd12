package middleware

import (
	"net/http"

	"github.com/discusszone/DZ-BookingService/internal/api/handlers"
)

// Заголовки идентичности. Аутентификацию выполняет внешний шлюз,
// сервис доверяет проставленным им заголовкам.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserName = "X-User-Name"
	HeaderUserRole = "X-User-Role"

	roleAdmin = "admin"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// IsAdmin возвращает true, если запрос выполняет администратор
func IsAdmin(r *http.Request) bool {
	return r.Header.Get(HeaderUserRole) == roleAdmin
}

// Auth требует наличия заголовка идентичности на защищенных маршрутах
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(HeaderUserID) == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, HeaderUserID)
				handlers.RespondUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
