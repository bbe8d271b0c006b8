package middleware

import (
	"net/http"

	"github.com/Jelenicat/abeauty/internal/api/handlers"
)

const (
	roleHeader = "X-User-Role"
	roleAdmin  = "admin"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RequireAdmin пропускает только запросы с ролью admin.
// Роль приходит из шлюза аутентификации в заголовке X-User-Role.
func RequireAdmin(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(roleHeader) != roleAdmin {
				logger.Warn("%s %s - admin role required", r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusForbidden, "pristup dozvoljen samo administratorima")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
