package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	msgUnauthenticated = "требуется аутентификация"
)

type actorCtxKey struct{}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth извлекает актора из доверенных заголовков шлюза
// Запросы без корректного X-User-ID отклоняются с 401
// Некорректная или пустая роль трактуется как client
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawID := r.Header.Get(headerUserID)
			userID, err := strconv.ParseInt(rawID, 10, 64)
			if err != nil || userID <= 0 {
				logger.Warn("%s %s - Missing or invalid %s header", r.Method, r.URL.Path, headerUserID)
				handlers.RespondUnauthorized(w, msgUnauthenticated)
				return
			}

			role, err := domain.ParseRole(r.Header.Get(headerUserRole))
			if err != nil {
				role = domain.RoleClient
			}

			actor := domain.Actor{
				UserID: userID,
				Role:   role,
			}

			ctx := context.WithValue(r.Context(), actorCtxKey{}, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFromContext возвращает актора, положенного Auth middleware
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(domain.Actor)
	return actor, ok
}
