package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

// RequestID проставляет идентификатор запроса, если шлюз его не передал
// Идентификатор возвращается в ответе для корреляции логов
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
			r.Header.Set(headerRequestID, requestID)
		}
		w.Header().Set(headerRequestID, requestID)
		next.ServeHTTP(w, r)
	})
}
