package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Warn(format string, v ...interface{}) {}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		role       string
		wantStatus int
		wantActor  domain.Actor
	}{
		{"client", "42", "client", http.StatusOK, domain.Actor{UserID: 42, Role: domain.RoleClient}},
		{"stylist", "7", "stylist", http.StatusOK, domain.Actor{UserID: 7, Role: domain.RoleStylist}},
		{"admin", "1", "admin", http.StatusOK, domain.Actor{UserID: 1, Role: domain.RoleAdmin}},
		{"unknown role falls back to client", "42", "superuser", http.StatusOK, domain.Actor{UserID: 42, Role: domain.RoleClient}},
		{"missing role falls back to client", "42", "", http.StatusOK, domain.Actor{UserID: 42, Role: domain.RoleClient}},
		{"missing user id", "", "client", http.StatusUnauthorized, domain.Actor{}},
		{"non-numeric user id", "abc", "client", http.StatusUnauthorized, domain.Actor{}},
		{"non-positive user id", "0", "client", http.StatusUnauthorized, domain.Actor{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotActor domain.Actor
			var called bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				actor, ok := ActorFromContext(r.Context())
				require.True(t, ok)
				gotActor = actor
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/my/appointments", nil)
			if tt.userID != "" {
				req.Header.Set("X-User-ID", tt.userID)
			}
			if tt.role != "" {
				req.Header.Set("X-User-Role", tt.role)
			}
			rec := httptest.NewRecorder()

			Auth(nopLogger{})(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.True(t, called)
				assert.Equal(t, tt.wantActor, gotActor)
			} else {
				assert.False(t, called)
			}
		})
	}
}

func TestActorFromContext_MissingActor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := ActorFromContext(req.Context())
	assert.False(t, ok)
}
