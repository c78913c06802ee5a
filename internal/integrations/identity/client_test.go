package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 5*time.Second, nopLogger{}), srv
}

func TestGetUser_NormalizesEnvelopeFormats(t *testing.T) {
	// Исторические форматы ответа IdentityService:
	// payload.user, payload.data.user, payload.data и плоский корень
	tests := []struct {
		name string
		body string
	}{
		{"user at root key", `{"user": {"id": 42, "name": "Анна", "email": "anna@example.com", "role": "client"}}`},
		{"user inside data", `{"data": {"user": {"id": 42, "name": "Анна", "email": "anna@example.com", "role": "client"}}}`},
		{"fields inside data", `{"data": {"id": 42, "name": "Анна", "email": "anna@example.com", "role": "client"}}`},
		{"flat root", `{"id": 42, "name": "Анна", "email": "anna@example.com", "role": "client"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/internal/users/42", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			})
			defer srv.Close()

			user, err := client.GetUser(context.Background(), 42)

			require.NoError(t, err)
			assert.Equal(t, int64(42), user.ID)
			assert.Equal(t, "Анна", user.Name)
			assert.Equal(t, "client", user.Role)
		})
	}
}

func TestGetUser_NotFound(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer srv.Close()

	_, err := client.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUser_EmptyEnvelope(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	defer srv.Close()

	_, err := client.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetUser_UnexpectedStatus(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer srv.Close()

	_, err := client.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
