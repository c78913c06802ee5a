package book_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	bookAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/book_appointment"
)

type fakeUseCase struct {
	executeFn func(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error)
}

func (f *fakeUseCase) Execute(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error) {
	if f.executeFn == nil {
		panic("Execute not configured")
	}
	return f.executeFn(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string, withActor bool) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	if withActor {
		req.Header.Set("X-User-ID", "42")
		req.Header.Set("X-User-Role", "client")
	}
	rec := httptest.NewRecorder()

	// Прогоняем через Auth, как в production-роутере
	middleware.Auth(nopLogger{})(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

func validBody() string {
	return `{"serviceId": 1, "stylistId": 2, "appointmentDate": "2025-10-15", "startTime": "10:00"}`
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{
		executeFn: func(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error) {
			assert.Equal(t, int64(42), req.UserID)
			return &bookAppointment.Response{
				ID:        100,
				ClientID:  7,
				StylistID: req.StylistID,
				ServiceID: req.ServiceID,
				Date:      req.Date,
				StartTime: req.StartTime,
				Status:    "pending",
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}, nil
		},
	}

	rec := doRequest(t, uc, validBody(), true)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":100`)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestHandle_MissingUserHeader(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, validBody(), false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{broken`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDateFormat(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{},
		`{"serviceId": 1, "stylistId": 2, "appointmentDate": "15.10.2025", "startTime": "10:00"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unknown service", bookAppointment.ErrUnknownService, http.StatusNotFound},
		{"stylist not qualified", bookAppointment.ErrStylistNotQualified, http.StatusBadRequest},
		{"salon closed", bookAppointment.ErrSalonClosed, http.StatusBadRequest},
		{"slot in past", bookAppointment.ErrSlotInPast, http.StatusBadRequest},
		{"slot taken", bookAppointment.ErrSlotTaken, http.StatusConflict},
		{"invalid input", bookAppointment.ErrInvalidInput, http.StatusBadRequest},
		{"unauthenticated", bookAppointment.ErrUnauthenticated, http.StatusUnauthorized},
		{"persistence", bookAppointment.ErrPersistence, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{
				executeFn: func(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error) {
					return nil, tt.err
				},
			}

			rec := doRequest(t, uc, validBody(), true)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
