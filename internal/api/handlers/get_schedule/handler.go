package get_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForbidden     = "доступ запрещен"
	msgInvalidStatus = "некорректный фильтр по статусу"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule?date=YYYY-MM-DD
// Дневная ведомость всех записей, доступна только администратору
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	result, err := h.service.GetDaySchedule(r.Context(), date, actor, statusPtr)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /schedule - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /schedule - Invalid status filter: status=%q", status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /schedule - Failed to get schedule: date=%s, error=%v",
				date.Format(domain.DateFormat), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule - Schedule retrieved successfully: date=%s, count=%d",
		date.Format(domain.DateFormat), len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
