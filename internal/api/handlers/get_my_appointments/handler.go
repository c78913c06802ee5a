package get_my_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
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

// Handle GET /api/v1/my/appointments
// Клиент видит свои записи, стилист - назначенные на него
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /my/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем status из query параметров (опционально)
	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	result, err := h.service.ListMine(r.Context(), actor, statusPtr)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /my/appointments - Invalid status filter: user_id=%d, status=%q", actor.UserID, status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /my/appointments - Failed to get appointments: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /my/appointments - Appointments retrieved successfully: user_id=%d, count=%d",
		actor.UserID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
