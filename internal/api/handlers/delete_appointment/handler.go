package delete_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
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

// Handle DELETE /api/v1/appointments/{appointmentId}
// Физическое удаление записи, доступно только администратору
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /appointments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), appointmentID, actor); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("DELETE /appointments/{id} - Access denied: appointment_id=%d, user_id=%d",
				appointmentID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to delete appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment deleted successfully: appointment_id=%d, user_id=%d",
		appointmentID, actor.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
