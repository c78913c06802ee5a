package book_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	bookAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgUnauthenticated     = "пользователь не найден"
	msgServiceNotFound     = "услуга не найдена"
	msgStylistNotQualified = "стилист не выполняет выбранную услугу"
	msgSalonClosed         = "салон закрыт в выбранную дату"
	msgSlotInPast          = "выбранный слот уже прошёл"
	msgSlotTaken           = "выбранный слот уже занят"
	msgInvalidInput        = "некорректные данные запроса"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(actor.UserID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrUnauthenticated):
			h.logger.Warn("POST /appointments - Unauthenticated: user_id=%d", actor.UserID)
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, bookAppointment.ErrUnknownService):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, bookAppointment.ErrStylistNotQualified):
			h.logger.Warn("POST /appointments - Stylist not qualified: stylist_id=%d, service_id=%d",
				req.StylistID, req.ServiceID)
			handlers.RespondBadRequest(w, msgStylistNotQualified)

		case errors.Is(err, bookAppointment.ErrSalonClosed):
			h.logger.Warn("POST /appointments - Salon closed: date=%s", req.AppointmentDate)
			handlers.RespondBadRequest(w, msgSalonClosed)

		case errors.Is(err, bookAppointment.ErrSlotInPast):
			h.logger.Warn("POST /appointments - Slot in past: user_id=%d, slot=%s %s",
				actor.UserID, req.AppointmentDate, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, bookAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: stylist_id=%d, slot=%s %s",
				req.StylistID, req.AppointmentDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to book appointment: user_id=%d, error=%v",
				actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, user_id=%d, stylist_id=%d",
		result.ID, actor.UserID, req.StylistID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
