package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

const (
	msgInvalidStylistID    = "некорректный ID стилиста"
	msgInvalidServiceID    = "некорректный ID услуги"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStylistNotQualified = "стилист не найден или не выполняет услугу"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stylists/{stylistId}/available-slots?date=YYYY-MM-DD&serviceId=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stylistID, err := strconv.ParseInt(vars["stylistId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /stylists/{stylistId}/available-slots - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	serviceID, err := strconv.ParseInt(r.URL.Query().Get("serviceId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /stylists/{stylistId}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /stylists/{stylistId}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		StylistID: stylistID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrStylistNotQualified):
			h.logger.Warn("GET /stylists/{stylistId}/available-slots - Stylist not qualified: stylist_id=%d, service_id=%d",
				stylistID, serviceID)
			handlers.RespondNotFound(w, msgStylistNotQualified)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /stylists/{stylistId}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /stylists/{stylistId}/available-slots - Failed to get slots: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stylists/{stylistId}/available-slots - Slots retrieved successfully: stylist_id=%d, date=%s, count=%d",
		stylistID, result.Date.Format(domain.DateFormat), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
