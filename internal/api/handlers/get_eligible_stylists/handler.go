package get_eligible_stylists

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/catalogindex"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	catalogIdx CatalogIndex
	logger     Logger
}

func NewHandler(catalogIdx CatalogIndex, logger Logger) *Handler {
	return &Handler{
		catalogIdx: catalogIdx,
		logger:     logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/stylists
// Активные стилисты, выполняющие услугу. Пустой список валиден
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /services/{serviceId}/stylists - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	stylists, err := h.catalogIdx.StylistsForService(r.Context(), serviceID)
	if err != nil {
		if errors.Is(err, catalogindex.ErrServiceNotFound) {
			h.logger.Warn("GET /services/{serviceId}/stylists - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)
			return
		}
		h.logger.Error("GET /services/{serviceId}/stylists - Failed to get stylists: service_id=%d, error=%v",
			serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services/{serviceId}/stylists - Stylists retrieved successfully: service_id=%d, count=%d",
		serviceID, len(stylists))
	handlers.RespondJSON(w, http.StatusOK, FromCatalogStylists(stylists))
}
