package get_property_addons

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/staysuite/pricing-service/internal/api/handlers"
)

const msgInvalidPropertyID = "некорректный ID объекта размещения"

type Handler struct {
	service AddonService
	logger  Logger
}

func NewHandler(service AddonService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/addons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем propertyId из URL
	vars := mux.Vars(r)
	propertyIDStr := vars["propertyId"]

	propertyID, err := strconv.ParseInt(propertyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/addons - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	// Каталог услуг публичный, несуществующий объект дает пустой список
	result, err := h.service.GetByProperty(r.Context(), propertyID)
	if err != nil {
		h.logger.Error("GET /properties/{id}/addons - Failed to get addons: property_id=%d, error=%v",
			propertyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /properties/{id}/addons - Addons retrieved successfully: property_id=%d, count=%d",
		propertyID, len(result.Addons))
	handlers.RespondJSON(w, http.StatusOK, result)
}
