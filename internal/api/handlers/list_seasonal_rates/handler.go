package list_seasonal_rates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/staysuite/pricing-service/internal/api/handlers"
	"github.com/staysuite/pricing-service/internal/api/middleware"
	"github.com/staysuite/pricing-service/internal/service/rates"
)

const (
	msgInvalidRoomID    = "некорректный ID комнаты"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgRoomNotFound     = "комната не найдена"
	msgPropertyNotFound = "объект размещения не найден"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	service RateService
	logger  Logger
}

func NewHandler(service RateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/seasonal-rates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем roomId из URL
	vars := mux.Vars(r)
	roomIDStr := vars["roomId"]

	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/seasonal-rates - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /rooms/{id}/seasonal-rates - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем список ставок (сервис сам проверит права менеджера)
	result, err := h.service.ListByRoom(r.Context(), roomID, userID)
	if err != nil {
		switch {
		case errors.Is(err, rates.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/seasonal-rates - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rates.ErrPropertyNotFound):
			h.logger.Warn("GET /rooms/{id}/seasonal-rates - Property not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, rates.ErrAccessDenied):
			h.logger.Warn("GET /rooms/{id}/seasonal-rates - Access denied: room_id=%d, user_id=%d",
				roomID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /rooms/{id}/seasonal-rates - Failed to list rates: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/seasonal-rates - Rates retrieved successfully: room_id=%d, user_id=%d, count=%d",
		roomID, userID, len(result.Rates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
