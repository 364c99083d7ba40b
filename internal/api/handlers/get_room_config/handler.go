package get_room_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/staysuite/pricing-service/internal/api/handlers"
	"github.com/staysuite/pricing-service/internal/api/middleware"
	"github.com/staysuite/pricing-service/internal/service/rooms"
)

const (
	msgInvalidRoomID    = "некорректный ID комнаты"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgRoomNotFound     = "комната не найдена"
	msgPropertyNotFound = "объект размещения не найден"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/pricing-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем roomId из URL
	vars := mux.Vars(r)
	roomIDStr := vars["roomId"]

	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/pricing-config - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /rooms/{id}/pricing-config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем конфигурацию (сервис сам проверит права менеджера)
	config, err := h.service.GetPricingConfig(r.Context(), roomID, userID)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/pricing-config - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rooms.ErrPropertyNotFound):
			h.logger.Warn("GET /rooms/{id}/pricing-config - Property not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("GET /rooms/{id}/pricing-config - Access denied: room_id=%d, user_id=%d",
				roomID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /rooms/{id}/pricing-config - Failed to get config: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/pricing-config - Config retrieved successfully: room_id=%d, user_id=%d",
		roomID, userID)
	handlers.RespondJSON(w, http.StatusOK, config)
}
