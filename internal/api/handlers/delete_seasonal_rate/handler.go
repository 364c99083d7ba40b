package delete_seasonal_rate

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
	msgInvalidRateID    = "некорректный ID сезонной ставки"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgRateNotFound     = "сезонная ставка не найдена"
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

// Handle DELETE /api/v1/rooms/{roomId}/seasonal-rates/{rateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем roomId и rateId из URL
	vars := mux.Vars(r)

	roomIDStr := vars["roomId"]
	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /rooms/{id}/seasonal-rates/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	rateIDStr := vars["rateId"]
	rateID, err := strconv.ParseInt(rateIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /rooms/{id}/seasonal-rates/{id} - Invalid rate ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRateID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /rooms/{id}/seasonal-rates/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Удаляем ставку (сервис сам проверит права менеджера)
	err = h.service.Delete(r.Context(), roomID, rateID, userID)
	if err != nil {
		switch {
		case errors.Is(err, rates.ErrRateNotFound):
			h.logger.Warn("DELETE /rooms/{id}/seasonal-rates/{id} - Rate not found: room_id=%d, rate_id=%d",
				roomID, rateID)
			handlers.RespondNotFound(w, msgRateNotFound)

		case errors.Is(err, rates.ErrRoomNotFound):
			h.logger.Warn("DELETE /rooms/{id}/seasonal-rates/{id} - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rates.ErrPropertyNotFound):
			h.logger.Warn("DELETE /rooms/{id}/seasonal-rates/{id} - Property not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, rates.ErrAccessDenied):
			h.logger.Warn("DELETE /rooms/{id}/seasonal-rates/{id} - Access denied: rate_id=%d, user_id=%d",
				rateID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /rooms/{id}/seasonal-rates/{id} - Failed to delete rate: rate_id=%d, error=%v",
				rateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /rooms/{id}/seasonal-rates/{id} - Rate deleted successfully: rate_id=%d, room_id=%d, user_id=%d",
		rateID, roomID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
