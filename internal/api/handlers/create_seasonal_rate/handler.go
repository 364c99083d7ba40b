package create_seasonal_rate

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
	msgInvalidRoomID      = "некорректный ID комнаты"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgRoomNotFound       = "комната не найдена"
	msgPropertyNotFound   = "объект размещения не найден"
	msgForbidden          = "доступ запрещен"
	msgRateOverlap        = "сезонная ставка пересекается с существующей того же приоритета"
	msgInvalidData        = "некорректные данные сезонной ставки"
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

// Handle POST /api/v1/rooms/{roomId}/seasonal-rates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем roomId из URL
	vars := mux.Vars(r)
	roomIDStr := vars["roomId"]

	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/seasonal-rates - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	// Декодируем body
	var req CreateSeasonalRateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/{id}/seasonal-rates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /rooms/{id}/seasonal-rates - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Конвертируем в модель сервиса (с парсингом дат)
	serviceReq, err := req.ToServiceRequest(userID)
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/seasonal-rates - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Создаем ставку (сервис сам проверит права менеджера и пересечения)
	rate, err := h.service.Create(r.Context(), roomID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, rates.ErrRateOverlap):
			h.logger.Warn("POST /rooms/{id}/seasonal-rates - Rate overlap: room_id=%d, name=%s, priority=%d",
				roomID, req.Name, req.Priority)
			handlers.RespondError(w, http.StatusConflict, msgRateOverlap)

		case errors.Is(err, rates.ErrInvalidInput):
			h.logger.Warn("POST /rooms/{id}/seasonal-rates - Invalid rate data: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, rates.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{id}/seasonal-rates - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rates.ErrPropertyNotFound):
			h.logger.Warn("POST /rooms/{id}/seasonal-rates - Property not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, rates.ErrAccessDenied):
			h.logger.Warn("POST /rooms/{id}/seasonal-rates - Access denied: room_id=%d, user_id=%d",
				roomID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /rooms/{id}/seasonal-rates - Failed to create rate: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/{id}/seasonal-rates - Rate created successfully: rate_id=%d, room_id=%d, user_id=%d",
		rate.ID, roomID, userID)
	handlers.RespondJSON(w, http.StatusCreated, rate)
}
