package create_booking

import (
	"errors"
	"net/http"

	"github.com/staysuite/pricing-service/internal/api/handlers"
	"github.com/staysuite/pricing-service/internal/api/middleware"
	createBooking "github.com/staysuite/pricing-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRoomNotFound       = "комната не найдена"
	msgRoomInactive       = "комната недоступна для бронирования"
	msgAddonNotFound      = "дополнительная услуга не найдена"
	msgAddonNotAvailable  = "дополнительная услуга недоступна для выбранных комнат"
	msgInvalidDateRange   = "дата выезда должна быть позже даты заезда"
	msgDateInPast         = "дата заезда уже прошла"
	msgStayTooLong        = "превышена максимальная длительность проживания"
	msgTooManyGuests      = "количество гостей превышает вместимость комнаты"
	msgMixedCurrencies    = "комнаты заказа используют разные валюты"
	msgPriceMismatch      = "стоимость изменилась, обновите корзину и повторите"
	msgInvalidBooking     = "некорректные параметры бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrPriceMismatch):
			h.logger.Warn("POST /bookings - Price mismatch: user_id=%d, property_id=%d, client_total=%.2f",
				userID, req.PropertyID, req.ClientTotal)
			handlers.RespondError(w, http.StatusConflict, msgPriceMismatch)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrRoomInactive):
			h.logger.Warn("POST /bookings - Room inactive: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondError(w, http.StatusConflict, msgRoomInactive)

		case errors.Is(err, createBooking.ErrAddonNotFound):
			h.logger.Warn("POST /bookings - Addon not found: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondNotFound(w, msgAddonNotFound)

		case errors.Is(err, createBooking.ErrAddonNotAvailable):
			h.logger.Warn("POST /bookings - Addon not available: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondBadRequest(w, msgAddonNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Check-in date in past: user_id=%d, check_in=%s", userID, req.CheckIn)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrStayTooLong):
			h.logger.Warn("POST /bookings - Stay too long: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondBadRequest(w, msgStayTooLong)

		case errors.Is(err, createBooking.ErrTooManyGuests):
			h.logger.Warn("POST /bookings - Too many guests: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondBadRequest(w, msgTooManyGuests)

		case errors.Is(err, createBooking.ErrMixedCurrencies):
			h.logger.Warn("POST /bookings - Mixed currencies: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondBadRequest(w, msgMixedCurrencies)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, property_id=%d, error=%v",
				userID, req.PropertyID, err)
			handlers.RespondBadRequest(w, msgInvalidBooking)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, property_id=%d, error=%v",
				userID, req.PropertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, property_id=%d, grand_total=%.2f",
		result.ID, userID, req.PropertyID, result.GrandTotal)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
