package checkout_quote

import (
	"errors"
	"net/http"

	"github.com/staysuite/pricing-service/internal/api/handlers"
	checkoutQuote "github.com/staysuite/pricing-service/internal/usecase/checkout_quote"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange   = "дата выезда должна быть позже даты заезда"
	msgStayTooLong        = "превышена максимальная длительность проживания"
	msgRoomNotFound       = "комната не найдена"
	msgRoomInactive       = "комната недоступна для бронирования"
	msgTooManyGuests      = "количество гостей превышает вместимость комнаты"
	msgAddonNotFound      = "дополнительная услуга не найдена"
	msgAddonNotAvailable  = "дополнительная услуга недоступна для выбранных комнат"
	msgMixedCurrencies    = "комнаты заказа используют разные валюты"
	msgInvalidCheckout    = "некорректные параметры заказа"
)

type Handler struct {
	useCase CheckoutQuoteUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req CheckoutQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем в запрос use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /checkout/quote - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkoutQuote.ErrRoomNotFound):
			h.logger.Warn("POST /checkout/quote - Room not found: tenant_id=%d, property_id=%d",
				req.TenantID, req.PropertyID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, checkoutQuote.ErrRoomInactive):
			h.logger.Warn("POST /checkout/quote - Room inactive: property_id=%d", req.PropertyID)
			handlers.RespondError(w, http.StatusConflict, msgRoomInactive)

		case errors.Is(err, checkoutQuote.ErrAddonNotFound):
			h.logger.Warn("POST /checkout/quote - Addon not found: property_id=%d", req.PropertyID)
			handlers.RespondNotFound(w, msgAddonNotFound)

		case errors.Is(err, checkoutQuote.ErrAddonNotAvailable):
			h.logger.Warn("POST /checkout/quote - Addon not available: property_id=%d", req.PropertyID)
			handlers.RespondBadRequest(w, msgAddonNotAvailable)

		case errors.Is(err, checkoutQuote.ErrInvalidDateRange):
			h.logger.Warn("POST /checkout/quote - Invalid date range: property_id=%d", req.PropertyID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, checkoutQuote.ErrStayTooLong):
			h.logger.Warn("POST /checkout/quote - Stay too long: property_id=%d", req.PropertyID)
			handlers.RespondBadRequest(w, msgStayTooLong)

		case errors.Is(err, checkoutQuote.ErrTooManyGuests):
			h.logger.Warn("POST /checkout/quote - Too many guests: property_id=%d", req.PropertyID)
			handlers.RespondBadRequest(w, msgTooManyGuests)

		case errors.Is(err, checkoutQuote.ErrMixedCurrencies):
			h.logger.Warn("POST /checkout/quote - Mixed currencies: property_id=%d", req.PropertyID)
			handlers.RespondBadRequest(w, msgMixedCurrencies)

		case errors.Is(err, checkoutQuote.ErrInvalidInput):
			h.logger.Warn("POST /checkout/quote - Invalid input: property_id=%d, error=%v",
				req.PropertyID, err)
			handlers.RespondBadRequest(w, msgInvalidCheckout)

		default:
			h.logger.Error("POST /checkout/quote - Failed to calculate checkout: tenant_id=%d, property_id=%d, error=%v",
				req.TenantID, req.PropertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /checkout/quote - Checkout calculated successfully: tenant_id=%d, property_id=%d, rooms=%d, grand_total=%.2f",
		req.TenantID, req.PropertyID, len(result.Rooms), result.GrandTotal)
	handlers.RespondJSON(w, http.StatusOK, response)
}
