package get_stay_quote

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/staysuite/pricing-service/internal/api/handlers"
	getStayQuote "github.com/staysuite/pricing-service/internal/usecase/get_stay_quote"
)

const (
	msgInvalidTenantID     = "некорректный ID арендатора"
	msgInvalidRoomID       = "некорректный ID комнаты"
	msgMissingDates        = "даты заезда и выезда обязательны"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidGuests       = "некорректные параметры гостей"
	msgInvalidDateRange    = "дата выезда должна быть позже даты заезда"
	msgStayTooLong         = "превышена максимальная длительность проживания"
	msgRoomNotFound        = "комната не найдена"
	msgRoomInactive        = "комната недоступна для бронирования"
	msgTooManyGuests       = "количество гостей превышает вместимость комнаты"
	msgInvalidQuoteRequest = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetStayQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetStayQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/rooms/{roomId}/quote
// Query params: checkIn (required, YYYY-MM-DD), checkOut (required, YYYY-MM-DD),
// adults (default 1), children (default 0), childrenAges (через запятую)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем tenantId из URL
	tenantIDStr := vars["tenantId"]
	tenantID, err := strconv.ParseInt(tenantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/rooms/{id}/quote - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	// Извлекаем roomId из URL
	roomIDStr := vars["roomId"]
	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/rooms/{id}/quote - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	// Извлекаем даты из query параметров
	query := r.URL.Query()
	checkInStr := query.Get("checkIn")
	checkOutStr := query.Get("checkOut")
	if checkInStr == "" || checkOutStr == "" {
		h.logger.Warn("GET /tenants/{id}/rooms/{id}/quote - Missing dates: room_id=%d", roomID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	// Извлекаем состав гостей из query параметров
	adults, err := intQueryParam(query.Get("adults"), 1)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/rooms/{id}/quote - Invalid adults param: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuests)
		return
	}

	children, err := intQueryParam(query.Get("children"), 0)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/rooms/{id}/quote - Invalid children param: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuests)
		return
	}

	childrenAges, err := parseAges(query.Get("childrenAges"))
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/rooms/{id}/quote - Invalid childrenAges param: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuests)
		return
	}

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, err := ToUseCaseRequest(tenantID, roomID, checkInStr, checkOutStr, adults, children, childrenAges)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/rooms/{id}/quote - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getStayQuote.ErrRoomNotFound):
			h.logger.Warn("GET /tenants/{id}/rooms/{id}/quote - Room not found: tenant_id=%d, room_id=%d",
				tenantID, roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getStayQuote.ErrRoomInactive):
			h.logger.Warn("GET /tenants/{id}/rooms/{id}/quote - Room inactive: room_id=%d", roomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomInactive)

		case errors.Is(err, getStayQuote.ErrInvalidDateRange):
			h.logger.Warn("GET /tenants/{id}/rooms/{id}/quote - Invalid date range: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, getStayQuote.ErrStayTooLong):
			h.logger.Warn("GET /tenants/{id}/rooms/{id}/quote - Stay too long: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgStayTooLong)

		case errors.Is(err, getStayQuote.ErrTooManyGuests):
			h.logger.Warn("GET /tenants/{id}/rooms/{id}/quote - Too many guests: room_id=%d, adults=%d, children=%d",
				roomID, adults, children)
			handlers.RespondBadRequest(w, msgTooManyGuests)

		case errors.Is(err, getStayQuote.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{id}/rooms/{id}/quote - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidQuoteRequest)

		default:
			h.logger.Error("GET /tenants/{id}/rooms/{id}/quote - Failed to calculate quote: tenant_id=%d, room_id=%d, error=%v",
				tenantID, roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /tenants/{id}/rooms/{id}/quote - Quote calculated successfully: tenant_id=%d, room_id=%d, nights=%d, subtotal=%.2f, source=%s",
		tenantID, roomID, result.NightCount, result.Subtotal, result.Source)
	handlers.RespondJSON(w, http.StatusOK, response)
}

// intQueryParam парсит числовой query параметр с значением по умолчанию
func intQueryParam(raw string, defaultValue int) (int, error) {
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}

// parseAges парсит возраст детей из строки вида "4,9,12"
func parseAges(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ages := make([]int, 0, len(parts))
	for _, part := range parts {
		age, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ages = append(ages, age)
	}
	return ages, nil
}
