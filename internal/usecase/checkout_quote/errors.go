package checkout_quote

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена, принадлежит
	// другому арендатору или другому объекту размещения
	ErrRoomNotFound = errors.New("checkout_quote: room not found")

	// ErrRoomInactive возвращается, когда комната снята с продажи
	ErrRoomInactive = errors.New("checkout_quote: room is not active")

	// ErrAddonNotFound возвращается, когда дополнительная услуга не найдена
	// или недоступна для объекта размещения
	ErrAddonNotFound = errors.New("checkout_quote: addon not found")

	// ErrAddonNotAvailable возвращается, когда услуга привязана к комнате,
	// отсутствующей в заказе
	ErrAddonNotAvailable = errors.New("checkout_quote: addon is not available for the selected rooms")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("checkout_quote: invalid date range")

	// ErrStayTooLong возвращается, когда длительность проживания превышает лимит
	ErrStayTooLong = errors.New("checkout_quote: stay exceeds maximum length")

	// ErrTooManyGuests возвращается, когда количество гостей превышает вместимость комнаты
	ErrTooManyGuests = errors.New("checkout_quote: too many guests for a room")

	// ErrMixedCurrencies возвращается, когда комнаты заказа имеют разные валюты
	ErrMixedCurrencies = errors.New("checkout_quote: rooms have different currencies")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("checkout_quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("checkout_quote: internal error")
)
