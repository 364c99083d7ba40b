package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена, принадлежит
	// другому арендатору или другому объекту размещения
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomInactive возвращается, когда комната снята с продажи
	ErrRoomInactive = errors.New("create_booking: room is not active")

	// ErrAddonNotFound возвращается, когда дополнительная услуга не найдена
	// или недоступна для объекта размещения
	ErrAddonNotFound = errors.New("create_booking: addon not found")

	// ErrAddonNotAvailable возвращается, когда услуга привязана к комнате,
	// отсутствующей в бронировании
	ErrAddonNotAvailable = errors.New("create_booking: addon is not available for the selected rooms")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("create_booking: invalid date range")

	// ErrDateInPast возвращается, когда дата заезда уже прошла
	ErrDateInPast = errors.New("create_booking: check-in date is in the past")

	// ErrStayTooLong возвращается, когда длительность проживания превышает лимит
	ErrStayTooLong = errors.New("create_booking: stay exceeds maximum length")

	// ErrTooManyGuests возвращается, когда количество гостей превышает вместимость комнаты
	ErrTooManyGuests = errors.New("create_booking: too many guests for a room")

	// ErrMixedCurrencies возвращается, когда комнаты бронирования имеют разные валюты
	ErrMixedCurrencies = errors.New("create_booking: rooms have different currencies")

	// ErrPriceMismatch возвращается, когда итог клиента не совпадает с
	// пересчитанным итогом сервера
	ErrPriceMismatch = errors.New("create_booking: client total does not match server total")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
