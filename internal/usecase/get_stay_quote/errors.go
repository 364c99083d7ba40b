package get_stay_quote

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена или принадлежит
	// другому арендатору
	ErrRoomNotFound = errors.New("get_stay_quote: room not found")

	// ErrRoomInactive возвращается, когда комната снята с продажи
	ErrRoomInactive = errors.New("get_stay_quote: room is not active")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("get_stay_quote: invalid date range")

	// ErrStayTooLong возвращается, когда длительность проживания превышает лимит
	ErrStayTooLong = errors.New("get_stay_quote: stay exceeds maximum length")

	// ErrTooManyGuests возвращается, когда количество гостей превышает вместимость комнаты
	ErrTooManyGuests = errors.New("get_stay_quote: too many guests for this room")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_stay_quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_stay_quote: internal error")
)
