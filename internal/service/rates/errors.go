package rates

import "errors"

var (
	// ErrRateNotFound возвращается, когда сезонная ставка не найдена
	ErrRateNotFound = errors.New("seasonal rate not found")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("property not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrRateOverlap возвращается, когда диапазон ставки пересекается с другой
	// ставкой того же приоритета
	ErrRateOverlap = errors.New("seasonal rate overlaps an existing rate with the same priority")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
