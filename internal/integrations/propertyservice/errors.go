package propertyservice

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда собственность не найдена
	ErrPropertyNotFound = errors.New("property not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("propertyservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("propertyservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что PropertyService недоступен и чтение продолжается по
	// локальным данным
	ErrServiceDegraded = errors.New("propertyservice unavailable: graceful degradation applied")
)
