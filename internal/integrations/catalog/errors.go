package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("catalog client: service not found")

	// ErrStylistNotFound возвращается, когда стилист не найден
	ErrStylistNotFound = errors.New("catalog client: stylist not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalog client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalog client: invalid response")
)
