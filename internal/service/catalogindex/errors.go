package catalogindex

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	// Пустой список подходящих стилистов ошибкой НЕ является
	ErrServiceNotFound = errors.New("catalogindex: service not found")

	// ErrStylistNotFound возвращается, когда стилист не найден
	ErrStylistNotFound = errors.New("catalogindex: stylist not found")

	// ErrStylistNotQualified возвращается, когда стилист не может выполнить услугу
	// (нет квалификации или статус inactive)
	ErrStylistNotQualified = errors.New("catalogindex: stylist is not qualified for service")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalogindex: internal error")
)
