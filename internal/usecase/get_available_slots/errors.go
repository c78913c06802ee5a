package get_available_slots

import "errors"

var (
	// ErrStylistNotQualified возвращается, когда стилист не выполняет услугу
	ErrStylistNotQualified = errors.New("get_available_slots: stylist is not qualified for service")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
