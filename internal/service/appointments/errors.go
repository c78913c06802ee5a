package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	// Запись при этом остаётся нетронутой
	ErrInvalidTransition = errors.New("appointments: invalid status transition")

	// ErrAccessDenied возвращается, когда у актора нет прав на операцию
	// Запись при этом остаётся нетронутой
	ErrAccessDenied = errors.New("appointments: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments: internal error")
)
