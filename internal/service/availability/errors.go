package availability

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках проверки доступности
	ErrInternal = errors.New("availability: internal error")
)
