package book_appointment

import "errors"

var (
	// ErrUnauthenticated возвращается, когда актор не аутентифицирован
	// или не найден в IdentityService
	ErrUnauthenticated = errors.New("book_appointment: unauthenticated")

	// ErrUnknownService возвращается, когда услуга не найдена в каталоге
	ErrUnknownService = errors.New("book_appointment: unknown service")

	// ErrStylistNotQualified возвращается, когда стилист не может выполнить услугу
	// (нет квалификации, статус inactive или стилист не существует)
	ErrStylistNotQualified = errors.New("book_appointment: stylist is not qualified for service")

	// ErrSalonClosed возвращается при бронировании на выходной день салона
	ErrSalonClosed = errors.New("book_appointment: salon is closed on this date")

	// ErrSlotInPast возвращается при бронировании слота в прошлом
	ErrSlotInPast = errors.New("book_appointment: slot is in the past")

	// ErrSlotTaken возвращается, когда слот уже занят неотменённой записью
	ErrSlotTaken = errors.New("book_appointment: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrPersistence возвращается при ошибке хранилища
	// Единственная временная ошибка usecase - вызывающий может повторить запрос,
	// предварительно проверив ErrSlotTaken
	ErrPersistence = errors.New("book_appointment: persistence error")
)
