package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken возвращается при нарушении уникальности (stylist, date, slot)
	// для неотменённых записей
	ErrSlotTaken = errors.New("appointment.repository: slot already taken")

	// ErrStatusConflict возвращается, когда условное обновление статуса не нашло
	// запись в ожидаемом статусе (конкурентное изменение)
	ErrStatusConflict = errors.New("appointment.repository: status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
