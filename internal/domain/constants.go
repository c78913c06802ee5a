package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength = 500
)

// ValidStatuses список всех допустимых статусов записи
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}
