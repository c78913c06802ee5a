package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetActiveByStylistAndDate(ctx context.Context, stylistID int64, date time.Time) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
