package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/catalog"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetActiveByStylistAndDate(ctx context.Context, stylistID int64, date time.Time) ([]*domain.Appointment, error)
}

// CatalogIndex интерфейс индекса каталога
type CatalogIndex interface {
	EligibleStylist(ctx context.Context, serviceID, stylistID int64) (*catalog.Stylist, error)
}

// ScheduleProvider интерфейс источника расписания салона
type ScheduleProvider interface {
	Schedule() domain.SalonSchedule
	IsSalonClosed(date time.Time) bool
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
