package book_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/catalog"
	"github.com/m04kA/SMC-SalonService/internal/integrations/identity"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
}

// CatalogIndex интерфейс индекса каталога (услуги и квалификация стилистов)
type CatalogIndex interface {
	GetService(ctx context.Context, serviceID int64) (*catalog.Service, error)
	EligibleStylist(ctx context.Context, serviceID, stylistID int64) (*catalog.Stylist, error)
}

// AvailabilityChecker интерфейс проверки доступности слота
type AvailabilityChecker interface {
	IsSalonClosed(date time.Time) bool
	IsValidSlot(slot types.TimeString) bool
	IsSlotInPast(date time.Time, slot types.TimeString, now time.Time) bool
	IsSlotFree(ctx context.Context, stylistID int64, date time.Time, slot types.TimeString) (bool, error)
}

// IdentityClient интерфейс клиента для IdentityService
type IdentityClient interface {
	GetUser(ctx context.Context, userID int64) (*identity.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
