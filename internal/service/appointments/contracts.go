package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/catalog"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByClientID(ctx context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	GetByStylistID(ctx context.Context, stylistID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	GetByDate(ctx context.Context, date time.Time, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	UpdateStatusFrom(ctx context.Context, id int64, from, to domain.AppointmentStatus) error
	Delete(ctx context.Context, id int64) error
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Client, error)
}

// CatalogClient интерфейс клиента для CatalogService
type CatalogClient interface {
	GetStylist(ctx context.Context, stylistID int64) (*catalog.Stylist, error)
	GetStylistByUserID(ctx context.Context, userID int64) (*catalog.Stylist, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
