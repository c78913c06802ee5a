package catalogindex

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/integrations/catalog"
)

// CatalogClient интерфейс клиента для CatalogService
type CatalogClient interface {
	GetService(ctx context.Context, serviceID int64) (*catalog.Service, error)
	GetStylist(ctx context.Context, stylistID int64) (*catalog.Stylist, error)
	ListStylists(ctx context.Context) ([]*catalog.Stylist, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
