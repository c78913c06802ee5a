package get_eligible_stylists

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/integrations/catalog"
)

type CatalogIndex interface {
	StylistsForService(ctx context.Context, serviceID int64) ([]*catalog.Stylist, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
