package get_my_appointments

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

type AppointmentService interface {
	ListMine(ctx context.Context, actor domain.Actor, status *string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
