package transition_appointment

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

type AppointmentService interface {
	Transition(ctx context.Context, id int64, actor domain.Actor, targetStatus string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
