package get_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetDaySchedule(ctx context.Context, date time.Time, actor domain.Actor, status *string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
