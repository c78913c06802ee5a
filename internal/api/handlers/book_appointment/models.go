package book_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	bookAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/book_appointment"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	ServiceID       int64   `json:"serviceId"`
	StylistID       int64   `json:"stylistId"`
	AppointmentDate string  `json:"appointmentDate"` // "2025-10-15"
	StartTime       string  `json:"startTime"`       // "10:00"
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID                     int64   `json:"id"`
	ClientID               int64   `json:"clientId"`
	StylistID              int64   `json:"stylistId"`
	ServiceID              int64   `json:"serviceId"`
	AppointmentDate        string  `json:"appointmentDate"`
	StartTime              string  `json:"startTime"`
	Status                 string  `json:"status"`
	ServiceName            string  `json:"serviceName"`
	ServicePrice           float64 `json:"servicePrice"`
	ServiceDurationMinutes int     `json:"serviceDurationMinutes"`
	StylistName            string  `json:"stylistName"`
	Notes                  *string `json:"notes,omitempty"`
	CreatedAt              string  `json:"createdAt"`
	UpdatedAt              string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentRequest) ToUseCaseRequest(userID int64) (*bookAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &bookAppointment.Request{
		UserID:    userID,
		ServiceID: r.ServiceID,
		StylistID: r.StylistID,
		Date:      date,
		StartTime: startTime,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                     resp.ID,
		ClientID:               resp.ClientID,
		StylistID:              resp.StylistID,
		ServiceID:              resp.ServiceID,
		AppointmentDate:        resp.Date.Format(domain.DateFormat),
		StartTime:              resp.StartTime.String(),
		Status:                 resp.Status,
		ServiceName:            resp.ServiceName,
		ServicePrice:           resp.ServicePrice,
		ServiceDurationMinutes: resp.ServiceDurationMinutes,
		StylistName:            resp.StylistName,
		Notes:                  resp.Notes,
		CreatedAt:              resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              resp.UpdatedAt.Format(time.RFC3339),
	}
}
