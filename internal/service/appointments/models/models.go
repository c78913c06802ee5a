package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// AppointmentResponse ответ с данными записи
// Поля StylistName/ClientName денормализуются при чтении для отображения,
// в хранимую сущность они не входят
type AppointmentResponse struct {
	ID        int64 `json:"id"`
	ClientID  int64 `json:"clientId"`
	StylistID int64 `json:"stylistId"`
	ServiceID int64 `json:"serviceId"`

	AppointmentDate string `json:"appointmentDate"` // "2025-10-15"
	StartTime       string `json:"startTime"`       // "10:00"
	Status          string `json:"status"`

	// Снимок услуги на момент бронирования
	ServiceName            string  `json:"serviceName"`
	ServicePrice           float64 `json:"servicePrice"`
	ServiceDurationMinutes int     `json:"serviceDurationMinutes"`

	// Отображаемые поля, подтягиваются при чтении
	StylistName string `json:"stylistName,omitempty"`
	ClientName  string `json:"clientName,omitempty"`

	Notes *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// DisplayNames денормализованные имена для отображения
type DisplayNames struct {
	StylistName string
	ClientName  string
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment, names DisplayNames) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:                     a.ID,
		ClientID:               a.ClientID,
		StylistID:              a.StylistID,
		ServiceID:              a.ServiceID,
		AppointmentDate:        a.AppointmentDate.Format(domain.DateFormat),
		StartTime:              a.StartTime.String(),
		Status:                 string(a.Status),
		ServiceName:            a.ServiceName,
		ServicePrice:           a.ServicePrice,
		ServiceDurationMinutes: a.ServiceDurationMinutes,
		StylistName:            names.StylistName,
		ClientName:             names.ClientName,
		Notes:                  a.Notes,
		CreatedAt:              a.CreatedAt,
		UpdatedAt:              a.UpdatedAt,
	}
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
