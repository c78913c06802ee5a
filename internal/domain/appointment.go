package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// transitions is the lifecycle state machine shared by clients and stylists.
// Administrators bypass the table and may set any status from any non-terminal state.
var transitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
	// cancelled and completed are terminal
}

// Appointment represents a salon appointment in the system
type Appointment struct {
	ID        int64
	ClientID  int64
	StylistID int64
	ServiceID int64

	AppointmentDate time.Time
	StartTime       types.TimeString
	Status          AppointmentStatus

	// Service data snapshotted at booking time so that later catalog
	// edits do not rewrite appointment history
	ServiceName            string
	ServicePrice           float64
	ServiceDurationMinutes int

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if no further transition is permitted from the status
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// IsValid returns true if the status is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the standard state machine allows
// moving from s to target
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// OccupiesSlot returns true if the appointment blocks its (stylist, date, slot).
// A cancelled appointment frees the slot; every other status occupies it.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status != StatusCancelled
}

// BelongsToClient returns true if the appointment was booked by the given client
func (a *Appointment) BelongsToClient(clientID int64) bool {
	return a.ClientID == clientID
}

// AssignedToStylist returns true if the appointment is assigned to the given stylist
func (a *Appointment) AssignedToStylist(stylistID int64) bool {
	return a.StylistID == stylistID
}
