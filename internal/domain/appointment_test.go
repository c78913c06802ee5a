package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"pending to pending", StatusPending, StatusPending, false},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"cancelled to cancelled", StatusCancelled, StatusCancelled, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointmentStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
}

func TestAppointmentStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusConfirmed.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.False(t, AppointmentStatus("archived").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
}

func TestAppointment_OccupiesSlot(t *testing.T) {
	for _, status := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted} {
		appt := &Appointment{Status: status}
		assert.True(t, appt.OccupiesSlot(), "status %s must occupy its slot", status)
	}

	cancelled := &Appointment{Status: StatusCancelled}
	assert.False(t, cancelled.OccupiesSlot(), "cancelled appointment must free its slot")
}

func TestAppointment_Ownership(t *testing.T) {
	appt := &Appointment{ClientID: 7, StylistID: 3}

	assert.True(t, appt.BelongsToClient(7))
	assert.False(t, appt.BelongsToClient(8))
	assert.True(t, appt.AssignedToStylist(3))
	assert.False(t, appt.AssignedToStylist(4))
}
