package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusIsTerminal(t *testing.T) {
	assert.False(t, AppointmentStatusPending.IsTerminal())
	assert.False(t, AppointmentStatusConfirmed.IsTerminal())
	assert.True(t, AppointmentStatusCompleted.IsTerminal())
	assert.True(t, AppointmentStatusCancelled.IsTerminal())
}

func TestAppointmentStatusCanTransition(t *testing.T) {
	tests := []struct {
		name   string
		from   AppointmentStatus
		to     AppointmentStatus
		actor  UserRole
		wantOk bool
	}{
		{"doctor confirms pending", AppointmentStatusPending, AppointmentStatusConfirmed, UserRoleDoctor, true},
		{"patient cannot confirm", AppointmentStatusPending, AppointmentStatusConfirmed, UserRolePatient, false},
		{"doctor completes confirmed", AppointmentStatusConfirmed, AppointmentStatusCompleted, UserRoleDoctor, true},
		{"patient cannot complete", AppointmentStatusConfirmed, AppointmentStatusCompleted, UserRolePatient, false},
		{"doctor cannot complete pending", AppointmentStatusPending, AppointmentStatusCompleted, UserRoleDoctor, false},
		{"patient cancels pending", AppointmentStatusPending, AppointmentStatusCancelled, UserRolePatient, true},
		{"doctor cancels confirmed", AppointmentStatusConfirmed, AppointmentStatusCancelled, UserRoleDoctor, true},
		{"completed is frozen", AppointmentStatusCompleted, AppointmentStatusCancelled, UserRoleDoctor, false},
		{"cancelled is frozen", AppointmentStatusCancelled, AppointmentStatusPending, UserRolePatient, false},
		{"cancelled cannot be confirmed", AppointmentStatusCancelled, AppointmentStatusConfirmed, UserRoleDoctor, false},
		{"no self transition", AppointmentStatusPending, AppointmentStatusPending, UserRoleDoctor, false},
		{"unknown target rejected", AppointmentStatusPending, AppointmentStatus("RESCHEDULED"), UserRoleDoctor, false},
		{"no demotion back to pending", AppointmentStatusConfirmed, AppointmentStatusPending, UserRoleDoctor, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOk, tt.from.CanTransition(tt.to, tt.actor))
		})
	}
}
