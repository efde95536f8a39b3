package entity

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "PENDING"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// CanTransition reports whether actorRole may move an appointment from s to
// target. Terminal states never transition. Either party may cancel; only
// the doctor confirms or completes.
func (s AppointmentStatus) CanTransition(target AppointmentStatus, actorRole UserRole) bool {
	if s.IsTerminal() || !target.IsValid() || target == s {
		return false
	}
	switch target {
	case AppointmentStatusCancelled:
		return true
	case AppointmentStatusConfirmed:
		return actorRole == UserRoleDoctor && s == AppointmentStatusPending
	case AppointmentStatusCompleted:
		return actorRole == UserRoleDoctor && s == AppointmentStatusConfirmed
	}
	return false
}

type Appointment struct {
	Id        uuid.UUID
	PatientId uuid.UUID
	DoctorId  uuid.UUID
	Date      string // "2006-01-02"
	TimeSlot  string // "09:00 AM"
	Reason    string
	Status    AppointmentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
