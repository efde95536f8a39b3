package events

import (
	"time"

	"github.com/google/uuid"
)

// Event type codes published on the bus.
const (
	TypeUserRegistered           = "USER_REGISTERED"
	TypeUserLogin                = "USER_LOGIN"
	TypeAppointmentBooked        = "APPOINTMENT_BOOKED"
	TypeAppointmentStatusChanged = "APPOINTMENT_STATUS_CHANGED"
	TypeRecordShared             = "RECORD_SHARED"
	TypeTriageEmergency          = "TRIAGE_EMERGENCY"
	TypePaymentSettled           = "PAYMENT_SETTLED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_LOGIN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic Event implementation used across services.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// --- Typed constructors for the telehealth domain ---

func UserRegistered(userID uuid.UUID, email, role string) Event {
	return BaseEvent{
		Type: TypeUserRegistered,
		Data: map[string]interface{}{
			"user_id": userID.String(),
			"email":   email,
			"role":    role,
		},
		OccurredAt: time.Now(),
	}
}

func AppointmentBooked(appointmentID, patientID, doctorID uuid.UUID, date, timeSlot string) Event {
	return BaseEvent{
		Type: TypeAppointmentBooked,
		Data: map[string]interface{}{
			"appointment_id": appointmentID.String(),
			"patient_id":     patientID.String(),
			"doctor_id":      doctorID.String(),
			"date":           date,
			"time":           timeSlot,
		},
		OccurredAt: time.Now(),
	}
}

func AppointmentStatusChanged(appointmentID, patientID, doctorID uuid.UUID, oldStatus, newStatus string) Event {
	return BaseEvent{
		Type: TypeAppointmentStatusChanged,
		Data: map[string]interface{}{
			"appointment_id": appointmentID.String(),
			"patient_id":     patientID.String(),
			"doctor_id":      doctorID.String(),
			"old_status":     oldStatus,
			"new_status":     newStatus,
		},
		OccurredAt: time.Now(),
	}
}

func RecordShared(recordID, patientID, doctorID uuid.UUID, title string) Event {
	return BaseEvent{
		Type: TypeRecordShared,
		Data: map[string]interface{}{
			"record_id":  recordID.String(),
			"patient_id": patientID.String(),
			"doctor_id":  doctorID.String(),
			"title":      title,
		},
		OccurredAt: time.Now(),
	}
}

func PaymentSettled(paymentID, appointmentID, userID uuid.UUID, amount int64, status string) Event {
	return BaseEvent{
		Type: TypePaymentSettled,
		Data: map[string]interface{}{
			"payment_id":     paymentID.String(),
			"appointment_id": appointmentID.String(),
			"user_id":        userID.String(),
			"amount":         amount,
			"status":         status,
		},
		OccurredAt: time.Now(),
	}
}

func TriageEmergency(sessionID, userID uuid.UUID, suggestedSpecialist string) Event {
	return BaseEvent{
		Type: TypeTriageEmergency,
		Data: map[string]interface{}{
			"session_id":           sessionID.String(),
			"user_id":              userID.String(),
			"suggested_specialist": suggestedSpecialist,
		},
		OccurredAt: time.Now(),
	}
}
