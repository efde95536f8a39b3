package dto

import (
	"time"

	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	DoctorId uuid.UUID `json:"doctor_id" validate:"required"`
	Date     string    `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot string    `json:"time_slot" validate:"required"`
	Reason   string    `json:"reason" validate:"max=2000"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
}

// AppointmentMailMessage is the internal queue payload consumed by the
// email worker.
type AppointmentMailMessage struct {
	ToEmail    string `json:"to_email"`
	DoctorName string `json:"doctor_name"`
	Date       string `json:"date"`
	TimeSlot   string `json:"time_slot"`
	Status     string `json:"status"`
	Booked     bool   `json:"booked"` // true for the initial booking email
}

type AppointmentResponse struct {
	Id         uuid.UUID `json:"id"`
	PatientId  uuid.UUID `json:"patient_id"`
	DoctorId   uuid.UUID `json:"doctor_id"`
	DoctorName string    `json:"doctor_name,omitempty"`
	Date       string    `json:"date"`
	TimeSlot   string    `json:"time_slot"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
