package dto

import (
	"time"

	"github.com/google/uuid"
)

type MedicationDTO struct {
	Name         string `json:"name" validate:"required,max=255"`
	Dosage       string `json:"dosage" validate:"required,max=100"`
	Frequency    string `json:"frequency" validate:"required,max=100"`
	Duration     string `json:"duration" validate:"max=100"`
	Instructions string `json:"instructions" validate:"max=1000"`
}

type CreatePrescriptionRequest struct {
	PatientId     uuid.UUID       `json:"patient_id" validate:"required"`
	AppointmentId *uuid.UUID      `json:"appointment_id"`
	Medications   []MedicationDTO `json:"medications" validate:"required,min=1,dive"`
	Notes         string          `json:"notes" validate:"max=4000"`
	ValidUntil    string          `json:"valid_until" validate:"omitempty,datetime=2006-01-02"`
}

type UpdatePrescriptionRequest struct {
	Medications []MedicationDTO `json:"medications" validate:"omitempty,min=1,dive"`
	Notes       string          `json:"notes" validate:"max=4000"`
	ValidUntil  string          `json:"valid_until" validate:"omitempty,datetime=2006-01-02"`
}

type PrescriptionResponse struct {
	Id            uuid.UUID       `json:"id"`
	PatientId     uuid.UUID       `json:"patient_id"`
	DoctorId      uuid.UUID       `json:"doctor_id"`
	AppointmentId *uuid.UUID      `json:"appointment_id,omitempty"`
	Medications   []MedicationDTO `json:"medications"`
	Notes         string          `json:"notes"`
	ValidUntil    *time.Time      `json:"valid_until,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
