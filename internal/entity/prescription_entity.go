package entity

import (
	"time"

	"github.com/google/uuid"
)

type Medication struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}

type Prescription struct {
	Id            uuid.UUID
	PatientId     uuid.UUID
	DoctorId      uuid.UUID
	AppointmentId *uuid.UUID
	Medications   []Medication
	Notes         string
	ValidUntil    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
