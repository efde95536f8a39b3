package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMedicalRecordRequest struct {
	PatientId uuid.UUID `json:"patient_id" validate:"required"`
	Type      string    `json:"type" validate:"required,oneof=CONSULTATION_NOTE LAB_RESULT IMAGING VACCINATION ALLERGY DISCHARGE_SUMMARY"`
	Title     string    `json:"title" validate:"required,max=255"`
	Summary   string    `json:"summary" validate:"max=4000"`
	Details   string    `json:"details" validate:"max=20000"`
	Status    string    `json:"status" validate:"omitempty,oneof=DRAFT SUBMITTED UNDER_REVIEW REVIEWED AMENDED FINALIZED ARCHIVED"`
}

type UpdateMedicalRecordRequest struct {
	Title   string `json:"title" validate:"omitempty,max=255"`
	Summary string `json:"summary" validate:"max=4000"`
	Details string `json:"details" validate:"max=20000"`
	Status  string `json:"status" validate:"omitempty,oneof=DRAFT SUBMITTED UNDER_REVIEW REVIEWED AMENDED FINALIZED ARCHIVED"`
}

type ShareMedicalRecordRequest struct {
	Shared bool `json:"shared"`
}

type MedicalRecordResponse struct {
	Id              uuid.UUID `json:"id"`
	PatientId       uuid.UUID `json:"patient_id"`
	DoctorId        uuid.UUID `json:"doctor_id"`
	Type            string    `json:"type"`
	Title           string    `json:"title"`
	Summary         string    `json:"summary"`
	Details         string    `json:"details"`
	Status          string    `json:"status"`
	SharedWithOwner bool      `json:"shared_with_owner"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
