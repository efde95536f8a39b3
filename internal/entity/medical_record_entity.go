package entity

import (
	"time"

	"github.com/google/uuid"
)

type RecordType string
type RecordStatus string

const (
	RecordTypeConsultationNote RecordType = "CONSULTATION_NOTE"
	RecordTypeLabResult        RecordType = "LAB_RESULT"
	RecordTypeImaging          RecordType = "IMAGING"
	RecordTypeVaccination      RecordType = "VACCINATION"
	RecordTypeAllergy          RecordType = "ALLERGY"
	RecordTypeDischargeSummary RecordType = "DISCHARGE_SUMMARY"

	RecordStatusDraft       RecordStatus = "DRAFT"
	RecordStatusSubmitted   RecordStatus = "SUBMITTED"
	RecordStatusUnderReview RecordStatus = "UNDER_REVIEW"
	RecordStatusReviewed    RecordStatus = "REVIEWED"
	RecordStatusAmended     RecordStatus = "AMENDED"
	RecordStatusFinalized   RecordStatus = "FINALIZED"
	RecordStatusArchived    RecordStatus = "ARCHIVED"
)

func (t RecordType) IsValid() bool {
	switch t {
	case RecordTypeConsultationNote, RecordTypeLabResult, RecordTypeImaging,
		RecordTypeVaccination, RecordTypeAllergy, RecordTypeDischargeSummary:
		return true
	}
	return false
}

// Any member of the enum is accepted; there is no transition graph for
// record statuses.
func (s RecordStatus) IsValid() bool {
	switch s {
	case RecordStatusDraft, RecordStatusSubmitted, RecordStatusUnderReview,
		RecordStatusReviewed, RecordStatusAmended, RecordStatusFinalized,
		RecordStatusArchived:
		return true
	}
	return false
}

type MedicalRecord struct {
	Id              uuid.UUID
	PatientId       uuid.UUID
	DoctorId        uuid.UUID
	Type            RecordType
	Title           string
	Summary         string
	Details         string
	Status          RecordStatus
	SharedWithOwner bool // patient can read only when true
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
