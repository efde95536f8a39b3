package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByPatientID struct {
	PatientID uuid.UUID
}

func (s ByPatientID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("patient_id = ?", s.PatientID)
}

type ByDoctorID struct {
	DoctorID uuid.UUID
}

func (s ByDoctorID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("doctor_id = ?", s.DoctorID)
}

// BySlot matches one doctor's calendar cell.
type BySlot struct {
	DoctorID uuid.UUID
	Date     string
	TimeSlot string
}

func (s BySlot) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("doctor_id = ? AND date = ? AND time_slot = ?", s.DoctorID, s.Date, s.TimeSlot)
}

type ByStatuses struct {
	Statuses []string
}

func (s ByStatuses) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}
