package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Prescription struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PatientId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	DoctorId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	AppointmentId *uuid.UUID     `gorm:"type:uuid;index"`
	Medications   datatypes.JSON `gorm:"type:jsonb;not null"`
	Notes         string         `gorm:"type:text"`
	ValidUntil    *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
