package model

import (
	"time"

	"github.com/google/uuid"
)

type MedicalRecord struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PatientId       uuid.UUID `gorm:"type:uuid;not null;index"`
	DoctorId        uuid.UUID `gorm:"type:uuid;not null;index"`
	Type            string    `gorm:"type:varchar(30);not null"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Summary         string    `gorm:"type:text"`
	Details         string    `gorm:"type:text"`
	Status          string    `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	SharedWithOwner bool      `gorm:"default:false"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
