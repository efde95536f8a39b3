package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PatientProfile struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	DateOfBirth       *time.Time
	Gender            string    `gorm:"type:varchar(20)"`
	BloodGroup        string    `gorm:"type:varchar(10)"`
	Allergies         string    `gorm:"type:text"`
	ChronicConditions string    `gorm:"type:text"`
	EmergencyContact  string    `gorm:"type:varchar(255)"`
	Phone             string    `gorm:"type:varchar(30)"`
	Address           string    `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

type DoctorProfile struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Specialty         string         `gorm:"type:varchar(100);not null;index"`
	Qualifications    string         `gorm:"type:text"`
	YearsOfExperience int            `gorm:"default:0"`
	Bio               string         `gorm:"type:text"`
	ConsultationFee   int64          `gorm:"default:0"`
	Availability      datatypes.JSON `gorm:"type:jsonb"`
	Verified          bool           `gorm:"default:false"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
