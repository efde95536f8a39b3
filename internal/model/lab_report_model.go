package model

import (
	"time"

	"github.com/google/uuid"
)

type LabReport struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PatientId uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	MimeType  string    `gorm:"type:varchar(100);not null"`
	FileData  string    `gorm:"type:text;not null"` // base64 payload
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (LabReport) TableName() string {
	return "lab_reports"
}
