package model

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AppointmentId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	PatientId     uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderId       string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Amount        int64     `gorm:"not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	SnapToken     string    `gorm:"type:text"`
	RedirectURL   string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Payment) TableName() string {
	return "payments"
}
