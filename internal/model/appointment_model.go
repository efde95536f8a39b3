package model

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PatientId uuid.UUID `gorm:"type:uuid;not null;index"`
	DoctorId  uuid.UUID `gorm:"type:uuid;not null;index:idx_appointments_slot,priority:1"`
	Date      string    `gorm:"type:varchar(10);not null;index:idx_appointments_slot,priority:2"`
	TimeSlot  string    `gorm:"type:varchar(10);not null;index:idx_appointments_slot,priority:3"`
	Reason    string    `gorm:"type:text"`
	Status    string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Appointment) TableName() string {
	return "appointments"
}
