package entity

import (
	"time"

	"github.com/google/uuid"
)

type LabReport struct {
	Id        uuid.UUID
	PatientId uuid.UUID
	Name      string
	MimeType  string
	FileData  string // base64 payload, stored inline
	CreatedAt time.Time
}
