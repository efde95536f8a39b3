package dto

import (
	"time"

	"github.com/google/uuid"
)

type UploadLabReportRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	MimeType string `json:"mime_type" validate:"required,max=100"`
	FileData string `json:"file_data" validate:"required,base64"`
}

type LabReportSummaryResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	MimeType  string    `json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
}

type LabReportResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	MimeType  string    `json:"mime_type"`
	FileData  string    `json:"file_data"`
	CreatedAt time.Time `json:"created_at"`
}
