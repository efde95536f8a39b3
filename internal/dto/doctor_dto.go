package dto

import (
	"github.com/google/uuid"
)

type DoctorListItemResponse struct {
	UserId            uuid.UUID           `json:"user_id"`
	FullName          string              `json:"full_name"`
	Specialty         string              `json:"specialty"`
	Qualifications    string              `json:"qualifications"`
	YearsOfExperience int                 `json:"years_of_experience"`
	Bio               string              `json:"bio"`
	ConsultationFee   int64               `json:"consultation_fee"`
	Availability      map[string][]string `json:"availability"`
}
