package dto

import (
	"time"
)

type UpdatePatientProfileRequest struct {
	DateOfBirth       string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender            string `json:"gender" validate:"omitempty,oneof=male female other"`
	BloodGroup        string `json:"blood_group" validate:"omitempty,max=10"`
	Allergies         string `json:"allergies" validate:"max=2000"`
	ChronicConditions string `json:"chronic_conditions" validate:"max=2000"`
	EmergencyContact  string `json:"emergency_contact" validate:"max=255"`
	Phone             string `json:"phone" validate:"omitempty,max=30"`
	Address           string `json:"address" validate:"max=1000"`
}

type PatientProfileResponse struct {
	DateOfBirth       *time.Time `json:"date_of_birth"`
	Gender            string     `json:"gender"`
	BloodGroup        string     `json:"blood_group"`
	Allergies         string     `json:"allergies"`
	ChronicConditions string     `json:"chronic_conditions"`
	EmergencyContact  string     `json:"emergency_contact"`
	Phone             string     `json:"phone"`
	Address           string     `json:"address"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type UpdateDoctorProfileRequest struct {
	Specialty         string              `json:"specialty" validate:"required,max=100"`
	Qualifications    string              `json:"qualifications" validate:"max=2000"`
	YearsOfExperience int                 `json:"years_of_experience" validate:"gte=0,lte=80"`
	Bio               string              `json:"bio" validate:"max=4000"`
	ConsultationFee   int64               `json:"consultation_fee" validate:"gte=0"`
	Availability      map[string][]string `json:"availability"`
}

type DoctorProfileResponse struct {
	Specialty         string              `json:"specialty"`
	Qualifications    string              `json:"qualifications"`
	YearsOfExperience int                 `json:"years_of_experience"`
	Bio               string              `json:"bio"`
	ConsultationFee   int64               `json:"consultation_fee"`
	Availability      map[string][]string `json:"availability"`
	Verified          bool                `json:"verified"`
	UpdatedAt         time.Time           `json:"updated_at"`
}
