package entity

import (
	"time"

	"github.com/google/uuid"
)

type PatientProfile struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	DateOfBirth       *time.Time
	Gender            string
	BloodGroup        string
	Allergies         string
	ChronicConditions string
	EmergencyContact  string
	Phone             string
	Address           string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Availability maps weekday name ("monday") to display slots ("09:00 AM").
type DoctorProfile struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	Specialty         string
	Qualifications    string
	YearsOfExperience int
	Bio               string
	ConsultationFee   int64
	Availability      map[string][]string
	Verified          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DoctorListing is the discovery read model: the doctor's account joined
// with their profile.
type DoctorListing struct {
	UserId            uuid.UUID
	FullName          string
	Specialty         string
	Qualifications    string
	YearsOfExperience int
	Bio               string
	ConsultationFee   int64
	Availability      map[string][]string
}
