package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"telehealth-be/internal/entity"
	"telehealth-be/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) PatientToEntity(p *model.PatientProfile) *entity.PatientProfile {
	if p == nil {
		return nil
	}
	return &entity.PatientProfile{
		Id:                p.Id,
		UserId:            p.UserId,
		DateOfBirth:       p.DateOfBirth,
		Gender:            p.Gender,
		BloodGroup:        p.BloodGroup,
		Allergies:         p.Allergies,
		ChronicConditions: p.ChronicConditions,
		EmergencyContact:  p.EmergencyContact,
		Phone:             p.Phone,
		Address:           p.Address,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (m *ProfileMapper) PatientToModel(p *entity.PatientProfile) *model.PatientProfile {
	if p == nil {
		return nil
	}
	return &model.PatientProfile{
		Id:                p.Id,
		UserId:            p.UserId,
		DateOfBirth:       p.DateOfBirth,
		Gender:            p.Gender,
		BloodGroup:        p.BloodGroup,
		Allergies:         p.Allergies,
		ChronicConditions: p.ChronicConditions,
		EmergencyContact:  p.EmergencyContact,
		Phone:             p.Phone,
		Address:           p.Address,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (m *ProfileMapper) DoctorToEntity(d *model.DoctorProfile) *entity.DoctorProfile {
	if d == nil {
		return nil
	}

	availability := map[string][]string{}
	if len(d.Availability) > 0 {
		// Malformed rows degrade to empty availability rather than failing reads
		_ = json.Unmarshal(d.Availability, &availability)
	}

	return &entity.DoctorProfile{
		Id:                d.Id,
		UserId:            d.UserId,
		Specialty:         d.Specialty,
		Qualifications:    d.Qualifications,
		YearsOfExperience: d.YearsOfExperience,
		Bio:               d.Bio,
		ConsultationFee:   d.ConsultationFee,
		Availability:      availability,
		Verified:          d.Verified,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func (m *ProfileMapper) DoctorToModel(d *entity.DoctorProfile) (*model.DoctorProfile, error) {
	if d == nil {
		return nil, nil
	}

	availability := d.Availability
	if availability == nil {
		availability = map[string][]string{}
	}
	raw, err := json.Marshal(availability)
	if err != nil {
		return nil, err
	}

	return &model.DoctorProfile{
		Id:                d.Id,
		UserId:            d.UserId,
		Specialty:         d.Specialty,
		Qualifications:    d.Qualifications,
		YearsOfExperience: d.YearsOfExperience,
		Bio:               d.Bio,
		ConsultationFee:   d.ConsultationFee,
		Availability:      datatypes.JSON(raw),
		Verified:          d.Verified,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}, nil
}
