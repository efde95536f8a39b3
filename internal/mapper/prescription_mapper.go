package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"telehealth-be/internal/entity"
	"telehealth-be/internal/model"
)

type PrescriptionMapper struct{}

func NewPrescriptionMapper() *PrescriptionMapper {
	return &PrescriptionMapper{}
}

func (m *PrescriptionMapper) ToEntity(p *model.Prescription) *entity.Prescription {
	if p == nil {
		return nil
	}

	var medications []entity.Medication
	if len(p.Medications) > 0 {
		_ = json.Unmarshal(p.Medications, &medications)
	}

	return &entity.Prescription{
		Id:            p.Id,
		PatientId:     p.PatientId,
		DoctorId:      p.DoctorId,
		AppointmentId: p.AppointmentId,
		Medications:   medications,
		Notes:         p.Notes,
		ValidUntil:    p.ValidUntil,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (m *PrescriptionMapper) ToModel(p *entity.Prescription) (*model.Prescription, error) {
	if p == nil {
		return nil, nil
	}

	medications := p.Medications
	if medications == nil {
		medications = []entity.Medication{}
	}
	raw, err := json.Marshal(medications)
	if err != nil {
		return nil, err
	}

	return &model.Prescription{
		Id:            p.Id,
		PatientId:     p.PatientId,
		DoctorId:      p.DoctorId,
		AppointmentId: p.AppointmentId,
		Medications:   datatypes.JSON(raw),
		Notes:         p.Notes,
		ValidUntil:    p.ValidUntil,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}, nil
}

func (m *PrescriptionMapper) ToEntities(prescriptions []*model.Prescription) []*entity.Prescription {
	entities := make([]*entity.Prescription, len(prescriptions))
	for i, p := range prescriptions {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
