package mapper

import (
	"telehealth-be/internal/entity"
	"telehealth-be/internal/model"
)

type MedicalRecordMapper struct{}

func NewMedicalRecordMapper() *MedicalRecordMapper {
	return &MedicalRecordMapper{}
}

func (m *MedicalRecordMapper) ToEntity(r *model.MedicalRecord) *entity.MedicalRecord {
	if r == nil {
		return nil
	}
	return &entity.MedicalRecord{
		Id:              r.Id,
		PatientId:       r.PatientId,
		DoctorId:        r.DoctorId,
		Type:            entity.RecordType(r.Type),
		Title:           r.Title,
		Summary:         r.Summary,
		Details:         r.Details,
		Status:          entity.RecordStatus(r.Status),
		SharedWithOwner: r.SharedWithOwner,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (m *MedicalRecordMapper) ToModel(r *entity.MedicalRecord) *model.MedicalRecord {
	if r == nil {
		return nil
	}
	return &model.MedicalRecord{
		Id:              r.Id,
		PatientId:       r.PatientId,
		DoctorId:        r.DoctorId,
		Type:            string(r.Type),
		Title:           r.Title,
		Summary:         r.Summary,
		Details:         r.Details,
		Status:          string(r.Status),
		SharedWithOwner: r.SharedWithOwner,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (m *MedicalRecordMapper) ToEntities(records []*model.MedicalRecord) []*entity.MedicalRecord {
	entities := make([]*entity.MedicalRecord, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
