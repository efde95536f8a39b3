package mapper

import (
	"telehealth-be/internal/entity"
	"telehealth-be/internal/model"
)

type LabReportMapper struct{}

func NewLabReportMapper() *LabReportMapper {
	return &LabReportMapper{}
}

func (m *LabReportMapper) ToEntity(r *model.LabReport) *entity.LabReport {
	if r == nil {
		return nil
	}
	return &entity.LabReport{
		Id:        r.Id,
		PatientId: r.PatientId,
		Name:      r.Name,
		MimeType:  r.MimeType,
		FileData:  r.FileData,
		CreatedAt: r.CreatedAt,
	}
}

func (m *LabReportMapper) ToModel(r *entity.LabReport) *model.LabReport {
	if r == nil {
		return nil
	}
	return &model.LabReport{
		Id:        r.Id,
		PatientId: r.PatientId,
		Name:      r.Name,
		MimeType:  r.MimeType,
		FileData:  r.FileData,
		CreatedAt: r.CreatedAt,
	}
}

func (m *LabReportMapper) ToEntities(reports []*model.LabReport) []*entity.LabReport {
	entities := make([]*entity.LabReport, len(reports))
	for i, r := range reports {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
