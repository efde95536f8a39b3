package mapper

import (
	"telehealth-be/internal/entity"
	"telehealth-be/internal/model"
)

type AppointmentMapper struct{}

func NewAppointmentMapper() *AppointmentMapper {
	return &AppointmentMapper{}
}

func (m *AppointmentMapper) ToEntity(a *model.Appointment) *entity.Appointment {
	if a == nil {
		return nil
	}
	return &entity.Appointment{
		Id:        a.Id,
		PatientId: a.PatientId,
		DoctorId:  a.DoctorId,
		Date:      a.Date,
		TimeSlot:  a.TimeSlot,
		Reason:    a.Reason,
		Status:    entity.AppointmentStatus(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (m *AppointmentMapper) ToModel(a *entity.Appointment) *model.Appointment {
	if a == nil {
		return nil
	}
	return &model.Appointment{
		Id:        a.Id,
		PatientId: a.PatientId,
		DoctorId:  a.DoctorId,
		Date:      a.Date,
		TimeSlot:  a.TimeSlot,
		Reason:    a.Reason,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (m *AppointmentMapper) ToEntities(appointments []*model.Appointment) []*entity.Appointment {
	entities := make([]*entity.Appointment, len(appointments))
	for i, a := range appointments {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
