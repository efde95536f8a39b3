package mapper

import (
	"telehealth-be/internal/entity"
	"telehealth-be/internal/model"
)

type PaymentMapper struct{}

func NewPaymentMapper() *PaymentMapper {
	return &PaymentMapper{}
}

func (m *PaymentMapper) ToEntity(p *model.Payment) *entity.Payment {
	if p == nil {
		return nil
	}
	return &entity.Payment{
		Id:            p.Id,
		AppointmentId: p.AppointmentId,
		PatientId:     p.PatientId,
		OrderId:       p.OrderId,
		Amount:        p.Amount,
		Status:        entity.PaymentStatus(p.Status),
		SnapToken:     p.SnapToken,
		RedirectURL:   p.RedirectURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (m *PaymentMapper) ToModel(p *entity.Payment) *model.Payment {
	if p == nil {
		return nil
	}
	return &model.Payment{
		Id:            p.Id,
		AppointmentId: p.AppointmentId,
		PatientId:     p.PatientId,
		OrderId:       p.OrderId,
		Amount:        p.Amount,
		Status:        string(p.Status),
		SnapToken:     p.SnapToken,
		RedirectURL:   p.RedirectURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
