package unitofwork

import (
	"context"

	"telehealth-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	PatientProfileRepository() contract.PatientProfileRepository
	DoctorProfileRepository() contract.DoctorProfileRepository
	AppointmentRepository() contract.AppointmentRepository
	MedicalRecordRepository() contract.MedicalRecordRepository
	PrescriptionRepository() contract.PrescriptionRepository
	LabReportRepository() contract.LabReportRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	PaymentRepository() contract.PaymentRepository
}
