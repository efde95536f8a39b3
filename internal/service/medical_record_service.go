package service

import (
	"context"
	"time"

	"telehealth-be/internal/dto"
	"telehealth-be/internal/entity"
	"telehealth-be/internal/pkg/logger"
	"telehealth-be/internal/pkg/serverutils"
	"telehealth-be/internal/repository/specification"
	"telehealth-be/internal/repository/unitofwork"
	"telehealth-be/pkg/events"
	pktNats "telehealth-be/pkg/nats"

	"github.com/google/uuid"
)

type IMedicalRecordService interface {
	Create(ctx context.Context, doctorId uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	Update(ctx context.Context, doctorId uuid.UUID, recordId uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	Delete(ctx context.Context, doctorId uuid.UUID, recordId uuid.UUID) error
	Share(ctx context.Context, doctorId uuid.UUID, recordId uuid.UUID, shared bool) (*dto.MedicalRecordResponse, error)
	ListForPatient(ctx context.Context, patientId uuid.UUID) ([]*dto.MedicalRecordResponse, error)
	ListForDoctor(ctx context.Context, doctorId uuid.UUID, patientId *uuid.UUID) ([]*dto.MedicalRecordResponse, error)
	GetOne(ctx context.Context, actorId uuid.UUID, actorRole entity.UserRole, recordId uuid.UUID) (*dto.MedicalRecordResponse, error)
}

type medicalRecordService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewMedicalRecordService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, log logger.ILogger) IMedicalRecordService {
	return &medicalRecordService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func recordToResponse(r *entity.MedicalRecord) *dto.MedicalRecordResponse {
	return &dto.MedicalRecordResponse{
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

func recordsToResponses(records []*entity.MedicalRecord) []*dto.MedicalRecordResponse {
	responses := make([]*dto.MedicalRecordResponse, len(records))
	for i, r := range records {
		responses[i] = recordToResponse(r)
	}
	return responses
}

func (s *medicalRecordService) Create(ctx context.Context, doctorId uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	patient, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.PatientId})
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.Role != entity.UserRolePatient {
		return nil, serverutils.NewNotFoundError("patient not found")
	}

	status := entity.RecordStatus(req.Status)
	if req.Status == "" {
		status = entity.RecordStatusDraft
	}

	record := &entity.MedicalRecord{
		Id:        uuid.New(),
		PatientId: req.PatientId,
		DoctorId:  doctorId,
		Type:      entity.RecordType(req.Type),
		Title:     req.Title,
		Summary:   req.Summary,
		Details:   req.Details,
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uow.MedicalRecordRepository().Create(ctx, record); err != nil {
		return nil, err
	}
	return recordToResponse(record), nil
}

func (s *medicalRecordService) findOwnedRecord(ctx context.Context, uow unitofwork.UnitOfWork, doctorId, recordId uuid.UUID) (*entity.MedicalRecord, error) {
	record, err := uow.MedicalRecordRepository().FindOne(ctx, specification.ByID{ID: recordId})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, serverutils.NewNotFoundError("medical record not found")
	}
	if record.DoctorId != doctorId {
		return nil, serverutils.NewForbiddenError("this record belongs to another doctor")
	}
	return record, nil
}

func (s *medicalRecordService) Update(ctx context.Context, doctorId uuid.UUID, recordId uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := s.findOwnedRecord(ctx, uow, doctorId, recordId)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		record.Title = req.Title
	}
	if req.Summary != "" {
		record.Summary = req.Summary
	}
	if req.Details != "" {
		record.Details = req.Details
	}
	if req.Status != "" {
		record.Status = entity.RecordStatus(req.Status)
	}
	record.UpdatedAt = time.Now()

	if err := uow.MedicalRecordRepository().Update(ctx, record); err != nil {
		return nil, err
	}
	return recordToResponse(record), nil
}

func (s *medicalRecordService) Delete(ctx context.Context, doctorId uuid.UUID, recordId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := s.findOwnedRecord(ctx, uow, doctorId, recordId)
	if err != nil {
		return err
	}
	return uow.MedicalRecordRepository().Delete(ctx, record.Id)
}

func (s *medicalRecordService) Share(ctx context.Context, doctorId uuid.UUID, recordId uuid.UUID, shared bool) (*dto.MedicalRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := s.findOwnedRecord(ctx, uow, doctorId, recordId)
	if err != nil {
		return nil, err
	}

	record.SharedWithOwner = shared
	record.UpdatedAt = time.Now()

	if err := uow.MedicalRecordRepository().Update(ctx, record); err != nil {
		return nil, err
	}

	if shared && s.eventPublisher != nil {
		event := events.RecordShared(record.Id, record.PatientId, record.DoctorId, record.Title)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("record", "failed to publish share event", map[string]interface{}{"error": err.Error()})
		}
	}

	return recordToResponse(record), nil
}

func (s *medicalRecordService) ListForPatient(ctx context.Context, patientId uuid.UUID) ([]*dto.MedicalRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.MedicalRecordRepository().FindAll(ctx,
		specification.ByPatientID{PatientID: patientId},
		specification.SharedWithPatient{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return recordsToResponses(records), nil
}

func (s *medicalRecordService) ListForDoctor(ctx context.Context, doctorId uuid.UUID, patientId *uuid.UUID) ([]*dto.MedicalRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ByDoctorID{DoctorID: doctorId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if patientId != nil {
		specs = append(specs, specification.ByPatientID{PatientID: *patientId})
	}

	records, err := uow.MedicalRecordRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return recordsToResponses(records), nil
}

func (s *medicalRecordService) GetOne(ctx context.Context, actorId uuid.UUID, actorRole entity.UserRole, recordId uuid.UUID) (*dto.MedicalRecordResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.MedicalRecordRepository().FindOne(ctx, specification.ByID{ID: recordId})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, serverutils.NewNotFoundError("medical record not found")
	}

	switch actorRole {
	case entity.UserRoleDoctor:
		if record.DoctorId != actorId {
			return nil, serverutils.NewForbiddenError("this record belongs to another doctor")
		}
	default:
		if record.PatientId != actorId || !record.SharedWithOwner {
			return nil, serverutils.NewNotFoundError("medical record not found")
		}
	}

	return recordToResponse(record), nil
}
