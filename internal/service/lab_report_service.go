package service

import (
	"context"
	"time"

	"telehealth-be/internal/dto"
	"telehealth-be/internal/entity"
	"telehealth-be/internal/pkg/serverutils"
	"telehealth-be/internal/repository/specification"
	"telehealth-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ILabReportService interface {
	Upload(ctx context.Context, patientId uuid.UUID, req *dto.UploadLabReportRequest) (*dto.LabReportSummaryResponse, error)
	ListForPatient(ctx context.Context, patientId uuid.UUID) ([]*dto.LabReportSummaryResponse, error)
	GetOne(ctx context.Context, actorId uuid.UUID, actorRole entity.UserRole, reportId uuid.UUID) (*dto.LabReportResponse, error)
	Delete(ctx context.Context, patientId uuid.UUID, reportId uuid.UUID) error
}

type labReportService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLabReportService(uowFactory unitofwork.RepositoryFactory) ILabReportService {
	return &labReportService{uowFactory: uowFactory}
}

func labReportToSummary(r *entity.LabReport) *dto.LabReportSummaryResponse {
	return &dto.LabReportSummaryResponse{
		Id:        r.Id,
		Name:      r.Name,
		MimeType:  r.MimeType,
		CreatedAt: r.CreatedAt,
	}
}

func (s *labReportService) Upload(ctx context.Context, patientId uuid.UUID, req *dto.UploadLabReportRequest) (*dto.LabReportSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	report := &entity.LabReport{
		Id:        uuid.New(),
		PatientId: patientId,
		Name:      req.Name,
		MimeType:  req.MimeType,
		FileData:  req.FileData,
		CreatedAt: time.Now(),
	}

	if err := uow.LabReportRepository().Create(ctx, report); err != nil {
		return nil, err
	}
	return labReportToSummary(report), nil
}

func (s *labReportService) ListForPatient(ctx context.Context, patientId uuid.UUID) ([]*dto.LabReportSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reports, err := uow.LabReportRepository().FindAll(ctx,
		specification.ByPatientID{PatientID: patientId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.LabReportSummaryResponse, len(reports))
	for i, r := range reports {
		responses[i] = labReportToSummary(r)
	}
	return responses, nil
}

func (s *labReportService) GetOne(ctx context.Context, actorId uuid.UUID, actorRole entity.UserRole, reportId uuid.UUID) (*dto.LabReportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	report, err := uow.LabReportRepository().FindOne(ctx, specification.ByID{ID: reportId})
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, serverutils.NewNotFoundError("lab report not found")
	}

	if report.PatientId != actorId {
		// Doctors may read reports of patients they have appointments with.
		if actorRole != entity.UserRoleDoctor {
			return nil, serverutils.NewNotFoundError("lab report not found")
		}
		linked, err := uow.AppointmentRepository().Count(ctx,
			specification.ByDoctorID{DoctorID: actorId},
			specification.ByPatientID{PatientID: report.PatientId},
		)
		if err != nil {
			return nil, err
		}
		if linked == 0 {
			return nil, serverutils.NewForbiddenError("no appointment with this patient")
		}
	}

	return &dto.LabReportResponse{
		Id:        report.Id,
		Name:      report.Name,
		MimeType:  report.MimeType,
		FileData:  report.FileData,
		CreatedAt: report.CreatedAt,
	}, nil
}

func (s *labReportService) Delete(ctx context.Context, patientId uuid.UUID, reportId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	report, err := uow.LabReportRepository().FindOne(ctx, specification.ByID{ID: reportId})
	if err != nil {
		return err
	}
	if report == nil || report.PatientId != patientId {
		return serverutils.NewNotFoundError("lab report not found")
	}
	return uow.LabReportRepository().Delete(ctx, report.Id)
}
