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

type IPrescriptionService interface {
	Create(ctx context.Context, doctorId uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	Update(ctx context.Context, doctorId uuid.UUID, prescriptionId uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	ListMine(ctx context.Context, userId uuid.UUID, role entity.UserRole) ([]*dto.PrescriptionResponse, error)
	GetOne(ctx context.Context, actorId uuid.UUID, prescriptionId uuid.UUID) (*dto.PrescriptionResponse, error)
}

type prescriptionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPrescriptionService(uowFactory unitofwork.RepositoryFactory) IPrescriptionService {
	return &prescriptionService{uowFactory: uowFactory}
}

func medicationsFromDTO(meds []dto.MedicationDTO) []entity.Medication {
	out := make([]entity.Medication, len(meds))
	for i, m := range meds {
		out[i] = entity.Medication{
			Name:         m.Name,
			Dosage:       m.Dosage,
			Frequency:    m.Frequency,
			Duration:     m.Duration,
			Instructions: m.Instructions,
		}
	}
	return out
}

func medicationsToDTO(meds []entity.Medication) []dto.MedicationDTO {
	out := make([]dto.MedicationDTO, len(meds))
	for i, m := range meds {
		out[i] = dto.MedicationDTO{
			Name:         m.Name,
			Dosage:       m.Dosage,
			Frequency:    m.Frequency,
			Duration:     m.Duration,
			Instructions: m.Instructions,
		}
	}
	return out
}

func prescriptionToResponse(p *entity.Prescription) *dto.PrescriptionResponse {
	return &dto.PrescriptionResponse{
		Id:            p.Id,
		PatientId:     p.PatientId,
		DoctorId:      p.DoctorId,
		AppointmentId: p.AppointmentId,
		Medications:   medicationsToDTO(p.Medications),
		Notes:         p.Notes,
		ValidUntil:    p.ValidUntil,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func parseValidUntil(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, serverutils.NewBadRequestError("invalid valid_until")
	}
	return &parsed, nil
}

func (s *prescriptionService) Create(ctx context.Context, doctorId uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	patient, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.PatientId})
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.Role != entity.UserRolePatient {
		return nil, serverutils.NewNotFoundError("patient not found")
	}

	if req.AppointmentId != nil {
		appointment, err := uow.AppointmentRepository().FindOne(ctx, specification.ByID{ID: *req.AppointmentId})
		if err != nil {
			return nil, err
		}
		if appointment == nil {
			return nil, serverutils.NewNotFoundError("appointment not found")
		}
		if appointment.DoctorId != doctorId || appointment.PatientId != req.PatientId {
			return nil, serverutils.NewForbiddenError("appointment does not match this prescription")
		}
	}

	validUntil, err := parseValidUntil(req.ValidUntil)
	if err != nil {
		return nil, err
	}

	prescription := &entity.Prescription{
		Id:            uuid.New(),
		PatientId:     req.PatientId,
		DoctorId:      doctorId,
		AppointmentId: req.AppointmentId,
		Medications:   medicationsFromDTO(req.Medications),
		Notes:         req.Notes,
		ValidUntil:    validUntil,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := uow.PrescriptionRepository().Create(ctx, prescription); err != nil {
		return nil, err
	}
	return prescriptionToResponse(prescription), nil
}

func (s *prescriptionService) Update(ctx context.Context, doctorId uuid.UUID, prescriptionId uuid.UUID, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prescription, err := uow.PrescriptionRepository().FindOne(ctx, specification.ByID{ID: prescriptionId})
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, serverutils.NewNotFoundError("prescription not found")
	}
	if prescription.DoctorId != doctorId {
		return nil, serverutils.NewForbiddenError("this prescription belongs to another doctor")
	}

	if len(req.Medications) > 0 {
		prescription.Medications = medicationsFromDTO(req.Medications)
	}
	if req.Notes != "" {
		prescription.Notes = req.Notes
	}
	if req.ValidUntil != "" {
		validUntil, err := parseValidUntil(req.ValidUntil)
		if err != nil {
			return nil, err
		}
		prescription.ValidUntil = validUntil
	}
	prescription.UpdatedAt = time.Now()

	if err := uow.PrescriptionRepository().Update(ctx, prescription); err != nil {
		return nil, err
	}
	return prescriptionToResponse(prescription), nil
}

func (s *prescriptionService) ListMine(ctx context.Context, userId uuid.UUID, role entity.UserRole) ([]*dto.PrescriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var partySpec specification.Specification = specification.ByPatientID{PatientID: userId}
	if role == entity.UserRoleDoctor {
		partySpec = specification.ByDoctorID{DoctorID: userId}
	}

	prescriptions, err := uow.PrescriptionRepository().FindAll(ctx,
		partySpec,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.PrescriptionResponse, len(prescriptions))
	for i, p := range prescriptions {
		responses[i] = prescriptionToResponse(p)
	}
	return responses, nil
}

func (s *prescriptionService) GetOne(ctx context.Context, actorId uuid.UUID, prescriptionId uuid.UUID) (*dto.PrescriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prescription, err := uow.PrescriptionRepository().FindOne(ctx, specification.ByID{ID: prescriptionId})
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, serverutils.NewNotFoundError("prescription not found")
	}
	if actorId != prescription.PatientId && actorId != prescription.DoctorId {
		return nil, serverutils.NewForbiddenError("you are not part of this prescription")
	}

	return prescriptionToResponse(prescription), nil
}
