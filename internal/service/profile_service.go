package service

import (
	"context"
	"time"

	"telehealth-be/internal/dto"
	"telehealth-be/internal/entity"
	"telehealth-be/internal/pkg/serverutils"
	"telehealth-be/internal/repository/unitofwork"
	"telehealth-be/pkg/triage"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

type IProfileService interface {
	GetPatientProfile(ctx context.Context, userId uuid.UUID) (*dto.PatientProfileResponse, error)
	UpdatePatientProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientProfileResponse, error)
	GetDoctorProfile(ctx context.Context, userId uuid.UUID) (*dto.DoctorProfileResponse, error)
	UpdateDoctorProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error)
}

type profileService struct {
	uowFactory     unitofwork.RepositoryFactory
	directoryCache *gocache.Cache // shared with the doctor directory, flushed on updates
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory, directoryCache *gocache.Cache) IProfileService {
	return &profileService{
		uowFactory:     uowFactory,
		directoryCache: directoryCache,
	}
}

func patientProfileToResponse(p *entity.PatientProfile) *dto.PatientProfileResponse {
	return &dto.PatientProfileResponse{
		DateOfBirth:       p.DateOfBirth,
		Gender:            p.Gender,
		BloodGroup:        p.BloodGroup,
		Allergies:         p.Allergies,
		ChronicConditions: p.ChronicConditions,
		EmergencyContact:  p.EmergencyContact,
		Phone:             p.Phone,
		Address:           p.Address,
		UpdatedAt:         p.UpdatedAt,
	}
}

func doctorProfileToResponse(p *entity.DoctorProfile) *dto.DoctorProfileResponse {
	return &dto.DoctorProfileResponse{
		Specialty:         p.Specialty,
		Qualifications:    p.Qualifications,
		YearsOfExperience: p.YearsOfExperience,
		Bio:               p.Bio,
		ConsultationFee:   p.ConsultationFee,
		Availability:      p.Availability,
		Verified:          p.Verified,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (s *profileService) GetPatientProfile(ctx context.Context, userId uuid.UUID) (*dto.PatientProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.PatientProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, serverutils.NewNotFoundError("patient profile not set up yet")
	}
	return patientProfileToResponse(profile), nil
}

func (s *profileService) UpdatePatientProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var dateOfBirth *time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, serverutils.NewBadRequestError("invalid date_of_birth")
		}
		dateOfBirth = &parsed
	}

	profile := &entity.PatientProfile{
		Id:                uuid.New(),
		UserId:            userId,
		DateOfBirth:       dateOfBirth,
		Gender:            req.Gender,
		BloodGroup:        req.BloodGroup,
		Allergies:         req.Allergies,
		ChronicConditions: req.ChronicConditions,
		EmergencyContact:  req.EmergencyContact,
		Phone:             req.Phone,
		Address:           req.Address,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := uow.PatientProfileRepository().Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return patientProfileToResponse(profile), nil
}

func (s *profileService) GetDoctorProfile(ctx context.Context, userId uuid.UUID) (*dto.DoctorProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.DoctorProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, serverutils.NewNotFoundError("doctor profile not set up yet")
	}
	return doctorProfileToResponse(profile), nil
}

func (s *profileService) UpdateDoctorProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error) {
	if !triage.IsKnownSpecialist(req.Specialty) {
		return nil, serverutils.NewBadRequestError("unknown specialty")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.DoctorProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	profile := &entity.DoctorProfile{
		Id:                uuid.New(),
		UserId:            userId,
		Specialty:         req.Specialty,
		Qualifications:    req.Qualifications,
		YearsOfExperience: req.YearsOfExperience,
		Bio:               req.Bio,
		ConsultationFee:   req.ConsultationFee,
		Availability:      req.Availability,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	if existing != nil {
		profile.Id = existing.Id
		profile.Verified = existing.Verified
		profile.CreatedAt = existing.CreatedAt
	}

	if err := uow.DoctorProfileRepository().Upsert(ctx, profile); err != nil {
		return nil, err
	}

	// Stale listings must not outlive a profile edit
	if s.directoryCache != nil {
		s.directoryCache.Flush()
	}

	return doctorProfileToResponse(profile), nil
}
