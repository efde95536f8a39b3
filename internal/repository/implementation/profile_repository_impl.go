package implementation

import (
	"context"
	"encoding/json"
	"errors"

	"telehealth-be/internal/entity"
	"telehealth-be/internal/mapper"
	"telehealth-be/internal/model"
	"telehealth-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PatientProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewPatientProfileRepository(db *gorm.DB) contract.PatientProfileRepository {
	return &PatientProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *PatientProfileRepositoryImpl) Upsert(ctx context.Context, profile *entity.PatientProfile) error {
	m := r.mapper.PatientToModel(profile)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"date_of_birth", "gender", "blood_group", "allergies",
			"chronic_conditions", "emergency_contact", "phone", "address", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*profile = *r.mapper.PatientToEntity(m)
	return nil
}

func (r *PatientProfileRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.PatientProfile, error) {
	var m model.PatientProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PatientToEntity(&m), nil
}

type DoctorProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewDoctorProfileRepository(db *gorm.DB) contract.DoctorProfileRepository {
	return &DoctorProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *DoctorProfileRepositoryImpl) Upsert(ctx context.Context, profile *entity.DoctorProfile) error {
	m, err := r.mapper.DoctorToModel(profile)
	if err != nil {
		return err
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"specialty", "qualifications", "years_of_experience", "bio",
			"consultation_fee", "availability", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*profile = *r.mapper.DoctorToEntity(m)
	return nil
}

func (r *DoctorProfileRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.DoctorProfile, error) {
	var m model.DoctorProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DoctorToEntity(&m), nil
}

type doctorListingRow struct {
	UserId            uuid.UUID
	FullName          string
	Specialty         string
	Qualifications    string
	YearsOfExperience int
	Bio               string
	ConsultationFee   int64
	Availability      []byte
}

func (r *DoctorProfileRepositoryImpl) FindListings(ctx context.Context, specialty, nameQuery string) ([]*entity.DoctorListing, error) {
	query := r.db.WithContext(ctx).
		Table("doctor_profiles").
		Select(`doctor_profiles.user_id, users.full_name, doctor_profiles.specialty,
			doctor_profiles.qualifications, doctor_profiles.years_of_experience,
			doctor_profiles.bio, doctor_profiles.consultation_fee, doctor_profiles.availability`).
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Where("doctor_profiles.verified = ?", true).
		Where("users.status = ?", string(entity.UserStatusActive)).
		Order("users.full_name ASC")

	if specialty != "" {
		query = query.Where("doctor_profiles.specialty = ?", specialty)
	}
	if nameQuery != "" {
		query = query.Where("users.full_name ILIKE ?", "%"+nameQuery+"%")
	}

	var rows []doctorListingRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	listings := make([]*entity.DoctorListing, len(rows))
	for i, row := range rows {
		availability := map[string][]string{}
		if len(row.Availability) > 0 {
			_ = json.Unmarshal(row.Availability, &availability)
		}
		listings[i] = &entity.DoctorListing{
			UserId:            row.UserId,
			FullName:          row.FullName,
			Specialty:         row.Specialty,
			Qualifications:    row.Qualifications,
			YearsOfExperience: row.YearsOfExperience,
			Bio:               row.Bio,
			ConsultationFee:   row.ConsultationFee,
			Availability:      availability,
		}
	}
	return listings, nil
}
