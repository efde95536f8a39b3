package contract

import (
	"context"

	"telehealth-be/internal/entity"

	"github.com/google/uuid"
)

type PatientProfileRepository interface {
	Upsert(ctx context.Context, profile *entity.PatientProfile) error
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.PatientProfile, error)
}

type DoctorProfileRepository interface {
	Upsert(ctx context.Context, profile *entity.DoctorProfile) error
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.DoctorProfile, error)

	// FindListings joins verified doctor profiles with their accounts.
	// Both filters are optional; nameQuery matches case-insensitively.
	FindListings(ctx context.Context, specialty, nameQuery string) ([]*entity.DoctorListing, error)
}
