package contract

import (
	"context"

	"telehealth-be/internal/entity"
	"telehealth-be/internal/repository/specification"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *entity.Prescription) error
	Update(ctx context.Context, prescription *entity.Prescription) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Prescription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Prescription, error)
}
