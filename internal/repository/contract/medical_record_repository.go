package contract

import (
	"context"

	"telehealth-be/internal/entity"
	"telehealth-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MedicalRecordRepository interface {
	Create(ctx context.Context, record *entity.MedicalRecord) error
	Update(ctx context.Context, record *entity.MedicalRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MedicalRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MedicalRecord, error)
}
