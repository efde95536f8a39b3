package contract

import (
	"context"

	"telehealth-be/internal/entity"
	"telehealth-be/internal/repository/specification"

	"github.com/google/uuid"
)

type LabReportRepository interface {
	Create(ctx context.Context, report *entity.LabReport) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LabReport, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LabReport, error)
}
