package implementation

import (
	"context"
	"errors"

	"telehealth-be/internal/entity"
	"telehealth-be/internal/mapper"
	"telehealth-be/internal/model"
	"telehealth-be/internal/repository/contract"
	"telehealth-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LabReportRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LabReportMapper
}

func NewLabReportRepository(db *gorm.DB) contract.LabReportRepository {
	return &LabReportRepositoryImpl{
		db:     db,
		mapper: mapper.NewLabReportMapper(),
	}
}

func (r *LabReportRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LabReportRepositoryImpl) Create(ctx context.Context, report *entity.LabReport) error {
	m := r.mapper.ToModel(report)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*report = *r.mapper.ToEntity(m)
	return nil
}

func (r *LabReportRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LabReport{}, id).Error
}

func (r *LabReportRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LabReport, error) {
	var m model.LabReport
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LabReportRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LabReport, error) {
	var models []*model.LabReport
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
