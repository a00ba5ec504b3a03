package implementation

import (
	"context"
	"errors"

	"profai-be/internal/entity"
	"profai-be/internal/mapper"
	"profai-be/internal/model"
	"profai-be/internal/repository/contract"
	"profai-be/internal/repository/specification"

	"gorm.io/gorm"
)

type GenerationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GenerationMapper
}

func NewGenerationRepository(db *gorm.DB) contract.GenerationRepository {
	return &GenerationRepositoryImpl{
		db:     db,
		mapper: mapper.NewGenerationMapper(),
	}
}

func (r *GenerationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *GenerationRepositoryImpl) Create(ctx context.Context, record *entity.GenerationRecord) error {
	modelRecord := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(modelRecord).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(modelRecord)
	return nil
}

func (r *GenerationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GenerationRecord, error) {
	var modelRecord model.GenerationRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&modelRecord).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelRecord), nil
}

func (r *GenerationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GenerationRecord, error) {
	var modelRecords []model.GenerationRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&modelRecords).Error; err != nil {
		return nil, err
	}
	records := make([]*entity.GenerationRecord, 0, len(modelRecords))
	for i := range modelRecords {
		records = append(records, r.mapper.ToEntity(&modelRecords[i]))
	}
	return records, nil
}

func (r *GenerationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.GenerationRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
