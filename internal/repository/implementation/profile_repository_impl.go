package implementation

import (
	"context"
	"errors"

	"profai-be/internal/entity"
	"profai-be/internal/mapper"
	"profai-be/internal/model"
	"profai-be/internal/repository/contract"
	"profai-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) contract.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *ProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *entity.Profile) error {
	modelProfile := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Create(modelProfile).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(modelProfile)
	return nil
}

func (r *ProfileRepositoryImpl) Update(ctx context.Context, profile *entity.Profile) error {
	modelProfile := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Save(modelProfile).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(modelProfile)
	return nil
}

func (r *ProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	var modelProfile model.Profile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&modelProfile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelProfile), nil
}

func (r *ProfileRepositoryImpl) DebitCredits(ctx context.Context, userId uuid.UUID, amount int) error {
	res := r.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("id = ? AND credits >= ?", userId, amount).
		UpdateColumn("credits", gorm.Expr("credits - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("créditos insuficientes")
	}
	return nil
}
