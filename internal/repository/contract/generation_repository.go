package contract

import (
	"context"

	"profai-be/internal/entity"
	"profai-be/internal/repository/specification"
)

type GenerationRepository interface {
	Create(ctx context.Context, record *entity.GenerationRecord) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GenerationRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GenerationRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
