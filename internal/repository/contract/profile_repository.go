package contract

import (
	"context"

	"profai-be/internal/entity"
	"profai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, profile *entity.Profile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error)

	// DebitCredits decrements atomically and fails when the balance is
	// lower than amount. Must run inside a unit-of-work transaction when
	// paired with history writes.
	DebitCredits(ctx context.Context, userId uuid.UUID, amount int) error
}
