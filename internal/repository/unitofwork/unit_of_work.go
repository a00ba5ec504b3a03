package unitofwork

import (
	"context"

	"profai-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProfileRepository() contract.ProfileRepository
	GenerationRepository() contract.GenerationRepository
}
