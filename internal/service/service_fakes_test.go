package service

import (
	"context"

	"profai-be/internal/entity"
	"profai-be/internal/repository/contract"
	"profai-be/internal/repository/specification"
	"profai-be/internal/repository/unitofwork"
	"profai-be/pkg/aiclient"

	"github.com/google/uuid"
)

type fakeTextGenerator struct {
	res     *aiclient.TextResult
	err     error
	calls   int
	lastReq *aiclient.TextRequest
}

func (f *fakeTextGenerator) GenerateText(ctx context.Context, req *aiclient.TextRequest) (*aiclient.TextResult, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

type fakeImageGenerator struct {
	res   *aiclient.ImageResult
	err   error
	calls int
}

func (f *fakeImageGenerator) GenerateImage(ctx context.Context, req *aiclient.ImageRequest) (*aiclient.ImageResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type fakePublisher struct {
	payloads [][]byte
	err      error
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, payload)
	return nil
}

type fakeProfileRepository struct {
	profile  *entity.Profile
	debits   []int
	debitErr error
}

func (f *fakeProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	f.profile = profile
	return nil
}

func (f *fakeProfileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	f.profile = profile
	return nil
}

func (f *fakeProfileRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	return f.profile, nil
}

func (f *fakeProfileRepository) DebitCredits(ctx context.Context, userId uuid.UUID, amount int) error {
	if f.debitErr != nil {
		return f.debitErr
	}
	f.debits = append(f.debits, amount)
	if f.profile != nil {
		f.profile.Credits -= amount
	}
	return nil
}

type fakeGenerationRepository struct {
	records []*entity.GenerationRecord
}

func (f *fakeGenerationRepository) Create(ctx context.Context, record *entity.GenerationRecord) error {
	f.records = append(f.records, record)
	return nil
}

func (f *fakeGenerationRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GenerationRecord, error) {
	if len(f.records) == 0 {
		return nil, nil
	}
	return f.records[0], nil
}

func (f *fakeGenerationRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GenerationRecord, error) {
	return f.records, nil
}

func (f *fakeGenerationRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.records)), nil
}

type fakeUnitOfWork struct {
	profiles   *fakeProfileRepository
	records    *fakeGenerationRepository
	began      bool
	committed  bool
	rolledBack bool
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error {
	f.began = true
	return nil
}

func (f *fakeUnitOfWork) Commit() error {
	f.committed = true
	return nil
}

func (f *fakeUnitOfWork) Rollback() error {
	if !f.committed {
		f.rolledBack = true
	}
	return nil
}

func (f *fakeUnitOfWork) ProfileRepository() contract.ProfileRepository {
	return f.profiles
}

func (f *fakeUnitOfWork) GenerationRepository() contract.GenerationRepository {
	return f.records
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newFakeFactory(profile *entity.Profile) (*fakeUowFactory, *fakeUnitOfWork) {
	uow := &fakeUnitOfWork{
		profiles: &fakeProfileRepository{profile: profile},
		records:  &fakeGenerationRepository{},
	}
	return &fakeUowFactory{uow: uow}, uow
}
