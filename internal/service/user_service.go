package service

import (
	"context"
	"time"

	"profai-be/internal/dto"
	"profai-be/internal/pkg/serverutils"
	"profai-be/internal/repository/specification"
	"profai-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
}

type userService struct {
	uowFactory   unitofwork.RepositoryFactory
	profileCache *cache.Cache
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
		// Profiles are written by the identity backend; 60s staleness on
		// the credits counter is acceptable for display.
		profileCache: cache.New(60*time.Second, 5*time.Minute),
	}
}

func (u *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	if cached, found := u.profileCache.Get(userId.String()); found {
		return cached.(*dto.UserProfileResponse), nil
	}

	uow := u.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "perfil não encontrado")
	}

	res := &dto.UserProfileResponse{
		Id:        profile.Id,
		Email:     profile.Email,
		FullName:  profile.FullName,
		Credits:   profile.Credits,
		CreatedAt: profile.CreatedAt,
	}
	u.profileCache.Set(userId.String(), res, cache.DefaultExpiration)
	return res, nil
}
