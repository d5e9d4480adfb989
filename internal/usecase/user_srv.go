package usecase

import (
	"context"
	"fmt"

	"movie-rating/internal/data/repository"
	"movie-rating/internal/dto/response"
	"movie-rating/pkg/apperror"
	"movie-rating/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, identity utils.Identity) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, identity utils.Identity) (*response.UserResponse, error) {
	if err := identity.Require(); err != nil {
		return nil, err
	}

	user, err := us.userRepo.FindByID(ctx, identity.UserID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", identity.UserID))
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, apperror.NotFound("user", identity.UserID)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
