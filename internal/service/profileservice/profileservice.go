package profileservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"ppob-api/internal/domain"
)

type Repo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int, firstName, lastName string) (*domain.User, error)
	UpdateProfileImage(ctx context.Context, userID int, imageURL string) (*domain.User, error)
}

var ErrUserNotFound = errors.New("user not found")

type Service struct {
	userRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		userRepo: repo,
	}
}

func (s *Service) GetProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get profile", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int, firstName, lastName string) (*domain.User, error) {
	user, err := s.userRepo.UpdateProfile(ctx, userID, firstName, lastName)
	if err != nil {
		zap.L().Error("failed to update profile", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	zap.L().Info("profile updated", zap.Int("user_id", userID))
	return user, nil
}

func (s *Service) UpdateProfileImage(ctx context.Context, userID int, imageURL string) (*domain.User, error) {
	user, err := s.userRepo.UpdateProfileImage(ctx, userID, imageURL)
	if err != nil {
		zap.L().Error("failed to update profile image", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	zap.L().Info("profile image updated", zap.Int("user_id", userID))
	return user, nil
}
