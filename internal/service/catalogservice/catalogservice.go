package catalogservice

import (
	"context"

	"go.uber.org/zap"

	"ppob-api/internal/domain"
)

type Repo interface {
	GetServices(ctx context.Context) ([]domain.Service, error)
	GetBanners(ctx context.Context) ([]domain.Banner, error)
}

type Service struct {
	catalogRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		catalogRepo: repo,
	}
}

func (s *Service) GetServices(ctx context.Context) ([]domain.Service, error) {
	services, err := s.catalogRepo.GetServices(ctx)
	if err != nil {
		zap.L().Error("failed to fetch services", zap.Error(err))
		return nil, err
	}
	return services, nil
}

func (s *Service) GetBanners(ctx context.Context) ([]domain.Banner, error) {
	banners, err := s.catalogRepo.GetBanners(ctx)
	if err != nil {
		zap.L().Error("failed to fetch banners", zap.Error(err))
		return nil, err
	}
	return banners, nil
}
