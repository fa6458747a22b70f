package catalogrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"ppob-api/internal/domain"
	"ppob-api/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindServiceByCode(ctx context.Context, code string) (*domain.Service, error) {
	query := `
        SELECT id, service_code, service_name, service_icon, service_tariff
        FROM services
        WHERE service_code = $1
    `
	row := r.db.QueryRow(ctx, query, code)
	var service domain.Service
	err := row.Scan(&service.ID, &service.ServiceCode, &service.ServiceName, &service.ServiceIcon, &service.ServiceTariff)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find service", zap.Error(err))
		return nil, err
	}
	return &service, nil
}

func (r *Repository) GetServices(ctx context.Context) ([]domain.Service, error) {
	query := `
        SELECT id, service_code, service_name, service_icon, service_tariff
        FROM services
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch services", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		var service domain.Service
		err := rows.Scan(&service.ID, &service.ServiceCode, &service.ServiceName, &service.ServiceIcon, &service.ServiceTariff)
		if err != nil {
			zap.L().Error("failed to scan service row", zap.Error(err))
			return nil, err
		}
		services = append(services, service)
	}

	return services, nil
}

func (r *Repository) GetBanners(ctx context.Context) ([]domain.Banner, error) {
	query := `
        SELECT id, banner_name, banner_image, description
        FROM banners
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch banners", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var banners []domain.Banner
	for rows.Next() {
		var banner domain.Banner
		err := rows.Scan(&banner.ID, &banner.BannerName, &banner.BannerImage, &banner.Description)
		if err != nil {
			zap.L().Error("failed to scan banner row", zap.Error(err))
			return nil, err
		}
		banners = append(banners, banner)
	}

	return banners, nil
}
