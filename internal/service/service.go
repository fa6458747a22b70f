package service

import (
	"ppob-api/internal/config"
	authhandlers "ppob-api/internal/handlers/auth"
	informationhandlers "ppob-api/internal/handlers/information"
	profilehandlers "ppob-api/internal/handlers/profile"
	transactionhandlers "ppob-api/internal/handlers/transaction"
	"ppob-api/internal/pg"
	"ppob-api/internal/repo"
	"ppob-api/internal/service/authservice"
	"ppob-api/internal/service/catalogservice"
	"ppob-api/internal/service/ledgerservice"
	"ppob-api/internal/service/profileservice"
	pkgauth "ppob-api/pkg/auth"
)

type Services struct {
	AuthService    authhandlers.Service
	ProfileService profilehandlers.Service
	CatalogService informationhandlers.Service
	LedgerService  transactionhandlers.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	authService := authservice.New(repo.UserRepo, repo.BalanceRepo, txManager, &pkgauth.HashService{}, &pkgauth.JWTService{}, cfg.JWTExpiresIn)
	profileService := profileservice.New(repo.ProfileRepo)
	catalogService := catalogservice.New(repo.CatalogRepo)
	ledgerService := ledgerservice.New(repo.BalanceRepo, repo.TransactionRepo, repo.ServiceCatalog, txManager)

	return &Services{
		AuthService:    authService,
		ProfileService: profileService,
		CatalogService: catalogService,
		LedgerService:  ledgerService,
	}
}
