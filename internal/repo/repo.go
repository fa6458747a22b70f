package repo

import (
	"ppob-api/internal/pg"
	balancerepo "ppob-api/internal/repo/balance-repo"
	catalogrepo "ppob-api/internal/repo/catalog-repo"
	transactionrepo "ppob-api/internal/repo/transaction-repo"
	userrepo "ppob-api/internal/repo/user-repo"
	"ppob-api/internal/service/authservice"
	"ppob-api/internal/service/catalogservice"
	"ppob-api/internal/service/ledgerservice"
	"ppob-api/internal/service/profileservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	ProfileRepo     profileservice.Repo
	BalanceRepo     ledgerservice.BalanceRepo
	TransactionRepo ledgerservice.TransactionRepo
	CatalogRepo     catalogservice.Repo
	ServiceCatalog  ledgerservice.CatalogRepo
}

func New(conn pg.Database) *Repositories {
	userRepo := userrepo.New(conn)
	balanceRepo := balancerepo.New(conn)
	transactionRepo := transactionrepo.New(conn)
	catalogRepo := catalogrepo.New(conn)

	return &Repositories{
		UserRepo:        userRepo,
		ProfileRepo:     userRepo,
		BalanceRepo:     balanceRepo,
		TransactionRepo: transactionRepo,
		CatalogRepo:     catalogRepo,
		ServiceCatalog:  catalogRepo,
	}
}
