package balancerepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

func (r *Repository) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, user_id, balance
        FROM balances
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.Balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (user_id, balance)
        VALUES ($1, 0)
        RETURNING id, user_id, balance
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.Balance)
	if err != nil {
		zap.L().Error("failed to create user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Credit increases the balance by amount. Returns (nil, nil) when the user
// has no balance record.
func (r *Repository) Credit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error) {
	query := `
        UPDATE balances
        SET balance = balance + $1
        WHERE user_id = $2
        RETURNING id, user_id, balance
    `
	row := r.db.QueryRow(ctx, query, amount, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.Balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to credit user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Debit decreases the balance by amount, guarded by the balance itself:
// the row is only updated when balance >= amount. Returns (nil, nil) when
// no row was updated, i.e. the record is missing or the funds are short.
func (r *Repository) Debit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error) {
	query := `
        UPDATE balances
        SET balance = balance - $1
        WHERE user_id = $2 AND balance >= $1
        RETURNING id, user_id, balance
    `
	row := r.db.QueryRow(ctx, query, amount, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.Balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to debit user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}
