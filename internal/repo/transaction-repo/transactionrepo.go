package transactionrepo

import (
	"context"
	"fmt"

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

func (r *Repository) CreateTransaction(ctx context.Context, trx *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (invoice_number, user_id, transaction_type, service_code, service_name, description, total_amount)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)
		RETURNING id, created_on
	`
	err := r.db.QueryRow(ctx, query,
		trx.InvoiceNumber, trx.UserID, trx.TransactionType,
		trx.ServiceCode, trx.ServiceName, trx.Description, trx.TotalAmount,
	).Scan(&trx.ID, &trx.CreatedOn)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return trx, nil
}

// FindByUserID returns the user's transactions, most recent first.
// limit == 0 means no pagination: every record is returned.
func (r *Repository) FindByUserID(ctx context.Context, userID, offset, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT id, invoice_number, user_id, transaction_type,
               COALESCE(service_code, ''), COALESCE(service_name, ''),
               description, total_amount, created_on
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_on DESC, id DESC
    `
	args := []any{userID}
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var trx domain.Transaction
		err := rows.Scan(
			&trx.ID, &trx.InvoiceNumber, &trx.UserID, &trx.TransactionType,
			&trx.ServiceCode, &trx.ServiceName, &trx.Description,
			&trx.TotalAmount, &trx.CreatedOn,
		)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, trx)
	}

	return transactions, nil
}
