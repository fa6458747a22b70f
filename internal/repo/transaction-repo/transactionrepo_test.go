package transactionrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"ppob-api/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mock.Close)
	repo := New(mock)
	return repo, mock
}

func TestCreateTransaction(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	trx := func() *domain.Transaction {
		return &domain.Transaction{
			InvoiceNumber:   "INV17082023-0001",
			UserID:          1,
			TransactionType: domain.PaymentTransaction,
			ServiceCode:     "PULSA",
			ServiceName:     "Pulsa",
			Description:     "Pulsa",
			TotalAmount:     decimal.NewFromInt(10000),
		}
	}

	tests := []struct {
		name          string
		prepareMock   func(in *domain.Transaction)
		expectedError bool
	}{
		{
			name: "Transaction saved",
			prepareMock: func(in *domain.Transaction) {
				rows := pgxmock.NewRows([]string{"id", "created_on"}).
					AddRow(7, time.Now())
				mock.ExpectQuery(`INSERT INTO transactions`).
					WithArgs(in.InvoiceNumber, in.UserID, in.TransactionType,
						in.ServiceCode, in.ServiceName, in.Description, in.TotalAmount).
					WillReturnRows(rows)
			},
		},
		{
			name: "Insert error",
			prepareMock: func(in *domain.Transaction) {
				mock.ExpectQuery(`INSERT INTO transactions`).
					WithArgs(in.InvoiceNumber, in.UserID, in.TransactionType,
						in.ServiceCode, in.ServiceName, in.Description, in.TotalAmount).
					WillReturnError(errors.New("db error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := trx()
			tt.prepareMock(in)

			saved, err := repo.CreateTransaction(ctx, in)
			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, saved)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, saved.ID)
				assert.False(t, saved.CreatedOn.IsZero())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	columns := []string{
		"id", "invoice_number", "user_id", "transaction_type",
		"service_code", "service_name", "description", "total_amount", "created_on",
	}

	tests := []struct {
		name          string
		offset, limit int
		prepareMock   func()
		expectedLen   int
		expectedError bool
	}{
		{
			name: "All transactions, newest first",
			prepareMock: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(2, "INV17082023-0002", 1, domain.PaymentTransaction,
						"PULSA", "Pulsa", "Pulsa", decimal.NewFromInt(10000), time.Now()).
					AddRow(1, "INV17082023-0001", 1, domain.TopUpTransaction,
						"", "", "Top Up Balance", decimal.NewFromInt(50000), time.Now().Add(-time.Hour))
				mock.ExpectQuery(`SELECT (.+) FROM transactions WHERE user_id = \$1 ORDER BY created_on DESC, id DESC`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectedLen: 2,
		},
		{
			name:   "Paginated",
			offset: 1,
			limit:  1,
			prepareMock: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(1, "INV17082023-0001", 1, domain.TopUpTransaction,
						"", "", "Top Up Balance", decimal.NewFromInt(50000), time.Now())
				mock.ExpectQuery(`SELECT (.+) FROM transactions WHERE user_id = \$1 ORDER BY created_on DESC, id DESC LIMIT \$2 OFFSET \$3`).
					WithArgs(1, 1, 1).
					WillReturnRows(rows)
			},
			expectedLen: 1,
		},
		{
			name: "No transactions yet",
			prepareMock: func() {
				mock.ExpectQuery(`SELECT (.+) FROM transactions`).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows(columns))
			},
			expectedLen: 0,
		},
		{
			name: "Query error",
			prepareMock: func() {
				mock.ExpectQuery(`SELECT (.+) FROM transactions`).
					WithArgs(1).
					WillReturnError(errors.New("db error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			transactions, err := repo.FindByUserID(ctx, 1, tt.offset, tt.limit)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, transactions, tt.expectedLen)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
