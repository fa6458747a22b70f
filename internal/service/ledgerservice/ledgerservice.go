package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"ppob-api/internal/domain"
)

type BalanceRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	Credit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error)
	Debit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Balance, error)
}

type TransactionRepo interface {
	CreateTransaction(ctx context.Context, trx *domain.Transaction) (*domain.Transaction, error)
	FindByUserID(ctx context.Context, userID, offset, limit int) ([]domain.Transaction, error)
}

type CatalogRepo interface {
	FindServiceByCode(ctx context.Context, code string) (*domain.Service, error)
}

type TxManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

var (
	ErrInvalidAmount       = errors.New("top up amount must be greater than zero")
	ErrBalanceNotFound     = errors.New("balance not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// invoiceRetries bounds regeneration attempts when a generated invoice
// number collides with an existing one.
const invoiceRetries = 3

const topUpDescription = "Top Up Balance"

type Service struct {
	balanceRepo     BalanceRepo
	transactionRepo TransactionRepo
	catalogRepo     CatalogRepo
	txManager       TxManager
}

func New(balanceRepo BalanceRepo, transactionRepo TransactionRepo, catalogRepo CatalogRepo, txManager TxManager) *Service {
	return &Service{
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID int) (decimal.Decimal, error) {
	balance, err := s.balanceRepo.GetUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return decimal.Zero, err
	}
	if balance == nil {
		return decimal.Zero, ErrBalanceNotFound
	}
	return balance.Balance, nil
}

// TopUp credits the user balance and records a TOPUP transaction in one
// atomic unit. Either both effects commit or neither does.
func (s *Service) TopUp(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}

	var newBalance decimal.Decimal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.balanceRepo.Credit(ctx, userID, amount)
		if err != nil {
			return err
		}
		if balance == nil {
			return ErrBalanceNotFound
		}
		newBalance = balance.Balance

		_, err = s.createTransaction(ctx, &domain.Transaction{
			UserID:          userID,
			TransactionType: domain.TopUpTransaction,
			Description:     topUpDescription,
			TotalAmount:     amount,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrBalanceNotFound) {
			zap.L().Error("top up failed", zap.Int("user_id", userID), zap.Error(err))
		}
		return decimal.Zero, err
	}

	zap.L().Info("balance topped up",
		zap.Int("user_id", userID),
		zap.String("amount", amount.String()))
	return newBalance, nil
}

// Pay resolves the service tariff, deducts it, and records a PAYMENT
// transaction atomically. The deduction is a conditional update guarded by
// "balance >= tariff", so two concurrent payments for the same user cannot
// both spend the same funds.
func (s *Service) Pay(ctx context.Context, userID int, serviceCode string) (*domain.Transaction, error) {
	var result *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		service, err := s.catalogRepo.FindServiceByCode(ctx, serviceCode)
		if err != nil {
			return err
		}
		if service == nil {
			return ErrServiceNotFound
		}

		balance, err := s.balanceRepo.Debit(ctx, userID, service.ServiceTariff)
		if err != nil {
			return err
		}
		if balance == nil {
			// Nothing was updated: either the record is missing or the
			// funds are short. Tell the two cases apart.
			existing, err := s.balanceRepo.GetUserBalance(ctx, userID)
			if err != nil {
				return err
			}
			if existing == nil {
				return ErrBalanceNotFound
			}
			return ErrInsufficientBalance
		}

		result, err = s.createTransaction(ctx, &domain.Transaction{
			UserID:          userID,
			TransactionType: domain.PaymentTransaction,
			ServiceCode:     service.ServiceCode,
			ServiceName:     service.ServiceName,
			Description:     service.ServiceName,
			TotalAmount:     service.ServiceTariff,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrServiceNotFound) && !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("payment failed", zap.Int("user_id", userID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("payment processed",
		zap.Int("user_id", userID),
		zap.String("invoice_number", result.InvoiceNumber),
		zap.String("service_code", serviceCode))
	return result, nil
}

// GetHistory returns the user's transactions, most recent first.
// limit == 0 means every record is returned.
func (s *Service) GetHistory(ctx context.Context, userID, offset, limit int) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindByUserID(ctx, userID, offset, limit)
	if err != nil {
		zap.L().Error("failed to fetch transaction history", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// createTransaction stamps the record with a fresh invoice number and
// inserts it, regenerating the number on a unique-constraint collision.
// Each attempt runs in its own nested transaction: Postgres aborts a
// transaction after a failed statement, so the colliding insert has to be
// rolled back to a savepoint before the next attempt can run.
func (s *Service) createTransaction(ctx context.Context, trx *domain.Transaction) (*domain.Transaction, error) {
	var lastErr error
	for i := 0; i < invoiceRetries; i++ {
		trx.InvoiceNumber = generateInvoiceNumber(time.Now())

		var created *domain.Transaction
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			var err error
			created, err = s.transactionRepo.CreateTransaction(ctx, trx)
			return err
		})
		if err == nil {
			return created, nil
		}
		if !isUniqueViolation(err) {
			return nil, err
		}
		zap.L().Info("invoice number collision, regenerating",
			zap.String("invoice_number", trx.InvoiceNumber))
		lastErr = err
	}
	return nil, fmt.Errorf("can't generate unique invoice number: %w", lastErr)
}

// generateInvoiceNumber formats INV{dd}{mm}{yyyy}-{nnnn} with a random
// 4-digit suffix. Uniqueness is enforced by the database, not here.
func generateInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV%02d%02d%d-%04d", now.Day(), int(now.Month()), now.Year(), rand.Intn(10000))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
