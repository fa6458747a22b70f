package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// TopUpTransaction credits the user balance.
	TopUpTransaction string = "TOPUP"
	// PaymentTransaction debits the user balance by a service tariff.
	PaymentTransaction string = "PAYMENT"
)

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	PasswordHash string    `db:"password_hash"`
	ProfileImage string    `db:"profile_image"`
	CreatedAt    time.Time `db:"created_at"`
}

type Balance struct {
	ID      int             `db:"id"`
	UserID  int             `db:"user_id"`
	Balance decimal.Decimal `db:"balance"`
}

type Service struct {
	ID            int             `db:"id"`
	ServiceCode   string          `db:"service_code"`
	ServiceName   string          `db:"service_name"`
	ServiceIcon   string          `db:"service_icon"`
	ServiceTariff decimal.Decimal `db:"service_tariff"`
}

type Banner struct {
	ID          int    `db:"id"`
	BannerName  string `db:"banner_name"`
	BannerImage string `db:"banner_image"`
	Description string `db:"description"`
}

type Transaction struct {
	ID              int             `db:"id"`
	InvoiceNumber   string          `db:"invoice_number"`
	UserID          int             `db:"user_id"`
	TransactionType string          `db:"transaction_type"`
	ServiceCode     string          `db:"service_code"`
	ServiceName     string          `db:"service_name"`
	Description     string          `db:"description"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	CreatedOn       time.Time       `db:"created_on"`
}
