package dto

import "time"

type BalanceResponseDTO struct {
	Balance float64 `json:"balance" example:"50000"`
}

type TopUpRequestDTO struct {
	TopUpAmount float64 `json:"top_up_amount" validate:"required,gt=0" example:"50000"`
}

type TransactionRequestDTO struct {
	ServiceCode string `json:"service_code" validate:"required" example:"PULSA"`
}

type TransactionResponseDTO struct {
	InvoiceNumber   string    `json:"invoice_number" example:"INV17082023-0001"`
	ServiceCode     string    `json:"service_code" example:"PULSA"`
	ServiceName     string    `json:"service_name" example:"Pulsa"`
	TransactionType string    `json:"transaction_type" example:"PAYMENT"`
	TotalAmount     float64   `json:"total_amount" example:"40000"`
	CreatedOn       time.Time `json:"created_on" example:"2023-08-17T10:10:10+07:00"`
}

type HistoryRecordDTO struct {
	InvoiceNumber   string    `json:"invoice_number" example:"INV17082023-0001"`
	TransactionType string    `json:"transaction_type" example:"TOPUP"`
	Description     string    `json:"description" example:"Top Up Balance"`
	TotalAmount     float64   `json:"total_amount" example:"50000"`
	CreatedOn       time.Time `json:"created_on" example:"2023-08-17T10:10:10+07:00"`
}

type HistoryResponseDTO struct {
	Offset  int                `json:"offset" example:"0"`
	Limit   int                `json:"limit" example:"3"`
	Records []HistoryRecordDTO `json:"records"`
}
