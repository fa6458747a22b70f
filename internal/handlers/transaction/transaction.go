package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"ppob-api/internal/domain"
	"ppob-api/internal/dto"
	"ppob-api/internal/service/ledgerservice"
	"ppob-api/pkg/auth"
	"ppob-api/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (decimal.Decimal, error)
	TopUp(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error)
	Pay(ctx context.Context, userID int, serviceCode string) (*domain.Transaction, error)
	GetHistory(ctx context.Context, userID, offset, limit int) ([]domain.Transaction, error)
}

type TransactionHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Tags			Transaction
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response{data=dto.BalanceResponseDTO}
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Balance not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/balance [get]
func (h *TransactionHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ledgerservice.ErrBalanceNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, utils.StatusNotFound, "Balance not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, utils.StatusInternalError, "Internal server error")
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Get balance successful", dto.BalanceResponseDTO{
		Balance: balance.InexactFloat64(),
	})
}

// TopUp godoc
//
//	@Summary		Top up the user balance
//	@Tags			Transaction
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TopUpRequestDTO	true	"Top up payload"
//	@Success		200		{object}	utils.Response{data=dto.BalanceResponseDTO}
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/topup [post]
func (h *TransactionHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TopUpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.StatusInvalidInput, "Parameter top_up_amount must be a number greater than zero")
		return
	}

	balance, err := h.ledgerService.TopUp(r.Context(), userID, decimal.NewFromFloat(req.TopUpAmount))
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, utils.StatusInvalidInput, "Parameter top_up_amount must be a number greater than zero")
		case errors.Is(err, ledgerservice.ErrBalanceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, utils.StatusNotFound, "Balance not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, utils.StatusInternalError, "Internal server error")
		}
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Top up successful", dto.BalanceResponseDTO{
		Balance: balance.InexactFloat64(),
	})
}

// Pay godoc
//
//	@Summary		Pay for a catalog service
//	@Tags			Transaction
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransactionRequestDTO	true	"Payment payload"
//	@Success		200		{object}	utils.Response{data=dto.TransactionResponseDTO}
//	@Failure		400		{object}	utils.Response	"Unknown service or insufficient balance"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/transaction [post]
func (h *TransactionHandler) Pay(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.StatusInvalidInput, "Parameter service_code is required")
		return
	}
	if req.ServiceCode == "" {
		utils.RespondWithError(w, http.StatusBadRequest, utils.StatusInvalidInput, "Parameter service_code is required")
		return
	}

	trx, err := h.ledgerService.Pay(r.Context(), userID, req.ServiceCode)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrServiceNotFound):
			utils.RespondWithError(w, http.StatusBadRequest, utils.StatusInvalidInput, "Service not found")
		case errors.Is(err, ledgerservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusBadRequest, utils.StatusInvalidInput, "Insufficient balance")
		case errors.Is(err, ledgerservice.ErrBalanceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, utils.StatusNotFound, "Balance not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, utils.StatusInternalError, "Internal server error")
		}
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Transaction successful", dto.TransactionResponseDTO{
		InvoiceNumber:   trx.InvoiceNumber,
		ServiceCode:     trx.ServiceCode,
		ServiceName:     trx.ServiceName,
		TransactionType: trx.TransactionType,
		TotalAmount:     trx.TotalAmount.InexactFloat64(),
		CreatedOn:       trx.CreatedOn,
	})
}

// GetHistory godoc
//
//	@Summary		Get transaction history
//	@Description	Most recent first; limit=0 returns every record
//	@Tags			Transaction
//	@Security		BearerAuth
//	@Produce		json
//	@Param			offset	query		int	false	"Pagination offset"
//	@Param			limit	query		int	false	"Page size, 0 for all"
//	@Success		200		{object}	utils.Response{data=dto.HistoryResponseDTO}
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/transaction/history [get]
func (h *TransactionHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	offset := queryInt(r, "offset")
	limit := queryInt(r, "limit")

	transactions, err := h.ledgerService.GetHistory(r.Context(), userID, offset, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.StatusInternalError, "Internal server error")
		return
	}

	records := make([]dto.HistoryRecordDTO, len(transactions))
	for i, trx := range transactions {
		records[i] = dto.HistoryRecordDTO{
			InvoiceNumber:   trx.InvoiceNumber,
			TransactionType: trx.TransactionType,
			Description:     trx.Description,
			TotalAmount:     trx.TotalAmount.InexactFloat64(),
			CreatedOn:       trx.CreatedOn,
		}
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Get history successful", dto.HistoryResponseDTO{
		Offset:  offset,
		Limit:   limit,
		Records: records,
	})
}

// queryInt parses a non-negative integer query parameter, defaulting to 0.
func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
