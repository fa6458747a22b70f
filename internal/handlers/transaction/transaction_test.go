package transaction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"ppob-api/internal/domain"
	"ppob-api/internal/service/ledgerservice"
	"ppob-api/pkg/auth"
	"ppob-api/pkg/utils"
)

func NewMock(t *testing.T) (*TransactionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authCtx(userID int) context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, userID)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) utils.Response {
	var resp utils.Response
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		prepareMock    func()
		expectedCode   int
		expectedStatus int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetBalance(authCtx(1), 1).
					Return(decimal.NewFromInt(50000), nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: utils.StatusSuccess,
		},
		{
			name: "Balance not found",
			prepareMock: func() {
				service.EXPECT().
					GetBalance(authCtx(1), 1).
					Return(decimal.Zero, ledgerservice.ErrBalanceNotFound)
			},
			expectedCode:   http.StatusNotFound,
			expectedStatus: utils.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetBalance(authCtx(1), 1).
					Return(decimal.Zero, errors.New("error"))
			},
			expectedCode:   http.StatusInternalServerError,
			expectedStatus: utils.StatusInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/balance", nil)
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()

			handler.GetBalance(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			resp := decodeEnvelope(t, w)
			assert.Equal(t, tt.expectedStatus, resp.Status)
			if tt.expectedCode == http.StatusOK {
				data := resp.Data.(map[string]any)
				assert.Equal(t, float64(50000), data["balance"])
			}
		})
	}
}

func TestTopUpHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedStatus int
	}{
		{
			name: "Successful top up",
			body: `{"top_up_amount":50000}`,
			prepareMock: func() {
				service.EXPECT().
					TopUp(authCtx(1), 1, decimal.NewFromFloat(50000)).
					Return(decimal.NewFromInt(50000), nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: utils.StatusSuccess,
		},
		{
			name:           "Malformed body",
			body:           `{"top_up_amount":"fifty"}`,
			prepareMock:    func() {},
			expectedCode:   http.StatusBadRequest,
			expectedStatus: utils.StatusInvalidInput,
		},
		{
			name: "Non-positive amount",
			body: `{"top_up_amount":-100}`,
			prepareMock: func() {
				service.EXPECT().
					TopUp(authCtx(1), 1, decimal.NewFromFloat(-100)).
					Return(decimal.Zero, ledgerservice.ErrInvalidAmount)
			},
			expectedCode:   http.StatusBadRequest,
			expectedStatus: utils.StatusInvalidInput,
		},
		{
			name: "Balance not found",
			body: `{"top_up_amount":50000}`,
			prepareMock: func() {
				service.EXPECT().
					TopUp(authCtx(1), 1, decimal.NewFromFloat(50000)).
					Return(decimal.Zero, ledgerservice.ErrBalanceNotFound)
			},
			expectedCode:   http.StatusNotFound,
			expectedStatus: utils.StatusNotFound,
		},
		{
			name: "Internal server error",
			body: `{"top_up_amount":50000}`,
			prepareMock: func() {
				service.EXPECT().
					TopUp(authCtx(1), 1, decimal.NewFromFloat(50000)).
					Return(decimal.Zero, errors.New("error"))
			},
			expectedCode:   http.StatusInternalServerError,
			expectedStatus: utils.StatusInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/topup", bytes.NewBufferString(tt.body))
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()

			handler.TopUp(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			resp := decodeEnvelope(t, w)
			assert.Equal(t, tt.expectedStatus, resp.Status)
		})
	}
}

func TestPayHandler(t *testing.T) {
	handler, service := NewMock(t)

	trx := &domain.Transaction{
		InvoiceNumber:   "INV17082023-0001",
		TransactionType: domain.PaymentTransaction,
		ServiceCode:     "PULSA",
		ServiceName:     "Pulsa",
		TotalAmount:     decimal.NewFromInt(10000),
		CreatedOn:       time.Now(),
	}

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedStatus int
	}{
		{
			name: "Successful payment",
			body: `{"service_code":"PULSA"}`,
			prepareMock: func() {
				service.EXPECT().
					Pay(authCtx(1), 1, "PULSA").
					Return(trx, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: utils.StatusSuccess,
		},
		{
			name:           "Malformed body",
			body:           `{"service_code":`,
			prepareMock:    func() {},
			expectedCode:   http.StatusBadRequest,
			expectedStatus: utils.StatusInvalidInput,
		},
		{
			name:           "Missing service code",
			body:           `{}`,
			prepareMock:    func() {},
			expectedCode:   http.StatusBadRequest,
			expectedStatus: utils.StatusInvalidInput,
		},
		{
			name: "Unknown service",
			body: `{"service_code":"NOPE"}`,
			prepareMock: func() {
				service.EXPECT().
					Pay(authCtx(1), 1, "NOPE").
					Return(nil, ledgerservice.ErrServiceNotFound)
			},
			expectedCode:   http.StatusBadRequest,
			expectedStatus: utils.StatusInvalidInput,
		},
		{
			name: "Insufficient balance",
			body: `{"service_code":"PULSA"}`,
			prepareMock: func() {
				service.EXPECT().
					Pay(authCtx(1), 1, "PULSA").
					Return(nil, ledgerservice.ErrInsufficientBalance)
			},
			expectedCode:   http.StatusBadRequest,
			expectedStatus: utils.StatusInvalidInput,
		},
		{
			name: "Balance not found",
			body: `{"service_code":"PULSA"}`,
			prepareMock: func() {
				service.EXPECT().
					Pay(authCtx(1), 1, "PULSA").
					Return(nil, ledgerservice.ErrBalanceNotFound)
			},
			expectedCode:   http.StatusNotFound,
			expectedStatus: utils.StatusNotFound,
		},
		{
			name: "Internal server error",
			body: `{"service_code":"PULSA"}`,
			prepareMock: func() {
				service.EXPECT().
					Pay(authCtx(1), 1, "PULSA").
					Return(nil, errors.New("error"))
			},
			expectedCode:   http.StatusInternalServerError,
			expectedStatus: utils.StatusInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/transaction", bytes.NewBufferString(tt.body))
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()

			handler.Pay(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			resp := decodeEnvelope(t, w)
			assert.Equal(t, tt.expectedStatus, resp.Status)
			if tt.expectedCode == http.StatusOK {
				data := resp.Data.(map[string]any)
				assert.Equal(t, "INV17082023-0001", data["invoice_number"])
				assert.Equal(t, domain.PaymentTransaction, data["transaction_type"])
			}
		})
	}
}

func TestGetHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)

	history := []domain.Transaction{
		{
			InvoiceNumber:   "INV17082023-0002",
			TransactionType: domain.PaymentTransaction,
			Description:     "Pulsa",
			TotalAmount:     decimal.NewFromInt(10000),
			CreatedOn:       time.Now(),
		},
		{
			InvoiceNumber:   "INV17082023-0001",
			TransactionType: domain.TopUpTransaction,
			Description:     "Top Up Balance",
			TotalAmount:     decimal.NewFromInt(50000),
			CreatedOn:       time.Now().Add(-time.Hour),
		},
	}

	tests := []struct {
		name           string
		query          string
		prepareMock    func()
		expectedCode   int
		expectedStatus int
		expectedLen    int
	}{
		{
			name: "Full history",
			prepareMock: func() {
				service.EXPECT().
					GetHistory(authCtx(1), 1, 0, 0).
					Return(history, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: utils.StatusSuccess,
			expectedLen:    2,
		},
		{
			name:  "Paginated history",
			query: "?offset=1&limit=1",
			prepareMock: func() {
				service.EXPECT().
					GetHistory(authCtx(1), 1, 1, 1).
					Return(history[1:], nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: utils.StatusSuccess,
			expectedLen:    1,
		},
		{
			name:  "Negative parameters treated as zero",
			query: "?offset=-5&limit=-1",
			prepareMock: func() {
				service.EXPECT().
					GetHistory(authCtx(1), 1, 0, 0).
					Return(history, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: utils.StatusSuccess,
			expectedLen:    2,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetHistory(authCtx(1), 1, 0, 0).
					Return(nil, errors.New("error"))
			},
			expectedCode:   http.StatusInternalServerError,
			expectedStatus: utils.StatusInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/transaction/history"+tt.query, nil)
			r = r.WithContext(authCtx(1))
			w := httptest.NewRecorder()

			handler.GetHistory(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			resp := decodeEnvelope(t, w)
			assert.Equal(t, tt.expectedStatus, resp.Status)
			if tt.expectedCode == http.StatusOK {
				data := resp.Data.(map[string]any)
				assert.Len(t, data["records"], tt.expectedLen)
			}
		})
	}
}
