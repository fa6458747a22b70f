package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "ppob-api/docs"
	"ppob-api/internal/config"
	authhandlers "ppob-api/internal/handlers/auth"
	informationhandlers "ppob-api/internal/handlers/information"
	profilehandlers "ppob-api/internal/handlers/profile"
	transactionhandlers "ppob-api/internal/handlers/transaction"
	"ppob-api/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer db.Close()

	services := &service.Services{
		AuthService:    authhandlers.NewMockService(ctrl),
		ProfileService: profilehandlers.NewMockService(ctrl),
		CatalogService: informationhandlers.NewMockService(ctrl),
		LedgerService:  transactionhandlers.NewMockService(ctrl),
	}
	cfg := &config.Config{
		UploadDir:     t.TempDir(),
		MaxUploadSize: 102400,
		BaseURL:       "http://localhost:8080",
	}

	h := New(services, db, cfg)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockProfileHandler := NewMockProfileHandler(ctrl)
	mockInformationHandler := NewMockInformationHandler(ctrl)
	mockTransactionHandler := NewMockTransactionHandler(ctrl)
	mockHealthHandler := NewMockHealthHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfileHandler.EXPECT().GetProfile(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfileHandler.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfileHandler.EXPECT().UpdateProfileImage(gomock.Any(), gomock.Any()).AnyTimes()
	mockInformationHandler.EXPECT().GetServices(gomock.Any(), gomock.Any()).AnyTimes()
	mockInformationHandler.EXPECT().GetBanners(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().TopUp(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().Pay(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().GetHistory(gomock.Any(), gomock.Any()).AnyTimes()
	mockHealthHandler.EXPECT().Check(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:        mockAuthHandler,
		ProfileHandler:     mockProfileHandler,
		InformationHandler: mockInformationHandler,
		TransactionHandler: mockTransactionHandler,
		HealthHandler:      mockHealthHandler,
		uploadDir:          t.TempDir(),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/registration", http.StatusOK},
		{"POST", "/login", http.StatusOK},
		{"GET", "/health", http.StatusOK},
		{"GET", "/profile", http.StatusUnauthorized},
		{"PUT", "/profile/update", http.StatusUnauthorized},
		{"PUT", "/profile/image", http.StatusUnauthorized},
		{"GET", "/banner", http.StatusUnauthorized},
		{"GET", "/services", http.StatusUnauthorized},
		{"GET", "/balance", http.StatusUnauthorized},
		{"POST", "/topup", http.StatusUnauthorized},
		{"POST", "/transaction", http.StatusUnauthorized},
		{"GET", "/transaction/history", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
