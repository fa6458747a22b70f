package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"ppob-api/internal/domain"
	"ppob-api/internal/service/authservice"
	"ppob-api/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) utils.Response {
	var resp utils.Response
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedStatus int
	}{
		{
			name: "Successful registration",
			body: `{"email":"user@example.com","first_name":"Budi","last_name":"Santoso","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "user@example.com", "Budi", "Santoso", "testpassword").
					Return(&domain.User{ID: 1, Email: "user@example.com"}, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: utils.StatusSuccess,
		},
		{
			name:           "Malformed body",
			body:           `{"email":`,
			prepareMock:    func() {},
			expectedCode:   http.StatusBadRequest,
			expectedStatus: utils.StatusInvalidInput,
		},
		{
			name:           "Invalid email",
			body:           `{"email":"not-an-email","first_name":"Budi","last_name":"Santoso","password":"testpassword"}`,
			prepareMock:    func() {},
			expectedCode:   http.StatusBadRequest,
			expectedStatus: utils.StatusInvalidInput,
		},
		{
			name:           "Blank names",
			body:           `{"email":"user@example.com","first_name":"  ","last_name":"","password":"testpassword"}`,
			prepareMock:    func() {},
			expectedCode:   http.StatusBadRequest,
			expectedStatus: utils.StatusInvalidInput,
		},
		{
			name:           "Short password",
			body:           `{"email":"user@example.com","first_name":"Budi","last_name":"Santoso","password":"short"}`,
			prepareMock:    func() {},
			expectedCode:   http.StatusBadRequest,
			expectedStatus: utils.StatusInvalidInput,
		},
		{
			name: "Email already registered",
			body: `{"email":"user@example.com","first_name":"Budi","last_name":"Santoso","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "user@example.com", "Budi", "Santoso", "testpassword").
					Return(nil, authservice.ErrEmailTaken)
			},
			expectedCode:   http.StatusBadRequest,
			expectedStatus: utils.StatusInvalidInput,
		},
		{
			name: "Internal server error",
			body: `{"email":"user@example.com","first_name":"Budi","last_name":"Santoso","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "user@example.com", "Budi", "Santoso", "testpassword").
					Return(nil, errors.New("error"))
			},
			expectedCode:   http.StatusInternalServerError,
			expectedStatus: utils.StatusInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/registration", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			resp := decodeEnvelope(t, w)
			assert.Equal(t, tt.expectedStatus, resp.Status)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedStatus int
		expectedToken  string
	}{
		{
			name: "Successful login",
			body: `{"email":"user@example.com","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "user@example.com", "testpassword").
					Return(&domain.User{ID: 1, Email: "user@example.com"}, nil)
				service.EXPECT().
					GenerateToken(1, "user@example.com").
					Return("generated-token", nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: utils.StatusSuccess,
			expectedToken:  "generated-token",
		},
		{
			name:           "Malformed body",
			body:           `{"email":`,
			prepareMock:    func() {},
			expectedCode:   http.StatusBadRequest,
			expectedStatus: utils.StatusInvalidInput,
		},
		{
			name:           "Invalid email",
			body:           `{"email":"not-an-email","password":"testpassword"}`,
			prepareMock:    func() {},
			expectedCode:   http.StatusBadRequest,
			expectedStatus: utils.StatusInvalidInput,
		},
		{
			name: "Wrong credentials",
			body: `{"email":"user@example.com","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "user@example.com", "wrongpassword").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:   http.StatusUnauthorized,
			expectedStatus: utils.StatusBadCredentials,
		},
		{
			name: "Token generation failure",
			body: `{"email":"user@example.com","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "user@example.com", "testpassword").
					Return(&domain.User{ID: 1, Email: "user@example.com"}, nil)
				service.EXPECT().
					GenerateToken(1, "user@example.com").
					Return("", errors.New("error"))
			},
			expectedCode:   http.StatusInternalServerError,
			expectedStatus: utils.StatusInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			resp := decodeEnvelope(t, w)
			assert.Equal(t, tt.expectedStatus, resp.Status)
			if tt.expectedToken != "" {
				data := resp.Data.(map[string]any)
				assert.Equal(t, tt.expectedToken, data["token"])
			}
		})
	}
}
