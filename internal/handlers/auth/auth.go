package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"ppob-api/internal/domain"
	"ppob-api/internal/dto"
	"ppob-api/internal/service/authservice"
	pkgauth "ppob-api/pkg/auth"
	"ppob-api/pkg/utils"
	"ppob-api/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, email, firstName, lastName, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GenerateToken(userID int, email string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new user account with a zero balance
//	@Tags			Membership
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegistrationRequestDTO	true	"Registration request body"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/registration [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegistrationRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.StatusInvalidInput, "Invalid request body")
		return
	}
	if !validate.IsEmail(req.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, utils.StatusInvalidInput, "Parameter email is not a valid email address")
		return
	}
	if !validate.NotBlank(req.FirstName) || !validate.NotBlank(req.LastName) {
		utils.RespondWithError(w, http.StatusBadRequest, utils.StatusInvalidInput, "Parameters first_name and last_name are required")
		return
	}
	if len(req.Password) < pkgauth.MinPasswordLength {
		utils.RespondWithError(w, http.StatusBadRequest, utils.StatusInvalidInput,
			fmt.Sprintf("Password must be at least %d characters", pkgauth.MinPasswordLength))
		return
	}

	_, err = h.authService.Register(r.Context(), req.Email, req.FirstName, req.LastName, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			utils.RespondWithError(w, http.StatusBadRequest, utils.StatusInvalidInput, "Email already registered")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, utils.StatusInternalError, "Internal server error")
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Registration successful, please log in", nil)
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with email and password and get a JWT token
//	@Tags			Membership
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	utils.Response{data=dto.LoginResponseDTO}
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.StatusInvalidInput, "Invalid request body")
		return
	}
	if !validate.IsEmail(req.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, utils.StatusInvalidInput, "Parameter email is not a valid email address")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, utils.StatusBadCredentials, "Invalid email or password")
		return
	}
	token, err := h.authService.GenerateToken(user.ID, user.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.StatusInternalError, "Error generating token")
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Login successful", dto.LoginResponseDTO{
		Token: token,
	})
}
