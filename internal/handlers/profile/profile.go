package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"ppob-api/internal/domain"
	"ppob-api/internal/dto"
	"ppob-api/internal/service/profileservice"
	"ppob-api/pkg/auth"
	"ppob-api/pkg/utils"
	"ppob-api/pkg/validate"
)

type Service interface {
	GetProfile(ctx context.Context, userID int) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int, firstName, lastName string) (*domain.User, error)
	UpdateProfileImage(ctx context.Context, userID int, imageURL string) (*domain.User, error)
}

// UploadConfig carries the image-upload settings the handler needs.
type UploadConfig struct {
	Dir     string
	MaxSize int64
	BaseURL string
}

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpeg",
	"image/png":  ".png",
}

type ProfileHandler struct {
	profileService Service
	upload         UploadConfig
}

func New(profileService Service, upload UploadConfig) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		upload:         upload,
	}
}

// GetProfile godoc
//
//	@Summary		Get user profile
//	@Tags			Membership
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response{data=dto.ProfileResponseDTO}
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	user, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, profileservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, utils.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, utils.StatusInternalError, "Internal server error")
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Success", profileToDTO(user))
}

// UpdateProfile godoc
//
//	@Summary		Update user name
//	@Tags			Membership
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateProfileRequestDTO	true	"Profile update payload"
//	@Success		200		{object}	utils.Response{data=dto.ProfileResponseDTO}
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/profile/update [put]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.UpdateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.StatusInvalidInput, "Invalid request body")
		return
	}
	if !validate.NotBlank(req.FirstName) || !validate.NotBlank(req.LastName) {
		utils.RespondWithError(w, http.StatusBadRequest, utils.StatusInvalidInput, "Parameters first_name and last_name are required")
		return
	}

	user, err := h.profileService.UpdateProfile(r.Context(), userID, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, profileservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, utils.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, utils.StatusInternalError, "Internal server error")
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Profile updated", profileToDTO(user))
}

// UpdateProfileImage godoc
//
//	@Summary		Upload a new profile image
//	@Description	Accepts a jpeg or png file in the multipart field "file"
//	@Tags			Membership
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Profile image"
//	@Success		200		{object}	utils.Response{data=dto.ProfileResponseDTO}
//	@Failure		400		{object}	utils.Response	"Missing file or bad image format"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/profile/image [put]
func (h *ProfileHandler) UpdateProfileImage(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	r.Body = http.MaxBytesReader(w, r.Body, h.upload.MaxSize)
	if err := r.ParseMultipartForm(h.upload.MaxSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.StatusInvalidInput, "File is missing or exceeds the size limit")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, utils.StatusInvalidInput, "File is missing")
		return
	}
	defer file.Close()

	ext, ok := allowedImageTypes[header.Header.Get("Content-Type")]
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, utils.StatusInvalidInput, "Image format must be jpeg or png")
		return
	}

	filename := fmt.Sprintf("profile-%d-%04d%s", time.Now().Unix(), rand.Intn(10000), ext)
	if err := h.saveFile(file, filename); err != nil {
		zap.L().Error("can't store uploaded image", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, utils.StatusInternalError, "Internal server error")
		return
	}

	imageURL := fmt.Sprintf("%s/uploads/%s", h.upload.BaseURL, filename)
	user, err := h.profileService.UpdateProfileImage(r.Context(), userID, imageURL)
	if err != nil {
		if errors.Is(err, profileservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, utils.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, utils.StatusInternalError, "Internal server error")
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Profile image updated", profileToDTO(user))
}

func (h *ProfileHandler) saveFile(src io.Reader, filename string) error {
	dst, err := os.Create(filepath.Join(h.upload.Dir, filename))
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

func profileToDTO(user *domain.User) dto.ProfileResponseDTO {
	return dto.ProfileResponseDTO{
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		ProfileImage: user.ProfileImage,
	}
}
