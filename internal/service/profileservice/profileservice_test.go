package profileservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"ppob-api/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestGetProfile(t *testing.T) {
	service, userRepo := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:   "Profile found",
			userID: 1,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(context.Background(), 1).Return(&domain.User{
					ID:        1,
					Email:     "user@example.com",
					FirstName: "Budi",
					LastName:  "Santoso",
				}, nil)
			},
			expectedUser: &domain.User{
				ID:        1,
				Email:     "user@example.com",
				FirstName: "Budi",
				LastName:  "Santoso",
			},
		},
		{
			name:   "User not found",
			userID: 2,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(context.Background(), 2).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:   "Storage error",
			userID: 1,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(context.Background(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.GetProfile(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	service, userRepo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Profile updated",
			prepareMock: func() {
				userRepo.EXPECT().UpdateProfile(context.Background(), 1, "Siti", "Rahayu").Return(&domain.User{
					ID:        1,
					FirstName: "Siti",
					LastName:  "Rahayu",
				}, nil)
			},
		},
		{
			name: "User not found",
			prepareMock: func() {
				userRepo.EXPECT().UpdateProfile(context.Background(), 1, "Siti", "Rahayu").Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name: "Storage error",
			prepareMock: func() {
				userRepo.EXPECT().UpdateProfile(context.Background(), 1, "Siti", "Rahayu").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.UpdateProfile(context.Background(), 1, "Siti", "Rahayu")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Siti", user.FirstName)
			}
		})
	}
}

func TestUpdateProfileImage(t *testing.T) {
	service, userRepo := NewMock(t)

	imageURL := "http://localhost:8080/uploads/profile-1692264000-1234.jpeg"

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Image updated",
			prepareMock: func() {
				userRepo.EXPECT().UpdateProfileImage(context.Background(), 1, imageURL).Return(&domain.User{
					ID:           1,
					ProfileImage: imageURL,
				}, nil)
			},
		},
		{
			name: "User not found",
			prepareMock: func() {
				userRepo.EXPECT().UpdateProfileImage(context.Background(), 1, imageURL).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.UpdateProfileImage(context.Background(), 1, imageURL)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, imageURL, user.ProfileImage)
			}
		})
	}
}
