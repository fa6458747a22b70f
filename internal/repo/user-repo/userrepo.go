package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"ppob-api/internal/domain"
	"ppob-api/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, email, first_name, last_name, password_hash, profile_image FROM users WHERE email = $1", email).
		Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.PasswordHash, &user.ProfileImage)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, email, first_name, last_name, password_hash, profile_image FROM users WHERE id = $1", userID).
		Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.PasswordHash, &user.ProfileImage)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, first_name, last_name, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.FirstName, user.LastName, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) UpdateProfile(ctx context.Context, userID int, firstName, lastName string) (*domain.User, error) {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2
		WHERE id = $3
		RETURNING id, email, first_name, last_name, password_hash, profile_image
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, firstName, lastName, userID).
		Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.PasswordHash, &user.ProfileImage)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't update user profile", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) UpdateProfileImage(ctx context.Context, userID int, imageURL string) (*domain.User, error) {
	query := `
		UPDATE users
		SET profile_image = $1
		WHERE id = $2
		RETURNING id, email, first_name, last_name, password_hash, profile_image
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, imageURL, userID).
		Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.PasswordHash, &user.ProfileImage)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't update user profile image", zap.Error(err))
		return nil, err
	}
	return &user, nil
}
