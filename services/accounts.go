package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpupo63/travel-blog-backend/errs"
	"github.com/rpupo63/travel-blog-backend/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = bcrypt.DefaultCost

type userStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Add(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id uint, hash string) error
}

// EnsureAdmin makes sure the owner's account exists with the given password.
// An existing row keeps its id; only a changed password is rewritten.
func EnsureAdmin(ctx context.Context, users userStore, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, errors.New("admin username and password are required")
	}

	existing, err := users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		if CheckPassword(existing.Password, password) {
			return existing, nil
		}
		hash, err := HashPassword(password)
		if err != nil {
			return nil, err
		}
		if err := users.UpdatePassword(ctx, existing.ID, hash); err != nil {
			return nil, fmt.Errorf("update admin password: %w", err)
		}
		existing.Password = hash
		log.Info().Str("username", username).Msg("admin password rotated")
		return existing, nil
	case errs.IsNotFound(err):
	default:
		return nil, fmt.Errorf("look up admin: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{Username: username, Password: hash}
	if err := users.Add(ctx, user); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	log.Info().Str("username", username).Uint("userId", user.ID).Msg("admin account created")
	return user, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
