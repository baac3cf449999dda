package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/notekeeper-server/internal/logger"
	"github.com/dtroode/notekeeper-server/internal/model"
)

// Auth implements registration and sign-in over the user store.
type Auth struct {
	userStore   model.UserStore
	tokenIssuer model.TokenIssuer
	logger      *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(
	userStore model.UserStore,
	tokenIssuer model.TokenIssuer,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:   userStore,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

// Register creates a user with a bcrypt hash of the password.
// The email must not be in use; the match is case-sensitive exact.
func (a *Auth) Register(ctx context.Context, email, name, password string) (model.User, error) {
	a.logger.Debug("Auth service: registering user", "email", email)

	existingUser, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if existingUser.ID != uuid.Nil {
		a.logger.Info("Auth service: email already in use", "email", email)
		return model.User{}, model.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}

	user, err = a.userStore.Create(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to create user", "email", email, "error", err.Error())
		if errors.Is(err, model.ErrDuplicateEmail) {
			return model.User{}, model.ErrDuplicateEmail
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered", "user_id", user.ID, "email", email)

	return user, nil
}

// SignIn verifies the credentials and issues a bearer token.
// Possession of the token is the only session state: nothing is stored
// server-side, so the token stays usable until its expiry claim runs out.
func (a *Auth) SignIn(ctx context.Context, email, password string) (string, error) {
	a.logger.Debug("Auth service: signing in user", "email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		a.logger.Info("Auth service: password mismatch", "email", email)
		return "", model.ErrInvalidCredentials
	}

	token, err := a.tokenIssuer.Issue(user.ID, user.Name)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user signed in", "user_id", user.ID)

	return token, nil
}
