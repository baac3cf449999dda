package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/notekeeper-server/internal/logger"
	"github.com/dtroode/notekeeper-server/internal/model"
)

// User implements account lookup and maintenance operations.
type User struct {
	userStore model.UserStore
	logger    *logger.Logger
}

// NewUser creates a new User service.
func NewUser(userStore model.UserStore, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		logger:    logger,
	}
}

func (s *User) GetUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (s *User) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// SearchByEmail looks up a user by exact email match.
// Returns an empty slice when no user matches.
func (s *User) SearchByEmail(ctx context.Context, email string) ([]model.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return []model.User{}, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return []model.User{user}, nil
}

// UpdateName changes the display name. Email and password do not change
// through this path.
func (s *User) UpdateName(ctx context.Context, id uuid.UUID, name string) (model.User, error) {
	user, err := s.userStore.UpdateName(ctx, id, name)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: user updated", "user_id", id)

	return user, nil
}

// DeleteUser removes the account permanently and returns the removed
// record. Users have no recycle bin.
func (s *User) DeleteUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if err := s.userStore.Delete(ctx, id); err != nil {
		return model.User{}, fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted", "user_id", id)

	return user, nil
}
