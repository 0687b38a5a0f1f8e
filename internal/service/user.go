package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nobijoy/hedge-fund-app/internal/domain"
)

// UserService manages the tracked fund members.
type UserService struct {
	users         domain.UserRepository
	contributions domain.ContributionRepository
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository, contributions domain.ContributionRepository) *UserService {
	return &UserService{users: users, contributions: contributions}
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Create adds a new user. A blank name is rejected before any store call.
func (s *UserService) Create(ctx context.Context, name string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	user := &domain.User{Name: name}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Rename updates a user's name and reconciles the denormalized name copy
// on existing contributions, so the dashboard keeps grouping them under
// the new name.
func (s *UserService) Rename(ctx context.Context, id, name string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldName := user.Name
	user.Name = name
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	if oldName != name {
		updated, err := s.contributions.RenameUser(ctx, oldName, name)
		if err != nil {
			return nil, fmt.Errorf("reconcile contributions: %w", err)
		}
		slog.Info("reconciled contributions after rename",
			"old_name", oldName, "new_name", name, "updated", updated)
	}
	return user, nil
}

// Delete removes a user. Existing contributions keep the name recorded at
// creation time.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
