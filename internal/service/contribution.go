package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nobijoy/hedge-fund-app/internal/domain"
)

// ContributionService manages monthly contribution entries. Entries are
// create/delete only: amending one means deleting it and recording a new
// entry.
type ContributionService struct {
	contributions domain.ContributionRepository
	users         domain.UserRepository
}

// NewContributionService creates a new ContributionService.
func NewContributionService(contributions domain.ContributionRepository, users domain.UserRepository) *ContributionService {
	return &ContributionService{contributions: contributions, users: users}
}

// List returns all contributions.
func (s *ContributionService) List(ctx context.Context) ([]domain.Contribution, error) {
	return s.contributions.List(ctx)
}

// ListUsers returns all users, for the entry form's member select.
func (s *ContributionService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Create records a new contribution. All four business fields are
// required; an empty or non-numeric amount is rejected before any store
// call. Identical submissions are not de-duplicated: each call stores a
// distinct record.
func (s *ContributionService) Create(ctx context.Context, user, amount, month, year string) (*domain.Contribution, error) {
	user = strings.TrimSpace(user)
	amount = strings.TrimSpace(amount)
	month = strings.TrimSpace(month)
	year = strings.TrimSpace(year)

	if user == "" || amount == "" || month == "" || year == "" {
		return nil, fmt.Errorf("%w: user, amount, month, and year are required", domain.ErrInvalidInput)
	}

	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: amount must be a number", domain.ErrInvalidInput)
	}

	c := &domain.Contribution{
		User:   user,
		Amount: value,
		Month:  month,
		Year:   year,
	}
	if err := s.contributions.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create contribution: %w", err)
	}
	return c, nil
}

// Delete removes a contribution entry.
func (s *ContributionService) Delete(ctx context.Context, id string) error {
	if err := s.contributions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete contribution: %w", err)
	}
	return nil
}
