package domain

import (
	"context"
	"time"
)

// Admin is a dashboard operator account. In practice there is exactly one,
// seeded at startup.
type Admin struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// AdminRepository defines persistence operations for operator accounts.
type AdminRepository interface {
	GetByID(ctx context.Context, id string) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	Create(ctx context.Context, admin *Admin) error
}
