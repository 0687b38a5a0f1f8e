package domain

import "context"

// User is a tracked fund member. Users carry no credentials of their own;
// the administrator manages the set and records contributions on their
// behalf. Name has no uniqueness constraint.
type User struct {
	ID   string
	Name string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}
