package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/nobijoy/hedge-fund-app/internal/domain"
)

// UserRepository implements domain.UserRepository in memory.
type UserRepository struct {
	store *Store
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return append([]domain.User(nil), r.store.users...), nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user.ID = uuid.NewString()
	r.store.users = append(r.store.users, *user)
	return nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, u := range r.store.users {
		if u.ID == user.ID {
			r.store.users[i] = *user
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, u := range r.store.users {
		if u.ID == id {
			r.store.users = append(r.store.users[:i], r.store.users[i+1:]...)
			return nil
		}
	}
	return nil
}
