package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/nobijoy/hedge-fund-app/internal/domain"
)

// AdminRepository implements domain.AdminRepository in memory.
type AdminRepository struct {
	store *Store
}

func (r *AdminRepository) GetByID(_ context.Context, id string) (*domain.Admin, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, a := range r.store.admins {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *AdminRepository) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, a := range r.store.admins {
		if a.Email == email {
			found := a
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *AdminRepository) Create(_ context.Context, admin *domain.Admin) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	admin.ID = uuid.NewString()
	r.store.admins = append(r.store.admins, *admin)
	return nil
}
