package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/nobijoy/hedge-fund-app/internal/domain"
)

// ContributionRepository implements domain.ContributionRepository in memory.
type ContributionRepository struct {
	store *Store
}

func (r *ContributionRepository) List(_ context.Context) ([]domain.Contribution, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return append([]domain.Contribution(nil), r.store.contributions...), nil
}

func (r *ContributionRepository) Create(_ context.Context, c *domain.Contribution) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c.ID = uuid.NewString()
	r.store.contributions = append(r.store.contributions, *c)
	return nil
}

func (r *ContributionRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, c := range r.store.contributions {
		if c.ID == id {
			r.store.contributions = append(r.store.contributions[:i], r.store.contributions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *ContributionRepository) RenameUser(_ context.Context, oldName, newName string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var updated int64
	for i := range r.store.contributions {
		if r.store.contributions[i].User == oldName {
			r.store.contributions[i].User = newName
			updated++
		}
	}
	return updated, nil
}
