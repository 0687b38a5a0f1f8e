// Package memory implements the record store repositories in process
// memory. It backs tests and local development with the same contracts as
// the MongoDB store; records keep insertion order, matching the document
// store's natural scan order.
package memory

import (
	"sync"

	"github.com/nobijoy/hedge-fund-app/internal/domain"
)

// Store holds all collections behind a single mutex.
type Store struct {
	mu            sync.Mutex
	users         []domain.User
	contributions []domain.Contribution
	admins        []domain.Admin
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

// Users returns the repository for the users collection.
func (s *Store) Users() *UserRepository { return &UserRepository{store: s} }

// Contributions returns the repository for the contributions collection.
func (s *Store) Contributions() *ContributionRepository {
	return &ContributionRepository{store: s}
}

// Admins returns the repository for the admins collection.
func (s *Store) Admins() *AdminRepository { return &AdminRepository{store: s} }
