// Package session keeps the user of the running reader process.
package session

import (
	"sync"

	"github.com/MKhiriev/go-feed-reader/models"
)

// Store holds at most one logged-in user. It is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	user models.LoggedInUser
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Set replaces the current user.
func (s *Store) Set(user models.LoggedInUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// User returns the current user and whether one is set.
func (s *Store) User() (models.LoggedInUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, !s.user.IsZero()
}

// Token returns the bearer token of the current user, or "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Token
}

// Clear forgets the current user.
func (s *Store) Clear() {
	s.Set(models.LoggedInUser{})
}
