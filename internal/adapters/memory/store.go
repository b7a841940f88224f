// Package memory provides an in-process StateStore. It is the default for
// the server and the workhorse for tests.
package memory

import (
	"context"
	"sync"

	"github.com/acrowfliedover/eGainAssignment/pkg/domain"
)

// Store implements ports.StateStore with a mutex-guarded map.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*domain.State
}

// New creates an empty memory store.
func New() *Store {
	return &Store{
		sessions: make(map[string]*domain.State),
	}
}

// Save persists a deep copy of the state so callers cannot alias the stored
// transcript.
func (s *Store) Save(ctx context.Context, sessionID string, state *domain.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = state.Clone()
	return nil
}

// Load retrieves a deep copy of the stored state.
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return state.Clone(), nil
}

// Delete removes the session.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// List returns all stored session IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids, nil
}
