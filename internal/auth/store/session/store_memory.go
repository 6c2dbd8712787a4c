package session

import (
	"context"
	"sync"

	"hostelgate/internal/auth/models"
	"hostelgate/pkg/platform/sentinel"
)

// InMemorySessionStore holds at most one session. Saving a session replaces
// whatever was there.
type InMemorySessionStore struct {
	mu      sync.RWMutex
	current *models.Session
}

func New() *InMemorySessionStore {
	return &InMemorySessionStore{}
}

// Save stores a copy of session as the current one.
func (s *InMemorySessionStore) Save(_ context.Context, session *models.Session) error {
	if session == nil || session.ID == "" {
		return sentinel.ErrInvalidState
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *session
	s.current = &cp
	return nil
}

// Current returns a copy of the active session or sentinel.ErrNotFound.
func (s *InMemorySessionStore) Current(_ context.Context) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, sentinel.ErrNotFound
	}
	cp := *s.current
	return &cp, nil
}

// Clear empties the slot. Clearing an empty slot is not an error.
func (s *InMemorySessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	return nil
}
