package session

import (
	"context"
	"sync"
)

// Store is a persistence layer for the single authentication session.
// Get returns a nil session with a nil error when nothing is stored.
type Store interface {
	Store(ctx context.Context, accessToken, refreshToken, userID string) error
	Get(ctx context.Context) (*Session, error)
}

// MemoryStore keeps the session in process memory
type MemoryStore struct {
	mu      sync.RWMutex
	session *Session
}

// Store replaces the held session with the supplied values
func (m *MemoryStore) Store(_ context.Context, accessToken, refreshToken, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = &Session{AccessToken: accessToken, RefreshToken: refreshToken, UserID: userID}
	return nil
}

// Get returns a copy of the held session or nil when none was stored
func (m *MemoryStore) Get(_ context.Context) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return nil, nil
	}
	ret := *m.session
	return &ret, nil
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}
