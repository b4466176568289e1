package session

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/algoviz/pkg/errors"
)

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID. Missing or expired sessions return an
	// error with code errors.ErrCodeSessionNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// Set stores a session and extends its expiry.
	Set(ctx context.Context, s *Session) error

	// Delete removes a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired sessions.
	Cleanup(ctx context.Context) error
}

// MemoryStore keeps sessions in process memory. Sessions expire ttl after
// their last Set.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]*Session
}

// NewMemoryStore creates an empty store. A non-positive ttl selects
// [DefaultTTL].
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{ttl: ttl, sessions: make(map[string]*Session)}
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, errors.New(errors.ErrCodeSessionNotFound, "session %q not found", id)
	}
	if s.IsExpired() {
		m.Delete(ctx, id)
		return nil, errors.New(errors.ErrCodeSessionNotFound, "session %q expired", id)
	}
	return s.clone(), nil
}

func (m *MemoryStore) Set(ctx context.Context, s *Session) error {
	if s == nil || s.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "session has no id")
	}
	c := s.clone()
	c.ExpiresAt = time.Now().Add(m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = c
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) Cleanup(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for id, s := range m.sessions {
		if now.After(s.ExpiresAt) {
			delete(m.sessions, id)
		}
	}
	return nil
}

// Len returns the number of stored sessions, expired ones included until
// the next Cleanup.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// TTL returns the store's expiry window.
func (m *MemoryStore) TTL() time.Duration { return m.ttl }

var _ Store = (*MemoryStore)(nil)
