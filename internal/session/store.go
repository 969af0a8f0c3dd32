package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Store keeps sessions. Update runs fn against the latest copy of a session and saves the
// result only when fn returns nil; concurrent updates of one session are serialized.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Update(ctx context.Context, id uuid.UUID, fn func(*Session) error) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type memoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[uuid.UUID]*Session
}

func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
	}
}

func (m *memoryStore) Create(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictExpired()
	m.sessions[s.ID] = s.clone()
	return nil
}

func (m *memoryStore) Get(_ context.Context, id uuid.UUID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return s.clone(), nil
}

func (m *memoryStore) Update(_ context.Context, id uuid.UUID, fn func(*Session) error) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, err := m.lookup(id)
	if err != nil {
		return nil, err
	}

	working := current.clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	working.UpdatedAt = m.now()
	m.sessions[id] = working
	return working.clone(), nil
}

func (m *memoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.lookup(id); err != nil {
		return err
	}
	delete(m.sessions, id)
	return nil
}

// lookup must be called with mu held.
func (m *memoryStore) lookup(id uuid.UUID) (*Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if m.expired(s) {
		delete(m.sessions, id)
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *memoryStore) expired(s *Session) bool {
	return m.ttl > 0 && m.now().Sub(s.UpdatedAt) > m.ttl
}

func (m *memoryStore) evictExpired() {
	for id, s := range m.sessions {
		if m.expired(s) {
			delete(m.sessions, id)
		}
	}
}
