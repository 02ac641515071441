package mem

import (
	"context"
	"sync"
	"time"

	"github.com/yuqiannemo/WanderMind/internal/models/db_models"
	"github.com/yuqiannemo/WanderMind/pkg/utils"
)

// SessionStore keeps per-session trip parameters keyed by an opaque session
// id. Get returns utils.ErrSessionNotFound for a missing or expired key.
type SessionStore interface {
	Create(ctx context.Context, session *db_models.Session) error
	Get(ctx context.Context, sessionID string) (*db_models.Session, error)
}

type sessionEntry struct {
	session   db_models.Session
	expiresAt time.Time
}

// InMemorySessionStore is the default single-process backend.
type InMemorySessionStore struct {
	mu   sync.RWMutex
	data map[string]sessionEntry
	ttl  time.Duration
}

// NewInMemorySessionStore creates a store. A zero ttl means sessions never
// expire.
func NewInMemorySessionStore(ttl time.Duration) *InMemorySessionStore {
	return &InMemorySessionStore{
		data: make(map[string]sessionEntry),
		ttl:  ttl,
	}
}

func (s *InMemorySessionStore) Create(ctx context.Context, session *db_models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := sessionEntry{session: *session}
	if s.ttl > 0 {
		entry.expiresAt = time.Now().Add(s.ttl)
	}
	s.data[session.SessionID] = entry
	return nil
}

func (s *InMemorySessionStore) Get(ctx context.Context, sessionID string) (*db_models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.data[sessionID]
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		return nil, utils.ErrSessionNotFound
	}

	session := entry.session
	return &session, nil
}
