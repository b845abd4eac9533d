package sessionstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/yanqian/weather-companion/internal/domain/conversation"
)

type entry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Used for single instance
// deployments, dev and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entry
	now      func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]entry),
		now:      time.Now,
	}
}

// Get implements conversation.Store.
func (s *MemoryStore) Get(_ context.Context, id string) (conversation.Session, bool, error) {
	s.mu.RLock()
	rec, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return conversation.Session{}, false, nil
	}
	if s.expired(rec.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return conversation.Session{}, false, nil
	}
	// Sessions are stored encoded so callers never share slices with the store.
	var sess conversation.Session
	if err := json.Unmarshal(rec.payload, &sess); err != nil {
		return conversation.Session{}, false, err
	}
	return sess, true, nil
}

// Save stores the session, refreshing its TTL. A zero TTL never expires.
func (s *MemoryStore) Save(_ context.Context, sess conversation.Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	exp := time.Time{}
	if ttl > 0 {
		exp = s.now().Add(ttl)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = entry{payload: payload, expiresAt: exp}
	s.sweepLocked()
	return nil
}

// Len reports the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, rec := range s.sessions {
		if !s.expired(rec.expiresAt) {
			n++
		}
	}
	return n
}

func (s *MemoryStore) sweepLocked() {
	for id, rec := range s.sessions {
		if s.expired(rec.expiresAt) {
			delete(s.sessions, id)
		}
	}
}

func (s *MemoryStore) expired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(s.now())
}

var _ conversation.Store = (*MemoryStore)(nil)
