package session

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps sessions in process; they are lost on restart.
type MemoryStore struct {
	c   *cache.Cache
	now func() time.Time
}

func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		c:   cache.New(cache.NoExpiration, cleanupInterval),
		now: time.Now,
	}
}

func (m *MemoryStore) Save(_ context.Context, s Session) error {
	ttl := s.ExpiresAt.Sub(m.now())
	if ttl <= 0 {
		return nil
	}
	m.c.Set(s.ID, s, ttl)
	return nil
}

func (m *MemoryStore) Load(_ context.Context, id string) (Session, error) {
	v, ok := m.c.Get(id)
	if !ok {
		return Session{}, ErrNotFound
	}
	s, ok := v.(Session)
	if !ok || s.Expired(m.now()) {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.c.Delete(id)
	return nil
}

// Len reports stored sessions, including ones not yet swept.
func (m *MemoryStore) Len() int { return m.c.ItemCount() }
