package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/vaultmap/pkg/domain"
)

// Store implements ports.ResultCache in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]entry
	ttl  time.Duration
	now  func() time.Time
	mu   sync.RWMutex
}

type entry struct {
	m       domain.RenderedMap
	expires time.Time
}

// NewStore creates a new in-memory store. A zero ttl never expires entries.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		data: make(map[string]entry),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Put stores a copy of m.
func (s *Store) Put(ctx context.Context, key string, m *domain.RenderedMap) error {
	e := entry{m: clone(m)}
	if s.ttl > 0 {
		e.expires = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = e
	return nil
}

// Get returns a copy of the stored map so callers can't mutate the store.
func (s *Store) Get(ctx context.Context, key string) (*domain.RenderedMap, error) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrCacheMiss
	}
	if !e.expires.IsZero() && s.now().After(e.expires) {
		s.mu.Lock()
		delete(s.data, key)
		s.mu.Unlock()
		return nil, domain.ErrCacheMiss
	}
	out := clone(&e.m)
	return &out, nil
}

// Len returns the number of stored entries, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func clone(m *domain.RenderedMap) domain.RenderedMap {
	out := *m
	out.Colors = append([]domain.ColorName(nil), m.Colors...)
	out.Assignments = make(map[domain.ColorName]domain.Glyph, len(m.Assignments))
	for k, v := range m.Assignments {
		out.Assignments[k] = v
	}
	return out
}
