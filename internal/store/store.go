// Package store holds the client-side key-value persistence used for
// state that survives between runs, such as the category registry.
// The remote API stays the system of record for everything else.
package store

import (
	"sync"

	"github.com/openbudget/budgetview/internal/domain"
)

// Store is a minimal key-value store. Set replaces the whole value for
// a key; Get returns domain.ErrNotFound for keys never written.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// MemoryStore keeps values in a map. Used in tests and as a fallback
// when no database path is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored
	return nil
}
