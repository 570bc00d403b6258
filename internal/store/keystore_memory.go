package store

import (
	"context"
	"sync"
)

// memoryKeystore is a map-backed [SecureStorage] used in tests and by the
// "memory" backend. Values never leave the process, so no sealing applies.
type memoryKeystore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKeystore constructs an empty in-memory [SecureStorage].
func NewMemoryKeystore() SecureStorage {
	return &memoryKeystore{values: make(map[string]string)}
}

func (s *memoryKeystore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (s *memoryKeystore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memoryKeystore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
