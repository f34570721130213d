package memory

import (
	"sync"

	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driven"
)

// Ensure KeyValueStore implements the interface.
var _ driven.KeyValueStore = (*KeyValueStore)(nil)

// KeyValueStore is an in-memory implementation of driven.KeyValueStore.
type KeyValueStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewKeyValueStore creates a new in-memory key-value store.
func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{
		values: make(map[string]string),
	}
}

// Get retrieves the value stored under key.
func (s *KeyValueStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok, nil
}

// Set stores value under key.
func (s *KeyValueStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Remove deletes the value stored under key.
func (s *KeyValueStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Len returns the number of stored keys.
func (s *KeyValueStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
