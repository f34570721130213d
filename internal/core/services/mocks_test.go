package services

import (
	"errors"
	"sync"

	"github.com/custodia-labs/sentinel-cli/internal/core/ports/driven"
)

var errStorage = errors.New("storage unavailable")

// mockKVStore implements driven.KeyValueStore with injectable failures.
type mockKVStore struct {
	mu        sync.Mutex
	values    map[string]string
	getErr    error
	setErr    error
	removeErr error
	sets      int
}

var _ driven.KeyValueStore = (*mockKVStore)(nil)

func newMockKVStore() *mockKVStore {
	return &mockKVStore{values: make(map[string]string)}
}

func (m *mockKVStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mockKVStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.sets++
	m.values[key] = value
	return nil
}

func (m *mockKVStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.removeErr != nil {
		return m.removeErr
	}
	delete(m.values, key)
	return nil
}

// mockNavigator records routes.
type mockNavigator struct {
	routes []string
	err    error
}

var _ driven.Navigator = (*mockNavigator)(nil)

func (m *mockNavigator) Navigate(route string) error {
	m.routes = append(m.routes, route)
	return m.err
}
