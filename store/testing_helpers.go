package store

// This file contains shared test helpers used across packages that need a
// store without touching the filesystem. It is not in a _test.go file so
// that other packages' tests can import it.

import (
	"sync"
)

// MemStore is an in-memory Store for tests. The error fields make failure
// paths reproducible: set them to force the next calls to fail.
type MemStore struct {
	mu     sync.RWMutex
	data   map[string][]byte
	GetErr error
	PutErr error

	// PutCalls counts successful and failed Put invocations.
	PutCalls int
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

// Get returns the value stored under key, or ErrNotFound.
func (m *MemStore) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	value, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Put stores value under key.
func (m *MemStore) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutCalls++
	if m.PutErr != nil {
		return m.PutErr
	}
	out := make([]byte, len(value))
	copy(out, value)
	m.data[key] = out
	return nil
}

// Close is a no-op.
func (m *MemStore) Close() error {
	return nil
}

// Seed stores a raw value without counting it as a Put call.
func (m *MemStore) Seed(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

// Raw returns the stored bytes for key, for asserting persisted layouts.
func (m *MemStore) Raw(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	return value, ok
}
