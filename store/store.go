// Package store defines the narrow persistence contract the rest of the
// application talks to, plus typed helpers for the well-known keys. Concrete
// implementations live in subpackages and register themselves at init time.
package store

import (
	"errors"
	"fmt"
	"sync"
)

// Well-known keys. Every piece of persisted state lives under one of these.
const (
	// KeyQuotes holds the full quote list as a JSON array
	KeyQuotes = "quotes"
	// KeySnapshot holds the cached remote snapshot as a JSON object keyed by record ID
	KeySnapshot = "remote-snapshot"
	// KeyLastViewed holds the most recently displayed quote as a JSON object
	KeyLastViewed = "last-viewed"
	// KeyLastFilter holds the active category filter as a plain string
	KeyLastFilter = "last-filter"
	// KeyLastSyncTime holds the last successful sync time in RFC 3339
	KeyLastSyncTime = "last-sync-time"
	// KeySyncInterval holds the auto-sync interval in milliseconds as a decimal string
	KeySyncInterval = "sync-interval"
)

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Store is the persistence contract. Implementations must be safe for
// concurrent use; the sync orchestrator and the UI touch the store from
// different goroutines.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Put stores value under key, replacing any previous value.
	Put(key string, value []byte) error
	// Close releases the underlying resources.
	Close() error
}

// StorageError wraps a failure from a concrete store implementation with
// enough context to log usefully.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("store %s %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a StorageError for the given operation and key.
func NewStorageError(op, key string, err error) *StorageError {
	return &StorageError{Op: op, Key: key, Err: err}
}

// Constructor creates a store implementation rooted at the given path.
type Constructor func(path string) (Store, error)

var (
	registryMu   sync.RWMutex
	constructors = make(map[string]Constructor)
)

// Register makes a store implementation available under a type name.
// Implementations call this from their init function; the main package
// blank-imports them to trigger registration.
func Register(storeType string, constructor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	constructors[storeType] = constructor
}

// Open creates the store registered under storeType.
func Open(storeType, path string) (Store, error) {
	registryMu.RLock()
	constructor, ok := constructors[storeType]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unsupported store type: %s", storeType)
	}
	return constructor(path)
}

// Types returns the registered store type names.
func Types() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	types := make([]string, 0, len(constructors))
	for t := range constructors {
		types = append(types, t)
	}
	return types
}
