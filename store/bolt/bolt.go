// Package bolt implements the store contract on top of a single-file
// bbolt database. This is the default store: no server, no cgo, safe for
// concurrent readers.
package bolt

import (
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"gosyncquotes/store"
)

var bucketState = []byte("state")

func init() {
	store.Register("bolt", func(path string) (store.Store, error) {
		return Open(path)
	})
}

// Store persists keys in one bbolt bucket.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the database file and makes sure the state bucket
// exists. Parent directories are created as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketState)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize state bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the value stored under key, or store.ErrNotFound.
func (s *Store) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketState).Get([]byte(key))
		if data == nil {
			return store.ErrNotFound
		}
		// The slice is only valid inside the transaction.
		value = make([]byte, len(data))
		copy(value, data)
		return nil
	})
	if err != nil {
		if err == store.ErrNotFound {
			return nil, err
		}
		return nil, store.NewStorageError("get", key, err)
	}
	return value, nil
}

// Put stores value under key, replacing any previous value.
func (s *Store) Put(key string, value []byte) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketState).Put([]byte(key), value)
	})
	if err != nil {
		return store.NewStorageError("put", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
