// Package storage provides the durable key-value store behind user
// preferences. Values are opaque bytes; callers own the encoding.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.etcd.io/bbolt"
)

// KV is a string-keyed byte store.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

var (
	_ KV = (*DB)(nil)
	_ KV = (*Memory)(nil)
)

// ErrClosed is returned by operations on a closed DB.
var ErrClosed = errors.New("storage closed")

const (
	// FileName is the database file created inside the data directory.
	FileName    = "marquee.db"
	bucketName  = "local"
	openTimeout = time.Second
)

// DB is a bbolt-backed KV. Every Put runs in its own transaction, so a write
// is either fully applied or not at all.
type DB struct {
	db *bbolt.DB
}

// Open opens or creates the database in dataDir.
func Open(dataDir string) (*DB, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	path := filepath.Join(dataDir, FileName)
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketName)); err != nil {
			return fmt.Errorf("create bucket %s: %w", bucketName, err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &DB{db: db}, nil
}

// Path returns the database file path.
func (d *DB) Path() string {
	if d == nil || d.db == nil {
		return ""
	}
	return d.db.Path()
}

// Get returns the value stored under key. A missing key is not an error.
func (d *DB) Get(key string) ([]byte, bool, error) {
	if d == nil || d.db == nil {
		return nil, false, ErrClosed
	}
	var (
		value []byte
		found bool
	)
	err := d.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			// bbolt values are only valid inside the transaction.
			value = append([]byte(nil), v...)
			found = true
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
			return nil, false, ErrClosed
		}
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return value, found, nil
}

// Put stores value under key.
func (d *DB) Put(key string, value []byte) error {
	if d == nil || d.db == nil {
		return ErrClosed
	}
	err := d.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), value)
	})
	if err != nil {
		if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
			return ErrClosed
		}
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Close releases the database file lock.
func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

// Memory is an in-process KV used for ephemeral sessions and tests.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Put stores a copy of value under key.
func (m *Memory) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string][]byte)
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}
