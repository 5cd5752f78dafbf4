// Package localstore is a small file-backed key/value store. It holds the
// only durable client-side state: the access token, the active account id,
// and the logged-in user id.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Well-known keys.
const (
	KeyAccessToken = "access_token"
	KeyAccountID   = "account_id"
	KeyUserID      = "user_id"
	KeyUserEmail   = "user_email"
)

// Store persists string keys to a JSON file. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	path string
	data map[string]string
}

// Open loads the store at path, creating parent directories as needed.
// A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: map[string]string{}}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("localstore: create state dir: %w", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("localstore: read state file: %w", err)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("localstore: parse state file: %w", err)
		}
	}

	return s, nil
}

// Get returns the value for key, or "" when unset.
func (s *Store) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[key]
}

// Set stores key=value and flushes to disk.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.flushLocked()
}

// Remove deletes key and flushes to disk. Removing a missing key is a no-op.
func (s *Store) Remove(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data, k)
	}
	return s.flushLocked()
}

func (s *Store) flushLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "\t")
	if err != nil {
		return fmt.Errorf("localstore: encode state: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("localstore: write state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("localstore: replace state file: %w", err)
	}
	return nil
}
