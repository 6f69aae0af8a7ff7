package appstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Session keys persisted across restarts. Only the token and the serialized
// profile survive; cart and wishlist are memory-only.
const (
	SessionKeyToken   = "auth_token"
	SessionKeyProfile = "user_profile"
)

// SessionStore persists small string values between runs.
type SessionStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// FileSessionStore keeps the session as a JSON object in a single file.
// A file that cannot be parsed is discarded and treated as an empty session.
type FileSessionStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

func NewFileSessionStore(path string) *FileSessionStore {
	s := &FileSessionStore{
		path:   path,
		values: map[string]string{},
	}
	s.load()
	return s
}

func (s *FileSessionStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		// Corrupt session data is purged, never surfaced.
		s.values = map[string]string{}
		os.Remove(s.path)
	}
}

func (s *FileSessionStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]
	return v, ok
}

func (s *FileSessionStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return s.flush()
}

func (s *FileSessionStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.flush()
}

func (s *FileSessionStore) flush() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("session dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}
