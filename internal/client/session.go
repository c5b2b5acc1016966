// Package client implements the monitor's session handling and API polling.
package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"elderguard/internal/domain/entity"
	"elderguard/internal/errors"
)

// Session is the persisted login of the monitor.
type Session struct {
	IDToken string      `json:"idToken"`
	Email   string      `json:"email"`
	Role    entity.Role `json:"role"`
}

// Valid reports whether the session carries enough to call the API.
func (s *Session) Valid() bool {
	return s != nil && s.IDToken != "" && s.Email != ""
}

// SessionStore keeps the session in a local JSON file.
type SessionStore struct {
	path string
	mu   sync.Mutex
}

// NewSessionStore returns a store backed by path.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Path returns the backing file.
func (s *SessionStore) Path() string {
	return s.path
}

// Load returns the stored session, or nil when none is stored.
func (s *SessionStore) Load() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "read session file")
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrap(err, "decode session file")
	}
	if !session.Valid() {
		return nil, nil
	}
	if session.Role == "" {
		session.Role = entity.RoleFamily
	}

	return &session, nil
}

// Save writes the session, readable by the current user only.
func (s *SessionStore) Save(session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode session")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "create session directory")
	}

	return errors.Wrap(os.WriteFile(s.path, data, 0o600), "write session file")
}

// Clear removes the stored session. Clearing an empty store is not an error.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove session file")
	}

	return nil
}
