package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"juria/internal/domain"
)

const sessionFilename = "session.json"

// sessionSlot is the single persisted record.
type sessionSlot struct {
	Username string `json:"username"`
}

// SessionFileStore persists the logged-in username under the app home dir.
//
// The slot is read leniently: an I/O or decode failure degrades to "logged
// out" and is logged, never surfaced. A damaged file can cost a session but
// can never fake one.
type SessionFileStore struct {
	dir string
	mu  sync.Mutex
	log *zap.Logger
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string, log *zap.Logger) *SessionFileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionFileStore{dir: dir, log: log}
}

// Login overwrites the slot with username, unconditionally.
func (s *SessionFileStore) Login(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(filepath.Join(s.dir, sessionFilename), sessionSlot{Username: username}, 0o600)
}

// Logout clears the slot. A missing slot is not an error.
func (s *SessionFileStore) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(filepath.Join(s.dir, sessionFilename))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// CurrentUser reports the logged-in username, if any.
func (s *SessionFileStore) CurrentUser() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var slot sessionSlot
	if err := readJSON(filepath.Join(s.dir, sessionFilename), &slot); err != nil {
		s.log.Warn("session slot unreadable, treating as logged out", zap.Error(err))
		return "", false
	}
	if slot.Username == "" {
		return "", false
	}
	return slot.Username, true
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
