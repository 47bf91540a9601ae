// File: tahanansafe/session/store.go
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tahanansafe/models"
	"tahanansafe/utils"
)

const sessionFileName = "session.json"

// Session is the locally cached authentication state. Presence of an access
// token defines "logged in".
type Session struct {
	AccessToken  string              `json:"accessToken"`
	RefreshToken string              `json:"refreshToken,omitempty"`
	User         *models.UserProfile `json:"user,omitempty"`
}

// persisted is the on-disk shape: every key the app stores on the device.
type persisted struct {
	AccessToken    string              `json:"accessToken,omitempty"`
	RefreshToken   string              `json:"refreshToken,omitempty"`
	User           *models.UserProfile `json:"user,omitempty"`
	OnboardingSeen bool                `json:"onboardingSeen,omitempty"`
	HasPIN         bool                `json:"hasPin,omitempty"`
	PINHash        string              `json:"pinHash,omitempty"`
	DeviceID       string              `json:"deviceId,omitempty"`
}

// Store keeps session state in memory mirrored to a file on disk. The two are
// kept in lock-step by routing every mutation through this object; construct
// one Store at process start and pass it by reference.
type Store struct {
	mu    sync.Mutex
	path  string
	state persisted
}

// Open loads (or initializes) the session file under dir. A device ID is
// generated on first use and kept for the life of the install.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	s := &Store{path: filepath.Join(dir, sessionFileName)}

	data, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &s.state); err != nil {
			// A corrupt session file is recoverable: start clean, force re-login.
			utils.GetLogger().Warn("session: discarding unreadable session file", zap.Error(err))
			s.state = persisted{}
		}
	case os.IsNotExist(err):
		// First run.
	default:
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	if s.state.DeviceID == "" {
		s.state.DeviceID = uuid.New().String()
		if err := s.flushLocked(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Save persists a new session, replacing any previous one.
func (s *Store) Save(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AccessToken = sess.AccessToken
	s.state.RefreshToken = sess.RefreshToken
	s.state.User = sess.User
	return s.flushLocked()
}

// Get returns the current session. Absent fields are zero-valued.
func (s *Store) Get() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Session{
		AccessToken:  s.state.AccessToken,
		RefreshToken: s.state.RefreshToken,
		User:         s.state.User,
	}
}

// Clear drops tokens, user cache and the local PIN. The device ID and the
// onboarding-seen flag survive logout.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AccessToken = ""
	s.state.RefreshToken = ""
	s.state.User = nil
	s.state.HasPIN = false
	s.state.PINHash = ""
	return s.flushLocked()
}

// AccessToken returns the bearer token, or "" when logged out.
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.AccessToken
}

// LoggedIn reports whether a usable access token is present.
func (s *Store) LoggedIn() bool {
	s.mu.Lock()
	token := s.state.AccessToken
	s.mu.Unlock()
	if token == "" {
		return false
	}
	return !utils.TokenExpired(token)
}

// DeviceID returns the per-install identifier.
func (s *Store) DeviceID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.DeviceID
}

// UpdateUser replaces the cached profile without touching tokens.
func (s *Store) UpdateUser(user *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = user
	return s.flushLocked()
}

func (s *Store) OnboardingSeen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.OnboardingSeen
}

func (s *Store) SetOnboardingSeen(seen bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.OnboardingSeen = seen
	return s.flushLocked()
}

func (s *Store) flushLocked() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session state: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}
