package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/washboard/internal/types"
)

// Persisted entry names.
const (
	UserKey  = "adminUser"
	TokenKey = "adminToken"
)

var ErrLoginFailed = errors.New("login failed")

// Store keeps string entries grouped by session id.
type Store interface {
	Get(ctx context.Context, sessionID, key string) (value string, ok bool, err error)
	Set(ctx context.Context, sessionID, key, value string) error
	Delete(ctx context.Context, sessionID string, keys ...string) error
}

type Authenticator interface {
	Login(ctx context.Context, username, password string) (*types.AuthResponse, error)
}

type User struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

type Session struct {
	id    string
	store Store

	mu    sync.RWMutex
	user  *User
	token string
}

func New(id string, store Store) *Session {
	return &Session{id: id, store: store}
}

func (s *Session) ID() string {
	return s.id
}

// Restore loads the persisted user and token. Anything missing or unparsable
// clears both entries and leaves the session unauthenticated.
func (s *Session) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user, s.token = nil, ""

	rawUser, okUser, err := s.store.Get(ctx, s.id, UserKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	token, okToken, err := s.store.Get(ctx, s.id, TokenKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if !okUser && !okToken {
		return nil
	}

	var user User
	if !okUser || !okToken || token == "" || json.Unmarshal([]byte(rawUser), &user) != nil || user.Username == "" {
		logger.Warn("Stored session is incomplete or corrupt, clearing it")
		return s.clear(ctx)
	}

	s.user = &user
	s.token = token
	return nil
}

// Login authenticates against the backend. The session becomes authenticated
// only when the backend reports success and returns a data payload.
func (s *Session) Login(ctx context.Context, auth Authenticator, username, password string) error {
	resp, err := auth.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
	if !resp.Success || resp.Data == nil {
		msg := resp.Message
		if msg == "" {
			msg = "backend did not accept the credentials"
		}
		return fmt.Errorf("%w: %s", ErrLoginFailed, msg)
	}

	user := User{Username: resp.Data.Username, Name: resp.Data.Name}
	if user.Username == "" {
		user.Username = username
	}
	token := resp.Data.Token
	if token == "" {
		token = "admin-session-" + uuid.NewString()
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Set(ctx, s.id, UserKey, string(raw)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if err := s.store.Set(ctx, s.id, TokenKey, token); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.user = &user
	s.token = token

	logger.Infof("User %s logged in", user.Username)
	return nil
}

func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clear(ctx)
}

// Invalidate is called when the backend answers 401.
func (s *Session) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		logger.Infof("Session of %s invalidated by backend", s.user.Username)
	}
	return s.clear(ctx)
}

func (s *Session) clear(ctx context.Context) error {
	s.user, s.token = nil, ""
	if err := s.store.Delete(ctx, s.id, UserKey, TokenKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Session) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
