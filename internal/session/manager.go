package session

import (
	"context"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/washboard/internal/auth"
	"golang.org/x/crypto/blake2b"
)

type ctxKey struct{}

// Manager maps browser requests to sessions. The browser only ever sees the
// raw session id inside a signed cookie; stores are keyed by its hash.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
}

func NewManager(store Store, secret []byte, ttl time.Duration) *Manager {
	return &Manager{store: store, secret: secret, ttl: ttl}
}

func storageKey(sessionID string) string {
	sum := blake2b.Sum256([]byte(sessionID))
	return hex.EncodeToString(sum[:])
}

// Load restores the session named by the request cookie, or starts a new one.
// The returned id is the raw id to put back in the cookie.
func (m *Manager) Load(ctx context.Context, r *http.Request) (*Session, string) {
	sessionID, err := auth.ReadSessionID(r, m.secret)
	if err != nil {
		sessionID = uuid.NewString()
	}

	s := New(storageKey(sessionID), m.store)
	if err := s.Restore(ctx); err != nil {
		logger.Errorf("Could not restore session: %s", err.Error())
	}
	return s, sessionID
}

func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, sessionID := m.Load(r.Context(), r)

		if err := auth.SetSessionCookie(sessionID, w, m.secret, m.ttl); err != nil {
			logger.Errorf("Could not set session cookie: %s", err.Error())
			http.Error(w, "Something went wrong", http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}
