package auth

import (
	"sync"
	"time"

	"github.com/labstack/gommon/random"
)

// CookieName is the session cookie issued on register/login.
const CookieName = "kiratakip_session"

const tokenLength = 64

// Session is a server-side login session identified by an opaque token.
type Session struct {
	Token     string
	UserID    int
	ExpiresAt time.Time
}

// SessionManager keeps sessions in memory. Like the rest of the application
// state, sessions do not survive a restart.
type SessionManager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]Session
}

// NewSessionManager creates a manager issuing sessions with the given TTL.
func NewSessionManager(ttl time.Duration) *SessionManager {
	return &SessionManager{
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

// Create issues a new session for the user.
func (m *SessionManager) Create(userID int) Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess := Session{
		Token:     random.String(tokenLength),
		UserID:    userID,
		ExpiresAt: time.Now().Add(m.ttl),
	}
	m.sessions[sess.Token] = sess
	return sess
}

// Get returns the session for the token. Expired sessions are dropped on
// access and reported as missing.
func (m *SessionManager) Get(token string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[token]
	if !ok {
		return Session{}, false
	}
	if time.Now().After(sess.ExpiresAt) {
		delete(m.sessions, token)
		return Session{}, false
	}
	return sess, true
}

// Delete removes the session for the token, if any.
func (m *SessionManager) Delete(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

// Purge drops every expired session and returns how many were removed.
func (m *SessionManager) Purge() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	removed := 0
	for token, sess := range m.sessions {
		if now.After(sess.ExpiresAt) {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed
}

// Count returns the number of live sessions, expired ones included until the
// next purge.
func (m *SessionManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
