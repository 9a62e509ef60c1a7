package store

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// Session is the server-side record behind the opaque cookie token.
type Session struct {
	Token     string
	Email     string
	Role      string
	CollegeID uint
	ExpiresAt time.Time
}

// SessionStore holds sessions in process memory, matching the original
// deployment where sessions never outlive the server. Expired entries are
// dropped lazily on lookup.
type SessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]Session
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

func (s *SessionStore) Create(email, role string, collegeID uint) (Session, error) {
	token, err := newSessionToken()
	if err != nil {
		return Session{}, err
	}

	sess := Session{
		Token:     token,
		Email:     email,
		Role:      role,
		CollegeID: collegeID,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()
	return sess, nil
}

func (s *SessionStore) Get(token string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return Session{}, false
	}

	if time.Now().After(sess.ExpiresAt) {
		s.Destroy(token)
		return Session{}, false
	}
	return sess, true
}

func (s *SessionStore) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}

func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
