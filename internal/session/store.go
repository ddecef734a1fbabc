package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"
)

// ErrUnauthorized is returned for missing, unknown and expired tokens alike.
var ErrUnauthorized = errors.New("invalid or expired session")

const tokenBytes = 32

// Identity is what a session token resolves to.
type Identity struct {
	UserID string
	Email  string
}

type entry struct {
	identity  Identity
	expiresAt time.Time
}

// Store keeps sessions in memory, keyed by an opaque random token. All
// methods are safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	sessions map[string]entry
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)

	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Establish issues a fresh token bound to the given identity.
func (s *Store) Establish(userID, email string) (string, error) {
	token, err := newToken()

	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = entry{
		identity:  Identity{UserID: userID, Email: email},
		expiresAt: s.now().Add(s.ttl),
	}

	return token, nil
}

// Resolve returns the identity bound to token. It never mutates the store:
// an expired entry stays until Terminate or PurgeExpired removes it.
func (s *Store) Resolve(token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[token]

	if !ok || s.now().After(e.expiresAt) {
		return Identity{}, ErrUnauthorized
	}

	return e.identity, nil
}

// Terminate invalidates token. Terminating an unknown token is a no-op.
func (s *Store) Terminate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
}

// PurgeExpired drops entries past their expiry and reports how many went.
func (s *Store) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	purged := 0

	for token, e := range s.sessions {
		if now.After(e.expiresAt) {
			delete(s.sessions, token)
			purged++
		}
	}

	return purged
}
