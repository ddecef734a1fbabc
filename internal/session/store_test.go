package session

import (
	"errors"
	"testing"
	"time"
)

func TestEstablishAndResolve(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Hour)

	token, err := s.Establish("user-1", "ana@ufu.br")

	if err != nil {
		t.Fatalf("Establish failed: %v", err)
	}

	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	identity, err := s.Resolve(token)

	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if identity.UserID != "user-1" || identity.Email != "ana@ufu.br" {
		t.Errorf("unexpected identity: %+v", identity)
	}
}

func TestResolveUnknownToken(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Hour)

	if _, err := s.Resolve("no-such-token"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	if _, err := s.Resolve(""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty token, got %v", err)
	}
}

func TestTerminateIsIdempotent(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Hour)

	token, err := s.Establish("user-1", "ana@ufu.br")

	if err != nil {
		t.Fatalf("Establish failed: %v", err)
	}

	s.Terminate(token)

	if _, err := s.Resolve(token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after Terminate, got %v", err)
	}

	// Terminating again must not panic or error.
	s.Terminate(token)
	s.Terminate("never-existed")
}

func TestResolveExpiredToken(t *testing.T) {
	t.Parallel()

	now := time.Now()
	s := NewStore(time.Hour)
	s.now = func() time.Time { return now }

	token, err := s.Establish("user-1", "ana@ufu.br")

	if err != nil {
		t.Fatalf("Establish failed: %v", err)
	}

	now = now.Add(2 * time.Hour)

	if _, err := s.Resolve(token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestPurgeExpired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	s := NewStore(time.Hour)
	s.now = func() time.Time { return now }

	expired, _ := s.Establish("user-1", "a@ufu.br")

	now = now.Add(30 * time.Minute)

	live, _ := s.Establish("user-2", "b@ufu.br")

	now = now.Add(45 * time.Minute)

	if purged := s.PurgeExpired(); purged != 1 {
		t.Fatalf("expected 1 purged session, got %d", purged)
	}

	if _, err := s.Resolve(expired); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected purged token to be gone, got %v", err)
	}

	if _, err := s.Resolve(live); err != nil {
		t.Errorf("expected live token to survive purge, got %v", err)
	}
}
