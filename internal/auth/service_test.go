package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/agenda-ufu/agenda/internal/store"
	"github.com/agenda-ufu/agenda/internal/testdb"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	return NewService(store.NewUsers(testdb.Open(t)), "@ufu.br")
}

func TestRegisterAndAuthenticate(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "x@ufu.br", "Ana", "Silva", "Abc123!@")

	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if user.ID == "" {
		t.Fatal("expected a generated user id")
	}

	if user.Email != "x@ufu.br" {
		t.Errorf("expected normalized email, got %q", user.Email)
	}

	authenticated, err := svc.Authenticate(ctx, "X@UFU.BR", "Abc123!@")

	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}

	if authenticated.ID != user.ID {
		t.Errorf("expected identity %q, got %q", user.ID, authenticated.ID)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	if _, err := svc.Register(context.Background(), "x@ufu.br", "Ana", "Silva", "abc"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestRegisterRejectsForeignDomain(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	if _, err := svc.Register(context.Background(), "x@gmail.com", "Ana", "Silva", "Abc123!@"); !errors.Is(err, ErrInvalidDomain) {
		t.Fatalf("expected ErrInvalidDomain, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "ana@ufu.br", "Ana", "Silva", "Abc123!@"); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	// Same email, different case.
	if _, err := svc.Register(ctx, "Ana@UFU.br", "Ana", "Silva", "Abc123!@"); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "ana@ufu.br", "Ana", "Silva", "Abc123!@"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, wrongPassword := svc.Authenticate(ctx, "ana@ufu.br", "Wrong123!@")
	_, unknownEmail := svc.Authenticate(ctx, "nobody@ufu.br", "Abc123!@")

	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}

	if !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
}

func TestAuthenticateRejectsForeignDomain(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	if _, err := svc.Authenticate(context.Background(), "x@gmail.com", "Abc123!@"); !errors.Is(err, ErrInvalidDomain) {
		t.Fatalf("expected ErrInvalidDomain, got %v", err)
	}
}
