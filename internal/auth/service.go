package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/agenda-ufu/agenda/internal/models"
	"github.com/agenda-ufu/agenda/internal/store"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidDomain      = errors.New("email domain not allowed")
	ErrAlreadyRegistered  = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password does not meet requirements")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// dummyHash is compared against when no user matches, so that a login
// attempt for an unknown email costs the same as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("agenda-dummy-password"), bcrypt.DefaultCost)

// Service implements signup and login on top of the users store.
type Service struct {
	users  *store.Users
	domain string
}

// NewService restricts registration and login to emails ending in domain,
// e.g. "@ufu.br".
func NewService(users *store.Users, domain string) *Service {
	return &Service{users: users, domain: strings.ToLower(domain)}
}

func (s *Service) normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if !strings.HasSuffix(email, s.domain) {
		return "", ErrInvalidDomain
	}

	return email, nil
}

func (s *Service) Register(ctx context.Context, email, firstName, lastName, password string) (*models.User, error) {
	email, err := s.normalizeEmail(email)

	if err != nil {
		return nil, err
	}

	if !ValidatePassword(password) {
		return nil, ErrWeakPassword
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: string(passwordHash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Concurrent signup for the same email loses the race here.
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}

	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email, err := s.normalizeEmail(email)

	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, email)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a comparison so unknown emails and wrong passwords
			// are indistinguishable, in timing as well as in the error.
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == "" {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
