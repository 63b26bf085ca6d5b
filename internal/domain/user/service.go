package user

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, email, password, fullName string) (User, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
	Get(ctx context.Context, id int64) (User, error)
}

// Hasher is the one-way credential transform. Verify fails closed: any
// malformed stored hash is a mismatch, never an error surfaced upward.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) bool
}

type Service struct {
	repo   Repository
	hasher Hasher
	log    *slog.Logger
}

func NewService(repo Repository, hasher Hasher, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		log:    log.With(slog.String("component", "user_service")),
	}
}

func (s *Service) Register(ctx context.Context, email, password, fullName string) (User, error) {
	email = NormalizeEmail(email)

	if err := validateSignup(email, password); err != nil {
		s.log.Debug("signup validation failed", "error", err)
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.repo.Create(ctx, email, hash, strings.TrimSpace(fullName))
	if err != nil {
		return User{}, err
	}

	s.log.Info("account created", "user_id", u.ID)
	return u, nil
}

// Authenticate resolves email+password to an account. Unknown email and
// wrong password are indistinguishable to the caller so registered
// identifiers cannot be enumerated.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = NormalizeEmail(email)

	if err := validateLogin(email, password); err != nil {
		return User{}, ErrInvalidCredentials
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.log.Debug("login for unknown email")
		return User{}, ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		s.log.Debug("login password mismatch", "user_id", u.ID)
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	return s.repo.FindByID(ctx, id)
}
