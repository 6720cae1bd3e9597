// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (business layer) → validates, enforces rules, orchestrates
//	Repository (data layer)  → reads/writes the stores
//
// Services accept primitives and return domain models plus typed apperror
// failures — they know nothing about HTTP. The handler layer translates in
// both directions.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/abarbosa/recados/internal/apperror"
	"github.com/abarbosa/recados/internal/auth"
	"github.com/abarbosa/recados/internal/model"
	"github.com/abarbosa/recados/internal/repository"
)

// UserService handles account registration and credential verification.
//
// DEPENDENCIES (injected via NewUserService):
//   - users     repository.UserRepository → the account registry
//   - passwords *auth.PasswordService     → bcrypt hashing/verification
//   - logger    *slog.Logger              → structured logging
type UserService struct {
	users     repository.UserRepository
	passwords *auth.PasswordService
	logger    *slog.Logger
}

// NewUserService creates a UserService with all required dependencies.
func NewUserService(users repository.UserRepository, passwords *auth.PasswordService, logger *slog.Logger) *UserService {
	return &UserService{
		users:     users,
		passwords: passwords,
		logger:    logger,
	}
}

// Register validates the input, hashes the password, and stores a new
// account.
//
// VALIDATION ORDER IS PART OF THE CONTRACT:
// name → email → email-already-taken → password. The first failing check
// determines which error message the caller sees, so the checks must not be
// reordered. Note in particular that the duplicate-email check runs BEFORE
// the password presence check.
//
// The EmailExists pre-check produces the correctly ordered error; it is not
// what guarantees uniqueness. The registry re-checks under its own lock at
// insert time, so two concurrent registrations with the same email cannot
// both succeed — the loser of the race gets the same ErrConflict.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	if name == "" {
		return nil, apperror.ValidationFailed("name", "please provide a name")
	}
	if email == "" {
		return nil, apperror.ValidationFailed("email", "please provide an email")
	}

	taken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("checking email availability: %w", err)
	}
	if taken {
		return nil, apperror.Conflict("email already registered, use another")
	}

	if password == "" {
		return nil, apperror.ValidationFailed("password", "please provide a password")
	}

	// bcrypt is deliberately slow (~250ms at production cost) — this is the
	// one operation in the whole request that isn't effectively instant.
	// It runs before we touch the registry, so no lock is held meanwhile.
	hash, err := s.passwords.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	// Create assigns the ID. It can still return ErrConflict if another
	// request registered the same email while we were hashing.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		slog.Int64("id", user.ID),
		slog.String("email", user.Email),
	)

	return user, nil
}

// Authenticate verifies an email/password pair and returns the matching
// account.
//
// FAILURE MODES ARE DELIBERATELY DISTINCT:
//   - missing email or password  → ErrValidation (400)
//   - unknown email              → ErrNotFound (404)
//   - wrong password             → ErrUnauthorized (401)
//   - bcrypt primitive failure   → plain wrapped error (500)
//
// Three different things can go wrong after the lookup, and the API reports
// each one differently — they must not be collapsed into a single error.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" {
		return nil, apperror.ValidationFailed("email", "please provide a valid email")
	}
	if password == "" {
		return nil, apperror.ValidationFailed("password", "please provide a valid password")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Already a typed NotFound — let it propagate.
		return nil, err
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrMismatch) {
			s.logger.Info("login rejected", slog.String("email", email))
			return nil, apperror.Unauthorized("incorrect password")
		}
		// The primitive itself failed (e.g. corrupt stored hash). This is
		// our bug, not the client's — surface as an internal error.
		s.logger.Error("password verification failed",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("verifying password: %w", err)
	}

	s.logger.Info("user authenticated", slog.Int64("id", user.ID), slog.String("email", user.Email))
	return user, nil
}
