// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/oops"
)

// SessionService provides registration, credential verification, and
// session-token lifecycle operations.
type SessionService struct {
	store  UserStore
	hasher PasswordHasher
	logger *slog.Logger
}

// NewSessionService creates a new SessionService.
func NewSessionService(store UserStore, hasher PasswordHasher) (*SessionService, error) {
	return NewSessionServiceWithLogger(store, hasher, slog.Default())
}

// NewSessionServiceWithLogger creates a new SessionService with an explicit
// logger.
func NewSessionServiceWithLogger(store UserStore, hasher PasswordHasher, logger *slog.Logger) (*SessionService, error) {
	if store == nil {
		return nil, oops.Code("AUTH_NIL_DEPENDENCY").Errorf("user store is required")
	}
	if hasher == nil {
		return nil, oops.Code("AUTH_NIL_DEPENDENCY").Errorf("password hasher is required")
	}
	if logger == nil {
		return nil, oops.Code("AUTH_NIL_DEPENDENCY").Errorf("logger is required")
	}
	return &SessionService{store: store, hasher: hasher, logger: logger}, nil
}

// dummyPasswordHash is used when a user doesn't exist to prevent timing
// attacks: verification still runs so response time stays consistent.
// This is NOT a real credential - it's a fake hash that will never match any password.
//
//nolint:gosec // G101: This is an intentionally fake hash for timing attack prevention, not a credential.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// Register creates a new user from an email and a plaintext password.
// Empty inputs fail with ErrInvalidInput; a taken email fails with
// ErrAlreadyExists. The plaintext never reaches the store.
func (s *SessionService) Register(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, oops.Code("AUTH_INVALID_INPUT").
			Wrap(ErrInvalidInput)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "hash password").
			Wrap(err)
	}

	user, err := s.store.Add(ctx, email, hashed)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			RecordRegistration(StatusAlreadyExists)
			return nil, oops.Code("AUTH_ALREADY_EXISTS").Wrap(err)
		}
		RecordRegistration(StatusError)
		return nil, oops.Code("AUTH_REGISTER_FAILED").
			With("operation", "add user").
			Wrap(err)
	}

	RecordRegistration(StatusSuccess)
	s.logger.InfoContext(ctx, "user registered", "user", user)
	return user, nil
}

// Login reports whether the email/password pair is valid. A missing user and
// a wrong password are indistinguishable to the caller; the missing-user
// path still runs hash verification against a dummy hash so response time
// does not leak account existence.
func (s *SessionService) Login(ctx context.Context, email, password string) bool {
	target := []byte(dummyPasswordHash)
	exists := false

	user, err := s.store.GetByEmail(ctx, email)
	switch {
	case err == nil:
		target = user.HashedPassword
		exists = true
	case errors.Is(err, ErrNotFound):
		// fall through with the dummy hash
	default:
		s.logger.ErrorContext(ctx, "login lookup failed", "error", err)
		RecordLogin(StatusError)
		return false
	}

	valid := s.hasher.Verify(target, password) && exists
	if valid {
		RecordLogin(StatusSuccess)
	} else {
		RecordLogin(StatusInvalid)
	}
	return valid
}

// CreateSession issues a fresh session token for the user with the given
// email, overwriting any prior token. When no such user exists it returns
// ("", nil): the caller must treat the empty token as "no session", the same
// way login failures collapse, rather than receive a lookup error.
func (s *SessionService) CreateSession(ctx context.Context, email string) (string, error) {
	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", oops.Code("AUTH_SESSION_CREATE_FAILED").
			With("operation", "get user by email").
			Wrap(err)
	}

	token, err := GenerateToken()
	if err != nil {
		return "", oops.Code("AUTH_SESSION_CREATE_FAILED").
			With("operation", "generate session token").
			Wrap(err)
	}

	if err := s.store.SetSessionID(ctx, user.ID, &token); err != nil {
		return "", oops.Code("AUTH_SESSION_CREATE_FAILED").
			With("operation", "persist session token").
			Wrap(err)
	}

	RecordSessionCreated()
	s.logger.InfoContext(ctx, "session created", "user", user)
	return token, nil
}

// Resolve returns the user holding the given session token, or nil when the
// token is empty, unknown, or the lookup fails. Infrastructure errors are
// logged and collapsed to nil so callers only ever branch on identity.
func (s *SessionService) Resolve(ctx context.Context, sessionID string) *User {
	if sessionID == "" {
		return nil
	}

	user, err := s.store.GetBySessionID(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.ErrorContext(ctx, "session lookup failed", "error", err)
		}
		return nil
	}
	return user
}

// Destroy clears the user's session token. Destroying an already-clear
// session, or the session of a user that no longer exists, is a no-op.
func (s *SessionService) Destroy(ctx context.Context, userID int64) error {
	if err := s.store.SetSessionID(ctx, userID, nil); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return oops.Code("AUTH_SESSION_DESTROY_FAILED").
			With("operation", "clear session token").
			With("user_id", userID).
			Wrap(err)
	}

	RecordSessionDestroyed()
	s.logger.InfoContext(ctx, "session destroyed", "user_id", userID)
	return nil
}
