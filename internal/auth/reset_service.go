// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/oops"
)

// PasswordResetService handles password reset tokens.
//
// Unlike SessionService, lookup failures here surface as errors wrapping
// ErrNotFound rather than collapsing to nil: reset endpoints map them to a
// "forbidden" response, and the caller needs to distinguish that from
// infrastructure failures.
type PasswordResetService struct {
	store  UserStore
	hasher PasswordHasher
	logger *slog.Logger
}

// NewPasswordResetService creates a new PasswordResetService.
func NewPasswordResetService(store UserStore, hasher PasswordHasher) (*PasswordResetService, error) {
	return NewPasswordResetServiceWithLogger(store, hasher, slog.Default())
}

// NewPasswordResetServiceWithLogger creates a new PasswordResetService with
// an explicit logger.
func NewPasswordResetServiceWithLogger(store UserStore, hasher PasswordHasher, logger *slog.Logger) (*PasswordResetService, error) {
	if store == nil {
		return nil, oops.Code("AUTH_NIL_DEPENDENCY").Errorf("user store is required")
	}
	if hasher == nil {
		return nil, oops.Code("AUTH_NIL_DEPENDENCY").Errorf("password hasher is required")
	}
	if logger == nil {
		return nil, oops.Code("AUTH_NIL_DEPENDENCY").Errorf("logger is required")
	}
	return &PasswordResetService{store: store, hasher: hasher, logger: logger}, nil
}

// Issue generates a fresh reset token for the user with the given email,
// overwriting any pending token, and returns the plaintext token for
// delivery. Fails with ErrNotFound when no such user exists.
func (s *PasswordResetService) Issue(ctx context.Context, email string) (string, error) {
	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			RecordResetIssued(StatusNotFound)
			return "", oops.Code("RESET_UNKNOWN_EMAIL").Wrap(err)
		}
		RecordResetIssued(StatusError)
		return "", oops.Code("RESET_ISSUE_FAILED").
			With("operation", "get user by email").
			Wrap(err)
	}

	token, err := GenerateToken()
	if err != nil {
		RecordResetIssued(StatusError)
		return "", oops.Code("RESET_ISSUE_FAILED").
			With("operation", "generate reset token").
			Wrap(err)
	}

	if err := s.store.SetResetToken(ctx, user.ID, &token); err != nil {
		RecordResetIssued(StatusError)
		return "", oops.Code("RESET_ISSUE_FAILED").
			With("operation", "persist reset token").
			Wrap(err)
	}

	RecordResetIssued(StatusSuccess)
	s.logger.InfoContext(ctx, "reset token issued", "user", user)
	return token, nil
}

// Redeem consumes a reset token: the new password is hashed and stored, and
// the token is cleared in the same store write, making it single-use. A
// token that was never issued, or was already redeemed, fails with
// ErrNotFound.
func (s *PasswordResetService) Redeem(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return oops.Code("RESET_INVALID_INPUT").Wrap(ErrInvalidInput)
	}

	user, err := s.store.GetByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			RecordResetRedeemed(StatusNotFound)
			return oops.Code("RESET_TOKEN_INVALID").Wrap(err)
		}
		RecordResetRedeemed(StatusError)
		return oops.Code("RESET_REDEEM_FAILED").
			With("operation", "get user by reset token").
			Wrap(err)
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		RecordResetRedeemed(StatusError)
		return oops.Code("RESET_REDEEM_FAILED").
			With("operation", "hash new password").
			Wrap(err)
	}

	if err := s.store.UpdatePassword(ctx, user.ID, hashed); err != nil {
		RecordResetRedeemed(StatusError)
		return oops.Code("RESET_REDEEM_FAILED").
			With("operation", "update password").
			Wrap(err)
	}

	RecordResetRedeemed(StatusSuccess)
	s.logger.InfoContext(ctx, "password reset redeemed", "user", user)
	return nil
}
