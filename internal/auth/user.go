// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import (
	"context"
	"log/slog"
)

// User represents an account record.
//
// SessionID is non-nil iff the user has an active session; ResetToken is
// non-nil iff a password reset is pending. Each user holds at most one of
// each: issuing a new token overwrites the previous value.
type User struct {
	ID             int64
	Email          string
	HashedPassword []byte
	SessionID      *string
	ResetToken     *string
}

// LogValue keeps credentials and tokens out of structured logs. Only the
// numeric ID is emitted; email is treated as PII.
func (u *User) LogValue() slog.Value {
	if u == nil {
		return slog.Value{}
	}
	return slog.GroupValue(slog.Int64("id", u.ID))
}

// UserStore is the credential-store contract the services consume. It is
// implemented by postgres.UserRepository and memory.Store.
//
// Finders return ErrNotFound (possibly wrapped) when no record matches.
// Mutations go through the explicit update methods and are visible to
// subsequent finder calls; implementations must serialize concurrent
// read-modify-write sequences for the same user, or apply them
// last-writer-wins without producing partial state.
type UserStore interface {
	// Add creates a user with the given email and password hash.
	// Returns ErrAlreadyExists if the email is taken.
	Add(ctx context.Context, email string, hashedPassword []byte) (*User, error)

	// GetByID retrieves a user by numeric ID.
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByEmail retrieves a user by email (case-sensitive, as stored).
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetBySessionID retrieves the user holding the given session token.
	GetBySessionID(ctx context.Context, sessionID string) (*User, error)

	// GetByResetToken retrieves the user holding the given reset token.
	GetByResetToken(ctx context.Context, resetToken string) (*User, error)

	// SetSessionID overwrites the user's session token; nil clears it.
	SetSessionID(ctx context.Context, id int64, sessionID *string) error

	// SetResetToken overwrites the user's reset token; nil clears it.
	SetResetToken(ctx context.Context, id int64, resetToken *string) error

	// UpdatePassword overwrites the stored hash and clears any pending
	// reset token in the same write.
	UpdatePassword(ctx context.Context, id int64, hashedPassword []byte) error
}
