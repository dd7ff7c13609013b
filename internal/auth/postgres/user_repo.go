// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package postgres implements auth.UserStore using PostgreSQL.
package postgres

import (
	"context"
	_ "embed"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"

	"github.com/holomush/gatekeeper/internal/auth"
)

//go:embed schema.sql
var schemaSQL string

// Schema returns the DDL for the user store.
func Schema() string {
	return schemaSQL
}

// poolIface is the subset of pgxpool.Pool used by the repository.
// pgxmock.PgxPoolIface also satisfies it, so unit tests run without a
// database.
type poolIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepository implements auth.UserStore using PostgreSQL.
type UserRepository struct {
	pool  poolIface
	owned *pgxpool.Pool // non-nil when the repository opened the pool itself
}

// NewUserRepository creates a repository on an existing pool. The caller
// keeps ownership of the pool.
func NewUserRepository(pool poolIface) *UserRepository {
	return &UserRepository{pool: pool}
}

// Open connects to dsn and returns a repository owning its pool. Close must
// be called when done.
func Open(ctx context.Context, dsn string) (*UserRepository, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, oops.Code("STORE_CONNECT_FAILED").
			With("operation", "create connection pool").
			Wrap(err)
	}
	return &UserRepository{pool: pool, owned: pool}, nil
}

// Close releases the connection pool if this repository owns one.
func (r *UserRepository) Close() {
	if r.owned != nil {
		r.owned.Close()
	}
}

// EnsureSchema applies the embedded DDL. All statements are idempotent.
func (r *UserRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		return oops.Code("STORE_SCHEMA_FAILED").
			With("operation", "apply schema").
			Wrap(err)
	}
	return nil
}

// Add creates a user with the given email and password hash.
func (r *UserRepository) Add(ctx context.Context, email string, hashedPassword []byte) (*auth.User, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, hashed_password)
		VALUES ($1, $2)
		RETURNING id, email, hashed_password, session_id, reset_token
	`, email, hashedPassword)

	user, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, oops.Code("STORE_DUPLICATE_EMAIL").
				Wrap(auth.ErrAlreadyExists)
		}
		return nil, oops.Code("STORE_ADD_FAILED").
			With("operation", "insert user").
			Wrap(err)
	}
	return user, nil
}

// GetByID retrieves a user by numeric ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*auth.User, error) {
	return r.getBy(ctx, `id = $1`, id)
}

// GetByEmail retrieves a user by email. Matching is case-sensitive: emails
// are compared exactly as stored.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	return r.getBy(ctx, `email = $1`, email)
}

// GetBySessionID retrieves the user holding the given session token.
func (r *UserRepository) GetBySessionID(ctx context.Context, sessionID string) (*auth.User, error) {
	return r.getBy(ctx, `session_id = $1`, sessionID)
}

// GetByResetToken retrieves the user holding the given reset token.
func (r *UserRepository) GetByResetToken(ctx context.Context, resetToken string) (*auth.User, error) {
	return r.getBy(ctx, `reset_token = $1`, resetToken)
}

// SetSessionID overwrites the user's session token; nil clears it.
func (r *UserRepository) SetSessionID(ctx context.Context, id int64, sessionID *string) error {
	return r.update(ctx, `UPDATE users SET session_id = $2, updated_at = $3 WHERE id = $1`, id, sessionID)
}

// SetResetToken overwrites the user's reset token; nil clears it.
func (r *UserRepository) SetResetToken(ctx context.Context, id int64, resetToken *string) error {
	return r.update(ctx, `UPDATE users SET reset_token = $2, updated_at = $3 WHERE id = $1`, id, resetToken)
}

// UpdatePassword overwrites the stored hash and clears any pending reset
// token in the same statement, keeping redemption a single write.
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword []byte) error {
	return r.update(ctx, `UPDATE users SET hashed_password = $2, reset_token = NULL, updated_at = $3 WHERE id = $1`, id, hashedPassword)
}

func (r *UserRepository) getBy(ctx context.Context, where string, arg any) (*auth.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, hashed_password, session_id, reset_token
		FROM users
		WHERE `+where, arg)

	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("STORE_USER_NOT_FOUND").
			Wrap(auth.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("STORE_GET_FAILED").
			With("operation", "get user").
			Wrap(err)
	}
	return user, nil
}

func (r *UserRepository) update(ctx context.Context, query string, id int64, value any) error {
	result, err := r.pool.Exec(ctx, query, id, value, time.Now())
	if err != nil {
		return oops.Code("STORE_UPDATE_FAILED").
			With("operation", "update user").
			With("id", id).
			Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("STORE_USER_NOT_FOUND").
			With("id", id).
			Wrap(auth.ErrNotFound)
	}
	return nil
}

// scanUser scans a single row into a User. Callers are responsible for
// handling pgx.ErrNoRows.
func scanUser(row pgx.Row) (*auth.User, error) {
	var user auth.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&user.SessionID,
		&user.ResetToken,
	)
	if err != nil {
		// Propagate pgx.ErrNoRows unchanged for callers to handle with context.
		return nil, err //nolint:wrapcheck // Callers wrap with context-specific info
	}
	return &user, nil
}

// Compile-time interface check.
var _ auth.UserStore = (*UserRepository)(nil)
