// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package memory implements auth.UserStore in process memory.
//
// The store is safe for concurrent use: a single mutex serializes every
// operation, so concurrent read-modify-write sequences for the same user
// apply last-writer-wins without partial state. It backs unit tests and
// serves as the second implementation proving the store contract.
package memory

import (
	"context"
	"sync"

	"github.com/samber/oops"

	"github.com/holomush/gatekeeper/internal/auth"
)

// Store is an in-memory auth.UserStore.
type Store struct {
	mu     sync.Mutex
	users  map[int64]*auth.User
	nextID int64
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{users: make(map[int64]*auth.User), nextID: 1}
}

// Add creates a user with the given email and password hash.
func (s *Store) Add(_ context.Context, email string, hashedPassword []byte) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return nil, oops.Code("STORE_DUPLICATE_EMAIL").
				Wrap(auth.ErrAlreadyExists)
		}
	}

	user := &auth.User{
		ID:             s.nextID,
		Email:          email,
		HashedPassword: append([]byte(nil), hashedPassword...),
	}
	s.users[user.ID] = user
	s.nextID++
	return cloneUser(user), nil
}

// GetByID retrieves a user by numeric ID.
func (s *Store) GetByID(_ context.Context, id int64) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, notFound()
	}
	return cloneUser(u), nil
}

// GetByEmail retrieves a user by email (case-sensitive).
func (s *Store) GetByEmail(_ context.Context, email string) (*auth.User, error) {
	return s.find(func(u *auth.User) bool { return u.Email == email })
}

// GetBySessionID retrieves the user holding the given session token.
func (s *Store) GetBySessionID(_ context.Context, sessionID string) (*auth.User, error) {
	return s.find(func(u *auth.User) bool {
		return u.SessionID != nil && *u.SessionID == sessionID
	})
}

// GetByResetToken retrieves the user holding the given reset token.
func (s *Store) GetByResetToken(_ context.Context, resetToken string) (*auth.User, error) {
	return s.find(func(u *auth.User) bool {
		return u.ResetToken != nil && *u.ResetToken == resetToken
	})
}

// SetSessionID overwrites the user's session token; nil clears it.
func (s *Store) SetSessionID(_ context.Context, id int64, sessionID *string) error {
	return s.mutate(id, func(u *auth.User) {
		u.SessionID = cloneString(sessionID)
	})
}

// SetResetToken overwrites the user's reset token; nil clears it.
func (s *Store) SetResetToken(_ context.Context, id int64, resetToken *string) error {
	return s.mutate(id, func(u *auth.User) {
		u.ResetToken = cloneString(resetToken)
	})
}

// UpdatePassword overwrites the stored hash and clears any pending reset
// token, mirroring the single UPDATE the Postgres store performs.
func (s *Store) UpdatePassword(_ context.Context, id int64, hashedPassword []byte) error {
	return s.mutate(id, func(u *auth.User) {
		u.HashedPassword = append([]byte(nil), hashedPassword...)
		u.ResetToken = nil
	})
}

func (s *Store) find(match func(*auth.User) bool) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if match(u) {
			return cloneUser(u), nil
		}
	}
	return nil, notFound()
}

func (s *Store) mutate(id int64, apply func(*auth.User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return notFound()
	}
	apply(u)
	return nil
}

func notFound() error {
	return oops.Code("STORE_USER_NOT_FOUND").Wrap(auth.ErrNotFound)
}

// cloneUser returns a copy so callers cannot mutate stored state; all
// writes go through the explicit update methods.
func cloneUser(u *auth.User) *auth.User {
	c := *u
	c.HashedPassword = append([]byte(nil), u.HashedPassword...)
	c.SessionID = cloneString(u.SessionID)
	c.ResetToken = cloneString(u.ResetToken)
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Compile-time interface check.
var _ auth.UserStore = (*Store)(nil)
