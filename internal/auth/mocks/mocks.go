// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package mocks provides testify mocks for the auth package interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/holomush/gatekeeper/internal/auth"
)

// constructorTestingT is the subset of *testing.T the mock constructors need.
type constructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUserStore is a mock implementation of auth.UserStore.
type MockUserStore struct {
	mock.Mock
}

// NewMockUserStore creates a MockUserStore whose expectations are asserted
// when the test finishes.
func NewMockUserStore(t constructorTestingT) *MockUserStore {
	m := &MockUserStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserStore) Add(ctx context.Context, email string, hashedPassword []byte) (*auth.User, error) {
	args := m.Called(ctx, email, hashedPassword)
	return userArg(args.Get(0)), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*auth.User, error) {
	args := m.Called(ctx, id)
	return userArg(args.Get(0)), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	args := m.Called(ctx, email)
	return userArg(args.Get(0)), args.Error(1)
}

func (m *MockUserStore) GetBySessionID(ctx context.Context, sessionID string) (*auth.User, error) {
	args := m.Called(ctx, sessionID)
	return userArg(args.Get(0)), args.Error(1)
}

func (m *MockUserStore) GetByResetToken(ctx context.Context, resetToken string) (*auth.User, error) {
	args := m.Called(ctx, resetToken)
	return userArg(args.Get(0)), args.Error(1)
}

func (m *MockUserStore) SetSessionID(ctx context.Context, id int64, sessionID *string) error {
	args := m.Called(ctx, id, sessionID)
	return args.Error(0)
}

func (m *MockUserStore) SetResetToken(ctx context.Context, id int64, resetToken *string) error {
	args := m.Called(ctx, id, resetToken)
	return args.Error(0)
}

func (m *MockUserStore) UpdatePassword(ctx context.Context, id int64, hashedPassword []byte) error {
	args := m.Called(ctx, id, hashedPassword)
	return args.Error(0)
}

// MockPasswordHasher is a mock implementation of auth.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a MockPasswordHasher whose expectations are
// asserted when the test finishes.
func NewMockPasswordHasher(t constructorTestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPasswordHasher) Hash(password string) ([]byte, error) {
	args := m.Called(password)
	var b []byte
	if v := args.Get(0); v != nil {
		b = v.([]byte)
	}
	return b, args.Error(1)
}

func (m *MockPasswordHasher) Verify(stored []byte, candidate string) bool {
	args := m.Called(stored, candidate)
	return args.Bool(0)
}

func userArg(v any) *auth.User {
	if v == nil {
		return nil
	}
	return v.(*auth.User)
}

// Compile-time interface checks.
var (
	_ auth.UserStore      = (*MockUserStore)(nil)
	_ auth.PasswordHasher = (*MockPasswordHasher)(nil)
)
