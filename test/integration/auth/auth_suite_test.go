// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

//go:build integration

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/holomush/gatekeeper/internal/auth"
	authpg "github.com/holomush/gatekeeper/internal/auth/postgres"
)

func TestAuth(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Store Integration Suite")
}

// testEnv holds all resources needed for integration tests.
type testEnv struct {
	ctx       context.Context
	container testcontainers.Container
	pool      *pgxpool.Pool

	Users    *authpg.UserRepository
	Hasher   *auth.Argon2idHasher
	Sessions *auth.SessionService
	Resets   *auth.PasswordResetService
}

var env *testEnv

var _ = BeforeSuite(func() {
	var err error
	env, err = setupAuthTestEnv()
	Expect(err).NotTo(HaveOccurred())
})

var _ = AfterSuite(func() {
	if env != nil {
		env.cleanup()
	}
})

func setupAuthTestEnv() (*testEnv, error) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("gatekeeper_test"),
		postgres.WithUsername("gatekeeper"),
		postgres.WithPassword("gatekeeper"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	users, err := authpg.Open(ctx, connStr)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err := users.EnsureSchema(ctx); err != nil {
		users.Close()
		_ = container.Terminate(ctx)
		return nil, err
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		users.Close()
		_ = container.Terminate(ctx)
		return nil, err
	}

	hasher := auth.NewArgon2idHasher()
	sessions, err := auth.NewSessionService(users, hasher)
	if err != nil {
		pool.Close()
		users.Close()
		_ = container.Terminate(ctx)
		return nil, err
	}
	resets, err := auth.NewPasswordResetService(users, hasher)
	if err != nil {
		pool.Close()
		users.Close()
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &testEnv{
		ctx:       ctx,
		container: container,
		pool:      pool,
		Users:     users,
		Hasher:    hasher,
		Sessions:  sessions,
		Resets:    resets,
	}, nil
}

func (e *testEnv) cleanup() {
	if e.pool != nil {
		e.pool.Close()
	}
	if e.Users != nil {
		e.Users.Close()
	}
	if e.container != nil {
		_ = e.container.Terminate(e.ctx)
	}
}

// cleanupUsers removes all users between specs.
func cleanupUsers(ctx context.Context) {
	_, _ = env.pool.Exec(ctx, "DELETE FROM users")
}
