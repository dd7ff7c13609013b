// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/holomush/gatekeeper/internal/auth"
	"github.com/holomush/gatekeeper/internal/auth/postgres"
	"github.com/holomush/gatekeeper/internal/config"
	"github.com/holomush/gatekeeper/internal/logging"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the gatekeeper CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gatekeeper",
		Short: "Gatekeeper - user authentication and session service",
		Long: `Gatekeeper manages user credentials, sessions, and password
resets against a Postgres store.`,
	}

	// Global flag for config file path
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(newCreateUserCmd())
	cmd.AddCommand(newResetTokenCmd())
	cmd.AddCommand(newHashCmd())
	cmd.AddCommand(newSchemaCmd())

	return cmd
}

// loadConfig layers the config file over defaults plus the command's flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	logging.SetDefault("gatekeeper", version, cfg.Log.Format, cfg.LogLevel())
	return cfg, nil
}

// openServices connects the store and wires the auth services. The
// returned cleanup closes the pool.
func openServices(ctx context.Context, cfg *config.Config) (*auth.SessionService, *auth.PasswordResetService, func(), error) {
	repo, err := postgres.Open(ctx, cfg.Database.URL)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() { repo.Close() }

	if err := repo.EnsureSchema(ctx); err != nil {
		cleanup()
		return nil, nil, nil, err
	}

	hasher := auth.NewArgon2idHasher()
	sessions, err := auth.NewSessionService(repo, hasher)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	resets, err := auth.NewPasswordResetService(repo, hasher)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return sessions, resets, cleanup, nil
}

func logger() *slog.Logger {
	return slog.Default()
}
