// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/holomush/gatekeeper/pkg/errutil"
)

// createUserConfig holds configuration for the create-user command.
type createUserConfig struct {
	email    string
	password string
}

// newCreateUserCmd creates the create-user subcommand.
func newCreateUserCmd() *cobra.Command {
	cfg := &createUserConfig{}

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Register a new user",
		Long:  `Register a new user with an email and password in the configured store.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCreateUser(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.email, "email", "", "email address for the new user")
	cmd.Flags().StringVar(&cfg.password, "password", "", "password for the new user")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// runCreateUser executes the create-user command.
func runCreateUser(cmd *cobra.Command, cfg *createUserConfig) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	sessions, _, cleanup, err := openServices(ctx, conf)
	if err != nil {
		return err
	}
	defer cleanup()

	user, err := sessions.Register(ctx, cfg.email, cfg.password)
	if err != nil {
		errutil.LogError(logger(), "create user failed", err)
		return err
	}

	cmd.Printf("created user %d (%s)\n", user.ID, user.Email)
	return nil
}
