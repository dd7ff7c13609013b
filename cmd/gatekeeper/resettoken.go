// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/holomush/gatekeeper/pkg/errutil"
)

// resetTokenConfig holds configuration for the reset-token command.
type resetTokenConfig struct {
	email string
}

// newResetTokenCmd creates the reset-token subcommand.
func newResetTokenCmd() *cobra.Command {
	cfg := &resetTokenConfig{}

	cmd := &cobra.Command{
		Use:   "reset-token",
		Short: "Issue a password reset token",
		Long: `Issue a password reset token for an existing user and print it.
The token replaces any previously issued token for the same user.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResetToken(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.email, "email", "", "email address of the user")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// runResetToken executes the reset-token command.
func runResetToken(cmd *cobra.Command, cfg *resetTokenConfig) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	_, resets, cleanup, err := openServices(ctx, conf)
	if err != nil {
		return err
	}
	defer cleanup()

	token, err := resets.Issue(ctx, cfg.email)
	if err != nil {
		errutil.LogError(logger(), "issue reset token failed", err)
		return err
	}

	cmd.Println(token)
	return nil
}
