// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/holomush/gatekeeper/internal/auth/postgres"
)

// newSchemaCmd creates the schema subcommand.
func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the Postgres schema",
		Long: `Print the SQL schema the service applies on startup. Useful for
reviewing what EnsureSchema will run, or applying it by hand.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Print(postgres.Schema())
			return nil
		},
	}
}
