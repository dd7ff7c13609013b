// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/holomush/gatekeeper/internal/auth"
)

// newHashCmd creates the hash subcommand. It needs no store, so it
// works without any configuration.
func newHashCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Hash a password",
		Long:  `Hash a password with the service's parameters and print the encoded form.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hashed, err := auth.NewArgon2idHasher().Hash(password)
			if err != nil {
				return err
			}
			cmd.Println(string(hashed))
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password to hash")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
