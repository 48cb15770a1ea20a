// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/bankcore/identity/internal/config"
)

// NewRootCmd creates the root command for the identityd CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(nil)
}

func newRootCmd(deps *Deps) *cobra.Command {
	deps = deps.withDefaults()

	cmd := &cobra.Command{
		Use:   "identityd",
		Short: "identityd - account identity and session service",
		Long: `identityd manages bank customer identities: registration, password
login with lockout, refresh token rotation, administrative locks and role
assignment, backed by PostgreSQL with an append-only event log.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&deps.configFile, "config", "", "config file path")
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(newMigrateCmd(deps))
	cmd.AddCommand(newSeedCmd(deps))
	cmd.AddCommand(newValidateSeedCmd())
	cmd.AddCommand(newAccountCmd(deps))
	cmd.AddCommand(newRoleCmd(deps))
	cmd.AddCommand(newServeCmd(deps))

	return cmd
}
