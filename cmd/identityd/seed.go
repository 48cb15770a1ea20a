// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package main

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bankcore/identity/internal/seed"
)

// Default timeout for the seed command.
const defaultSeedTimeout = 30 * time.Second

// newSeedCmd creates the seed subcommand.
func newSeedCmd(deps *Deps) *cobra.Command {
	var (
		file    string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the built-in roles and optional bootstrap accounts",
		Long: `Creates the Admin, Manager and User roles. With --file, also applies a
seed manifest of extra roles and accounts. Account passwords are read from the
environment variables the manifest names. Existing entries are left unchanged,
so the command can be run repeatedly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifest := &seed.Manifest{Version: "1.0.0"}
			if file != "" {
				m, err := seed.LoadManifest(file)
				if err != nil {
					return err
				}
				manifest = m
			}

			a, err := openApp(cmd, deps)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			applier := seed.NewApplier(a.pipeline, deps.lookupEnv, a.logger)
			var report seed.Report
			err = withRetry(ctx, a.cfg.Retry, a.logger, func(ctx context.Context) error {
				var applyErr error
				report, applyErr = applier.Apply(ctx, manifest)
				return applyErr
			})
			if err != nil {
				return err
			}

			printList(cmd, "Roles created", report.RolesCreated)
			printList(cmd, "Roles existing", report.RolesExisting)
			printList(cmd, "Accounts created", report.AccountsCreated)
			printList(cmd, "Accounts existing", report.AccountsExisting)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "seed manifest (YAML)")
	cmd.Flags().DurationVar(&timeout, "timeout", defaultSeedTimeout, "timeout for database operations (e.g., 30s, 1m)")

	return cmd
}

// newValidateSeedCmd creates the validate-seed subcommand.
func newValidateSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-seed FILE",
		Short: "Validate a seed manifest without applying it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := seed.LoadManifest(args[0])
			if err != nil {
				return err
			}
			cmd.Printf("%s: valid (version %s, %d roles, %d accounts)\n", args[0], m.Version, len(m.Roles), len(m.Accounts))
			return nil
		},
	}
}

func printList(cmd *cobra.Command, label string, items []string) {
	if len(items) == 0 {
		return
	}
	cmd.Printf("%s: %s\n", label, strings.Join(items, ", "))
}
