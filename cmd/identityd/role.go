// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/bankcore/identity/internal/identity"
)

// newRoleCmd creates the role command group.
func newRoleCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role",
		Short: "Inspect and create roles",
	}

	var pattern string
	list := &cobra.Command{
		Use:   "list",
		Short: "List roles, optionally filtered by a glob (e.g. --match 'ad*')",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(cmd, deps, func(a *app) (identity.Result, string, error) {
				res, err := call(cmd.Context(), a, a.pipeline.ListRoles, identity.ListRolesQuery{Pattern: pattern})
				if err != nil || !res.Success {
					return res, res.Message, err
				}
				for _, r := range res.Roles {
					cmd.Printf("%-16s  %s\n", r.Name, r.Description)
				}
				return res, "", nil
			})
		},
	}
	list.Flags().StringVar(&pattern, "match", "", "case-insensitive glob over role names")

	var description string
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an ad-hoc role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, deps, func(a *app) (identity.Result, string, error) {
				res, err := call(cmd.Context(), a, a.pipeline.CreateRole,
					identity.CreateRoleCommand{Name: args[0], Description: description})
				return res, res.Message, err
			})
		},
	}
	create.Flags().StringVar(&description, "description", "", "role description")

	cmd.AddCommand(list, create)
	return cmd
}
