// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package main

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/bankcore/identity/internal/identity"
)

// Environment variables read when a credential is not given as an argument.
const (
	envPassword     = "IDENTITY_PASSWORD"
	envRefreshToken = "IDENTITY_REFRESH_TOKEN"
	envAccessToken  = "IDENTITY_ACCESS_TOKEN"
)

// newAccountCmd creates the account command group.
func newAccountCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Register, authenticate and administer accounts",
	}

	cmd.AddCommand(
		newRegisterCmd(deps),
		newLoginCmd(deps),
		newRefreshCmd(deps),
		newLogoutCmd(deps),
		newVerifyCmd(deps),
		newLockCmd(deps),
		accountIDCmd(deps, "unlock", "Clear any lock on an account", func(a *app, cmd *cobra.Command, id ulid.ULID) (identity.Result, string, error) {
			res, err := call(cmd.Context(), a, a.pipeline.Unlock, identity.UnlockCommand{AccountID: id})
			return res, res.Message, err
		}),
		accountIDCmd(deps, "activate", "Activate an account", func(a *app, cmd *cobra.Command, id ulid.ULID) (identity.Result, string, error) {
			res, err := call(cmd.Context(), a, a.pipeline.SetActive, identity.SetActiveCommand{AccountID: id, Active: true})
			return res, res.Message, err
		}),
		accountIDCmd(deps, "deactivate", "Deactivate an account and revoke its sessions", func(a *app, cmd *cobra.Command, id ulid.ULID) (identity.Result, string, error) {
			res, err := call(cmd.Context(), a, a.pipeline.SetActive, identity.SetActiveCommand{AccountID: id, Active: false})
			return res, res.Message, err
		}),
		accountIDCmd(deps, "revoke-sessions", "Revoke every refresh token of an account", func(a *app, cmd *cobra.Command, id ulid.ULID) (identity.Result, string, error) {
			res, err := call(cmd.Context(), a, a.pipeline.RevokeAllSessions, identity.RevokeSessionsCommand{AccountID: id})
			if err != nil || !res.Success {
				return res, res.Message, err
			}
			cmd.Printf("Revoked: %d\n", res.Revoked)
			return res, res.Message, nil
		}),
		accountIDCmd(deps, "get", "Show an account", func(a *app, cmd *cobra.Command, id ulid.ULID) (identity.Result, string, error) {
			res, err := call(cmd.Context(), a, a.pipeline.GetAccount, identity.GetAccountQuery{AccountID: id})
			if err != nil || !res.Found {
				return res, res.Message, err
			}
			printAccount(cmd, *res.Account)
			return res, "", nil
		}),
		accountIDCmd(deps, "events", "Show the event history of an account", func(a *app, cmd *cobra.Command, id ulid.ULID) (identity.Result, string, error) {
			res, err := call(cmd.Context(), a, a.pipeline.AccountEvents, identity.AccountEventsQuery{AccountID: id})
			if err != nil || !res.Success {
				return res, res.Message, err
			}
			for _, e := range res.Events {
				cmd.Printf("%s  %s  %s  %s\n", e.CreatedAt.Format(time.RFC3339), e.ID, e.Type, e.Payload)
			}
			return res, "", nil
		}),
		newAssignRoleCmd(deps),
		newListAccountsCmd(deps),
	)

	return cmd
}

func newRegisterCmd(deps *Deps) *cobra.Command {
	var (
		cmdIn       identity.RegisterCommand
		birthDate   string
		passwordEnv string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		Long: `Register a new account with the User role. The password is read from
the environment variable named by --password-env.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if birthDate != "" {
				bd, err := time.Parse(time.DateOnly, birthDate)
				if err != nil {
					return oops.Code("INVALID_BIRTH_DATE").With("birth_date", birthDate).Errorf("birth date must be YYYY-MM-DD")
				}
				cmdIn.BirthDate = bd
			}
			password, err := secretFromEnv(deps, passwordEnv)
			if err != nil {
				return err
			}
			cmdIn.Password = password

			return runCommand(cmd, deps, func(a *app) (identity.Result, string, error) {
				res, err := call(cmd.Context(), a, a.pipeline.Register, cmdIn)
				if err == nil && res.Success {
					cmd.Printf("Account ID: %s\n", res.AccountID)
				}
				return res, res.Message, err
			})
		},
	}

	cmd.Flags().StringVar(&cmdIn.Email, "email", "", "email address")
	cmd.Flags().StringVar(&cmdIn.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&cmdIn.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&birthDate, "birth-date", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&passwordEnv, "password-env", envPassword, "environment variable holding the password")

	return cmd
}

func newLoginCmd(deps *Deps) *cobra.Command {
	var email, passwordEnv string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and print a token pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := secretFromEnv(deps, passwordEnv)
			if err != nil {
				return err
			}
			return runCommand(cmd, deps, func(a *app) (identity.Result, string, error) {
				res, err := call(cmd.Context(), a, a.pipeline.Login, identity.LoginCommand{Email: email, Password: password})
				if err == nil && res.Success {
					printTokens(cmd, res)
				}
				return res, res.Message, err
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&passwordEnv, "password-env", envPassword, "environment variable holding the password")

	return cmd
}

func newRefreshCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh [REFRESH_TOKEN]",
		Short: "Exchange a refresh token for a new token pair",
		Long:  `Rotate a refresh token. Without an argument the token is read from ` + envRefreshToken + `.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := argOrEnv(deps, args, envRefreshToken)
			if err != nil {
				return err
			}
			return runCommand(cmd, deps, func(a *app) (identity.Result, string, error) {
				res, err := call(cmd.Context(), a, a.pipeline.Refresh, identity.RefreshCommand{RefreshToken: token})
				if err == nil && res.Success {
					printTokens(cmd, res)
				}
				return res, res.Message, err
			})
		},
	}
}

func newLogoutCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "logout [REFRESH_TOKEN]",
		Short: "Revoke a refresh token",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := argOrEnv(deps, args, envRefreshToken)
			if err != nil {
				return err
			}
			return runCommand(cmd, deps, func(a *app) (identity.Result, string, error) {
				res, err := call(cmd.Context(), a, a.pipeline.RevokeRefreshToken, identity.RevokeTokenCommand{RefreshToken: token})
				return res, res.Message, err
			})
		},
	}
}

func newVerifyCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [ACCESS_TOKEN]",
		Short: "Verify an access token and print its claims",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := argOrEnv(deps, args, envAccessToken)
			if err != nil {
				return err
			}
			return runCommand(cmd, deps, func(a *app) (identity.Result, string, error) {
				res, err := call(cmd.Context(), a, a.pipeline.VerifyAccessToken, identity.VerifyTokenQuery{AccessToken: token})
				if err == nil && res.Valid {
					cmd.Printf("Subject: %s\n", res.Claims.Subject)
					cmd.Printf("Email: %s\n", res.Claims.Email)
					cmd.Printf("Roles: %v\n", res.Claims.Roles)
					if res.Claims.ExpiresAt != nil {
						cmd.Printf("Expires: %s\n", res.Claims.ExpiresAt.Format(time.RFC3339))
					}
				}
				return res, res.Message, err
			})
		},
	}
}

func newLockCmd(deps *Deps) *cobra.Command {
	var reason string

	cmd := accountIDCmd(deps, "lock", "Lock an account until explicitly unlocked", func(a *app, cmd *cobra.Command, id ulid.ULID) (identity.Result, string, error) {
		res, err := call(cmd.Context(), a, a.pipeline.Lock, identity.LockCommand{AccountID: id, Reason: reason})
		return res, res.Message, err
	})
	cmd.Flags().StringVar(&reason, "reason", "", "lock reason recorded with the event")

	return cmd
}

func newAssignRoleCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "assign-role ACCOUNT_ID ROLE",
		Short: "Grant a role to an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			return runCommand(cmd, deps, func(a *app) (identity.Result, string, error) {
				res, err := call(cmd.Context(), a, a.pipeline.AssignRole, identity.AssignRoleCommand{AccountID: id, RoleName: args[1]})
				return res, res.Message, err
			})
		},
	}
}

func newListAccountsCmd(deps *Deps) *cobra.Command {
	q := identity.ListAccountsQuery{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts in creation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(cmd, deps, func(a *app) (identity.Result, string, error) {
				res, err := call(cmd.Context(), a, a.pipeline.ListAccounts, q)
				if err != nil || !res.Success {
					return res, res.Message, err
				}
				for _, v := range res.Accounts {
					cmd.Printf("%s  %-32s  %s\n", v.ID, v.Email, accountState(v))
				}
				cmd.Printf("Page %d of %d (%d accounts)\n", res.Page, res.TotalPages(), res.TotalCount)
				return res, "", nil
			})
		},
	}

	cmd.Flags().IntVar(&q.Page, "page", 1, "page number (1-based)")
	cmd.Flags().IntVar(&q.PageSize, "page-size", 20, "accounts per page")

	return cmd
}

type accountAction func(a *app, cmd *cobra.Command, id ulid.ULID) (identity.Result, string, error)

// accountIDCmd builds a command taking a single ACCOUNT_ID argument.
func accountIDCmd(deps *Deps, use, short string, action accountAction) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ACCOUNT_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			return runCommand(cmd, deps, func(a *app) (identity.Result, string, error) {
				return action(a, cmd, id)
			})
		},
	}
}
