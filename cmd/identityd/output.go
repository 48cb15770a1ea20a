// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package main

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/bankcore/identity/internal/identity"
)

// CodeRejected marks a command the engine refused with a business result.
const CodeRejected = "COMMAND_REJECTED"

// runCommand opens the engine, runs fn and turns a refused result into an
// error so the process exits non-zero. message is printed on success when
// not empty.
func runCommand(cmd *cobra.Command, deps *Deps, fn func(a *app) (identity.Result, string, error)) error {
	a, err := openApp(cmd, deps)
	if err != nil {
		return err
	}
	defer a.close()

	res, message, err := fn(a)
	if err != nil {
		return err
	}
	if !res.Succeeded() {
		return oops.Code(CodeRejected).Errorf("%s", message)
	}
	if message != "" {
		cmd.Println(message)
	}
	return nil
}

func parseAccountID(s string) (ulid.ULID, error) {
	id, err := identity.ParseID(s)
	if err != nil {
		return ulid.ULID{}, oops.Code("INVALID_ACCOUNT_ID").With("account_id", s).Wrap(err)
	}
	return id, nil
}

func secretFromEnv(deps *Deps, key string) (string, error) {
	v, ok := deps.lookupEnv(key)
	if !ok || v == "" {
		return "", oops.Code("SECRET_MISSING").With("env", key).Errorf("environment variable %s is not set", key)
	}
	return v, nil
}

func argOrEnv(deps *Deps, args []string, key string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	return secretFromEnv(deps, key)
}

func printTokens(cmd *cobra.Command, res identity.TokenResult) {
	cmd.Printf("access_token: %s\n", res.AccessToken)
	cmd.Printf("access_token_expires_at: %s\n", res.ExpiresAt.Format(time.RFC3339))
	cmd.Printf("refresh_token: %s\n", res.RefreshToken)
	cmd.Printf("refresh_token_expires_at: %s\n", res.RefreshExpiresAt.Format(time.RFC3339))
}

func printAccount(cmd *cobra.Command, v identity.AccountView) {
	cmd.Printf("ID: %s\n", v.ID)
	cmd.Printf("Email: %s\n", v.Email)
	cmd.Printf("Name: %s %s\n", v.FirstName, v.LastName)
	cmd.Printf("Birth date: %s\n", v.BirthDate.Format(time.DateOnly))
	cmd.Printf("State: %s\n", accountState(v))
	cmd.Printf("Failed logins: %d\n", v.FailedLoginCount)
	if v.Locked {
		cmd.Printf("Lock: %s", v.Lock.Kind)
		if v.Lock.Until != nil {
			cmd.Printf(" until %s", v.Lock.Until.Format(time.RFC3339))
		}
		if v.Lock.Reason != "" {
			cmd.Printf(" (%s)", v.Lock.Reason)
		}
		cmd.Println()
	}
	if v.LastLoginAt != nil {
		cmd.Printf("Last login: %s\n", v.LastLoginAt.Format(time.RFC3339))
	}
	cmd.Printf("Roles: %s\n", strings.Join(v.Roles, ", "))
	cmd.Printf("Created: %s\n", v.CreatedAt.Format(time.RFC3339))
}

func accountState(v identity.AccountView) string {
	switch {
	case !v.Active:
		return "inactive"
	case v.Locked:
		return "locked"
	}
	return "active"
}
