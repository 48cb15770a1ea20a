// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package seed

import (
	"context"
	"log/slog"
	"os"

	"github.com/samber/oops"

	"github.com/bankcore/identity/internal/identity"
)

// LookupEnv resolves an environment variable.
type LookupEnv func(key string) (string, bool)

// Report summarizes what Apply changed.
type Report struct {
	RolesCreated     []string
	RolesExisting    []string
	AccountsCreated  []string
	AccountsExisting []string
}

// Applier applies manifests through the decorated identity commands.
type Applier struct {
	pipeline *identity.Pipeline
	lookup   LookupEnv
	logger   *slog.Logger
}

// NewApplier creates an Applier. A nil lookup reads the process environment.
func NewApplier(p *identity.Pipeline, lookup LookupEnv, logger *slog.Logger) *Applier {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Applier{pipeline: p, lookup: lookup, logger: logger}
}

// Apply seeds the built-in roles, then the manifest roles and accounts.
// Entries that already exist are reported and left unchanged, so Apply can
// be re-run safely.
func (a *Applier) Apply(ctx context.Context, m *Manifest) (Report, error) {
	var report Report

	seeded, err := a.pipeline.SeedRoles(ctx, identity.SeedRolesCommand{})
	if err != nil {
		return report, oops.Code("SEED_ROLES_FAILED").Wrap(err)
	}
	report.RolesCreated = append(report.RolesCreated, seeded.Created...)
	report.RolesExisting = append(report.RolesExisting, seeded.Existing...)

	for _, r := range m.Roles {
		res, err := a.pipeline.CreateRole(ctx, identity.CreateRoleCommand{Name: r.Name, Description: r.Description})
		if err != nil {
			return report, oops.Code("SEED_ROLE_FAILED").With("role", r.Name).Wrap(err)
		}
		switch {
		case res.Success:
			report.RolesCreated = append(report.RolesCreated, r.Name)
		case res.Message == identity.MsgRoleExists:
			report.RolesExisting = append(report.RolesExisting, r.Name)
		default:
			return report, rejected("SEED_ROLE_REJECTED", res.Message, "role", r.Name)
		}
	}

	for _, acct := range m.Accounts {
		created, err := a.applyAccount(ctx, acct)
		if err != nil {
			return report, err
		}
		if created {
			report.AccountsCreated = append(report.AccountsCreated, acct.Email)
		} else {
			report.AccountsExisting = append(report.AccountsExisting, acct.Email)
		}
	}

	a.logger.InfoContext(ctx, "seed applied",
		"roles_created", len(report.RolesCreated),
		"accounts_created", len(report.AccountsCreated))
	return report, nil
}

func (a *Applier) applyAccount(ctx context.Context, acct Account) (bool, error) {
	password, ok := a.lookup(acct.PasswordEnv)
	if !ok || password == "" {
		return false, oops.Code("SEED_PASSWORD_MISSING").
			With("email", acct.Email).
			With("password_env", acct.PasswordEnv).
			Wrapf(identity.ErrConfiguration, "environment variable %s is not set", acct.PasswordEnv)
	}
	birth, err := acct.birthDate()
	if err != nil {
		return false, oops.Code("SEED_BIRTH_DATE_INVALID").With("email", acct.Email).Wrap(err)
	}

	reg, err := a.pipeline.Register(ctx, identity.RegisterCommand{
		Email:     acct.Email,
		Password:  password,
		FirstName: acct.FirstName,
		LastName:  acct.LastName,
		BirthDate: birth,
	})
	if err != nil {
		return false, oops.Code("SEED_ACCOUNT_FAILED").With("email", acct.Email).Wrap(err)
	}
	if !reg.Success {
		if reg.Message == identity.MsgEmailExists {
			a.logger.DebugContext(ctx, "seed account exists", "email", acct.Email)
			return false, nil
		}
		return false, rejected("SEED_ACCOUNT_REJECTED", reg.Message, "email", acct.Email)
	}

	for _, role := range acct.Roles {
		res, err := a.pipeline.AssignRole(ctx, identity.AssignRoleCommand{AccountID: reg.AccountID, RoleName: role})
		if err != nil {
			return true, oops.Code("SEED_ASSIGN_FAILED").With("email", acct.Email).With("role", role).Wrap(err)
		}
		if !res.Success && res.Message != identity.MsgRoleAlreadyHeld {
			return true, rejected("SEED_ASSIGN_REJECTED", res.Message, "email", acct.Email, "role", role)
		}
	}
	return true, nil
}

func rejected(code, message string, kv ...any) error {
	return oops.Code(code).With(kv...).Errorf("%s", message)
}
