// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"github.com/samber/oops"
)

// AssignRole grants a named role to an account. Assigning a role the
// account already holds fails without writing anything.
func (s *Service) AssignRole(ctx context.Context, cmd AssignRoleCommand) (CommandResult, error) {
	now := s.now()

	return s.mutateAccount(ctx, cmd.AccountID, "assign role", func(ctx context.Context, account *Account) (CommandResult, error) {
		role, err := s.roles.GetByName(ctx, cmd.RoleName)
		if errors.Is(err, ErrNotFound) {
			return CommandResult{Message: MsgRoleNotFound}, nil
		}
		if err != nil {
			return CommandResult{}, storageError("get role", err)
		}

		err = s.roles.Assign(ctx, AccountRole{AccountID: account.ID, RoleID: role.ID, AssignedAt: now})
		if errors.Is(err, ErrAlreadyAssigned) {
			return CommandResult{Message: MsgRoleAlreadyHeld}, nil
		}
		if err != nil {
			return CommandResult{}, storageError("assign role", err)
		}

		event, err := RoleAssigned(account.ID, role.Name, now)
		if err != nil {
			return CommandResult{}, err
		}
		if err := s.appendEvents(ctx, event); err != nil {
			return CommandResult{}, err
		}

		s.logger.InfoContext(ctx, "role assigned",
			"account_id", account.ID.String(),
			"role", role.Name)
		return CommandResult{Success: true, Message: fmt.Sprintf("Role %s assigned successfully", role.Name)}, nil
	})
}

// CreateRole creates an ad-hoc role.
func (s *Service) CreateRole(ctx context.Context, cmd CreateRoleCommand) (CommandResult, error) {
	role, err := NewRole(cmd.Name, cmd.Description, s.now())
	if err != nil {
		return CommandResult{}, err
	}

	err = s.tx.InTransaction(ctx, func(ctx context.Context) error {
		return s.roles.Create(ctx, role)
	})
	if errors.Is(err, ErrDuplicateRole) {
		return CommandResult{Message: MsgRoleExists}, nil
	}
	if err != nil {
		return CommandResult{}, storageError("create role", err)
	}
	return CommandResult{Success: true, Message: MsgRoleCreated}, nil
}

// SeedRoles creates any missing role of the fixed seed set. Running it
// again is a no-op.
func (s *Service) SeedRoles(ctx context.Context, _ SeedRolesCommand) (SeedResult, error) {
	out := SeedResult{Created: []string{}, Existing: []string{}}

	err := s.tx.InTransaction(ctx, func(ctx context.Context) error {
		for _, role := range SeedRoles(s.now()) {
			_, err := s.roles.GetByName(ctx, role.Name)
			if err == nil {
				out.Existing = append(out.Existing, role.Name)
				continue
			}
			if !errors.Is(err, ErrNotFound) {
				return storageError("get role", err)
			}
			if err := s.roles.Create(ctx, role); err != nil {
				return storageError("create role", err)
			}
			out.Created = append(out.Created, role.Name)
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}

	if len(out.Created) > 0 {
		s.logger.InfoContext(ctx, "seed roles created", "roles", out.Created)
	}
	out.Success = true
	out.Message = MsgRolesSeeded
	return out, nil
}

// ListRoles returns the roles whose names match q.Pattern, ordered by name.
func (s *Service) ListRoles(ctx context.Context, q ListRolesQuery) (RolesResult, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return RolesResult{}, storageError("list roles", err)
	}
	if q.Pattern == "" {
		return RolesResult{Roles: roles, Success: true}, nil
	}

	g, err := compileRolePattern(q.Pattern)
	if err != nil {
		return RolesResult{}, oops.Code("ROLE_PATTERN_INVALID").With("pattern", q.Pattern).Wrap(err)
	}
	matched := make([]*Role, 0, len(roles))
	for _, r := range roles {
		if g.Match(strings.ToLower(r.Name)) {
			matched = append(matched, r)
		}
	}
	return RolesResult{Roles: matched, Success: true}, nil
}

func compileRolePattern(pattern string) (glob.Glob, error) {
	//nolint:wrapcheck // callers attach the code
	return glob.Compile(strings.ToLower(pattern))
}
