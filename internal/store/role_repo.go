// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/bankcore/identity/internal/identity"
)

// RoleRepository implements identity.RoleStore using PostgreSQL.
type RoleRepository struct {
	pool Pool
}

// NewRoleRepository creates a new role repository.
func NewRoleRepository(pool Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

// Compile-time interface check.
var _ identity.RoleStore = (*RoleRepository)(nil)

// Create persists a new role.
func (r *RoleRepository) Create(ctx context.Context, role *identity.Role) error {
	_, err := conn(ctx, r.pool).Exec(ctx,
		`INSERT INTO roles (id, name, description, created_at) VALUES ($1, $2, $3, $4)`,
		role.ID.String(), role.Name, role.Description, role.CreatedAt.UTC())
	if isUniqueViolation(err) {
		return oops.Code("ROLE_DUPLICATE").With("name", role.Name).Wrap(identity.ErrDuplicateRole)
	}
	if err != nil {
		return oops.With("operation", "create role").With("name", role.Name).Wrap(err)
	}
	return nil
}

// GetByName retrieves a role by case-insensitive name.
func (r *RoleRepository) GetByName(ctx context.Context, name string) (*identity.Role, error) {
	row := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT id, name, description, created_at FROM roles WHERE LOWER(name) = LOWER($1)`, name)
	role, err := scanRole(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("ROLE_NOT_FOUND").With("name", name).Wrap(identity.ErrNotFound)
	}
	if err != nil {
		return nil, oops.With("operation", "get role by name").With("name", name).Wrap(err)
	}
	return role, nil
}

// List returns every role ordered by name.
func (r *RoleRepository) List(ctx context.Context) ([]*identity.Role, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT id, name, description, created_at FROM roles ORDER BY name`)
	if err != nil {
		return nil, oops.With("operation", "list roles").Wrap(err)
	}
	return collectRoles(rows, "list roles")
}

// UpdateDescription changes the description of a role.
func (r *RoleRepository) UpdateDescription(ctx context.Context, id ulid.ULID, description string) error {
	result, err := conn(ctx, r.pool).Exec(ctx,
		`UPDATE roles SET description = $2 WHERE id = $1`, id.String(), description)
	if err != nil {
		return oops.With("operation", "update role description").With("id", id.String()).Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("ROLE_NOT_FOUND").With("id", id.String()).Wrap(identity.ErrNotFound)
	}
	return nil
}

// Assign grants a role to an account.
func (r *RoleRepository) Assign(ctx context.Context, assignment identity.AccountRole) error {
	result, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO account_roles (account_id, role_id, assigned_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_id, role_id) DO NOTHING`,
		assignment.AccountID.String(), assignment.RoleID.String(), assignment.AssignedAt.UTC())
	if err != nil {
		return oops.With("operation", "assign role").
			With("account_id", assignment.AccountID.String()).
			With("role_id", assignment.RoleID.String()).
			Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("ROLE_ALREADY_ASSIGNED").
			With("account_id", assignment.AccountID.String()).
			With("role_id", assignment.RoleID.String()).
			Wrap(identity.ErrAlreadyAssigned)
	}
	return nil
}

// RolesForAccount returns the roles an account holds ordered by name.
func (r *RoleRepository) RolesForAccount(ctx context.Context, accountID ulid.ULID) ([]*identity.Role, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT r.id, r.name, r.description, r.created_at
		FROM roles r
		JOIN account_roles ar ON ar.role_id = r.id
		WHERE ar.account_id = $1
		ORDER BY r.name`,
		accountID.String())
	if err != nil {
		return nil, oops.With("operation", "roles for account").With("account_id", accountID.String()).Wrap(err)
	}
	return collectRoles(rows, "roles for account")
}

func collectRoles(rows pgx.Rows, operation string) ([]*identity.Role, error) {
	defer rows.Close()

	var roles []*identity.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, oops.With("operation", operation).Wrap(err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.With("operation", operation).Wrap(err)
	}
	return roles, nil
}

func scanRole(row pgx.Row) (*identity.Role, error) {
	var (
		role  identity.Role
		idStr string
	)
	if err := row.Scan(&idStr, &role.Name, &role.Description, &role.CreatedAt); err != nil {
		return nil, err
	}
	id, err := ulid.Parse(idStr)
	if err != nil {
		return nil, oops.Code("ROLE_CORRUPT_ID").With("id", idStr).Wrap(err)
	}
	role.ID = id
	return &role, nil
}
