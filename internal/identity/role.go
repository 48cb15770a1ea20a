// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// Seed role names.
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleUser    = "User"
)

// DefaultRole is assigned to every newly registered account.
const DefaultRole = RoleUser

// MaxRoleNameLength limits role names.
const MaxRoleNameLength = 256

// Role is a named permission group used for downstream authorization.
type Role struct {
	ID          ulid.ULID
	Name        string
	Description string
	CreatedAt   time.Time
}

// AccountRole associates an account with a role.
type AccountRole struct {
	AccountID  ulid.ULID
	RoleID     ulid.ULID
	AssignedAt time.Time
}

// SeedRoles returns the fixed role set every deployment starts with.
func SeedRoles(now time.Time) []*Role {
	at := now.UTC()
	return []*Role{
		{ID: NewID(), Name: RoleAdmin, Description: "Full administrative access", CreatedAt: at},
		{ID: NewID(), Name: RoleManager, Description: "Manages accounts and roles", CreatedAt: at},
		{ID: NewID(), Name: RoleUser, Description: "Default role for registered accounts", CreatedAt: at},
	}
}

// NewRole creates a validated Role.
func NewRole(name, description string, now time.Time) (*Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, oops.Code("ROLE_INVALID_NAME").Errorf("role name cannot be empty")
	}
	if len(name) > MaxRoleNameLength {
		return nil, oops.Code("ROLE_INVALID_NAME").
			With("max", MaxRoleNameLength).
			Errorf("role name must be at most %d characters", MaxRoleNameLength)
	}
	return &Role{
		ID:          NewID(),
		Name:        name,
		Description: description,
		CreatedAt:   now.UTC(),
	}, nil
}
