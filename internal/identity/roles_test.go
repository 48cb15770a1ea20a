// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankcore/identity/internal/identity"
	"github.com/bankcore/identity/internal/identity/identitytest"
)

func TestAssignRole(t *testing.T) {
	ctx := context.Background()
	f := identitytest.NewFixture(t)
	reg := f.Register(t, "roles@x", alicePassword)

	tests := []struct {
		name    string
		cmd     identity.AssignRoleCommand
		success bool
		message string
	}{
		{
			name:    "grants manager",
			cmd:     identity.AssignRoleCommand{AccountID: reg.AccountID, RoleName: identity.RoleManager},
			success: true,
			message: "Role Manager assigned successfully",
		},
		{
			name:    "case-insensitive lookup",
			cmd:     identity.AssignRoleCommand{AccountID: reg.AccountID, RoleName: "admin"},
			success: true,
			message: "Role Admin assigned successfully",
		},
		{
			name:    "duplicate",
			cmd:     identity.AssignRoleCommand{AccountID: reg.AccountID, RoleName: identity.RoleManager},
			message: identity.MsgRoleAlreadyHeld,
		},
		{
			name:    "unknown role",
			cmd:     identity.AssignRoleCommand{AccountID: reg.AccountID, RoleName: "Auditor"},
			message: identity.MsgRoleNotFound,
		},
		{
			name:    "unknown account",
			cmd:     identity.AssignRoleCommand{AccountID: identity.NewID(), RoleName: identity.RoleUser},
			message: identity.MsgUserNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := f.Service.AssignRole(ctx, tt.cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.success, res.Success)
			assert.Equal(t, tt.message, res.Message)
		})
	}
}

func TestAssignRole_DuplicateWritesNothing(t *testing.T) {
	ctx := context.Background()
	f := identitytest.NewFixture(t)
	reg := f.Register(t, "dup@x", alicePassword)

	rows := f.Store.Assignments()
	events := len(f.Store.Events())

	res, err := f.Service.AssignRole(ctx, identity.AssignRoleCommand{AccountID: reg.AccountID, RoleName: identity.RoleUser})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, identity.MsgRoleAlreadyHeld, res.Message)
	assert.Equal(t, rows, f.Store.Assignments())
	assert.Len(t, f.Store.Events(), events)
}

func TestCreateRole(t *testing.T) {
	ctx := context.Background()
	f := identitytest.NewFixture(t)

	res, err := f.Service.CreateRole(ctx, identity.CreateRoleCommand{Name: "Auditor", Description: "Read-only"})
	require.NoError(t, err)
	assert.True(t, res.Success)

	res, err = f.Service.CreateRole(ctx, identity.CreateRoleCommand{Name: "AUDITOR"})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, identity.MsgRoleExists, res.Message)
}

func TestSeedRoles_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := identitytest.NewFixture(t)

	res, err := f.Service.SeedRoles(ctx, identity.SeedRolesCommand{})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Empty(t, res.Created)
	assert.ElementsMatch(t, []string{identity.RoleAdmin, identity.RoleManager, identity.RoleUser}, res.Existing)

	roles, err := f.Store.Stores().Roles.List(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 3)
}

func TestListRoles(t *testing.T) {
	ctx := context.Background()
	f := identitytest.NewFixture(t)
	_, err := f.Service.CreateRole(ctx, identity.CreateRoleCommand{Name: "Auditor", Description: "Read-only audit"})
	require.NoError(t, err)

	names := func(res identity.RolesResult) []string {
		out := make([]string, 0, len(res.Roles))
		for _, r := range res.Roles {
			out = append(out, r.Name)
		}
		return out
	}

	tests := []struct {
		pattern string
		want    []string
	}{
		{"", []string{"Admin", "Auditor", "Manager", "User"}},
		{"a*", []string{"Admin", "Auditor"}},
		{"*ER", []string{"Manager", "User"}},
		{"{user,admin}", []string{"Admin", "User"}},
		{"nobody", []string{}},
	}
	for _, tt := range tests {
		t.Run("pattern "+tt.pattern, func(t *testing.T) {
			res, err := f.Service.ListRoles(ctx, identity.ListRolesQuery{Pattern: tt.pattern})
			require.NoError(t, err)
			assert.True(t, res.Success)
			assert.Equal(t, tt.want, names(res))
		})
	}
}

func TestListRoles_InvalidPatternRejectedByPipeline(t *testing.T) {
	f := identitytest.NewFixture(t)
	p := identity.NewPipeline(f.Service)

	res, err := p.ListRoles(context.Background(), identity.ListRolesQuery{Pattern: "[unclosed"})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Validation failed: pattern: must be a valid glob pattern", res.Message)
}
