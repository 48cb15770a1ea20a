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

func TestRevokeRefreshToken(t *testing.T) {
	ctx := context.Background()
	f := identitytest.NewFixture(t)
	f.Register(t, "logout@x", alicePassword)
	first := login(t, f, "logout@x", alicePassword)
	require.True(t, first.Success)

	res, err := f.Service.RevokeRefreshToken(ctx, identity.RevokeTokenCommand{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.True(t, res.Success)

	assert.Equal(t, identity.MsgInvalidRefreshToken, refresh(t, f, first.RefreshToken).Message)

	// Revoking again, or an unknown token, still succeeds.
	for _, tok := range []string{first.RefreshToken, "unknown"} {
		res, err = f.Service.RevokeRefreshToken(ctx, identity.RevokeTokenCommand{RefreshToken: tok})
		require.NoError(t, err)
		assert.True(t, res.Success)
	}
}

func TestRevokeAllSessions(t *testing.T) {
	ctx := context.Background()
	f := identitytest.NewFixture(t)
	reg := f.Register(t, "sweep@x", alicePassword)
	a := login(t, f, "sweep@x", alicePassword)
	b := login(t, f, "sweep@x", alicePassword)

	res, err := f.Service.RevokeAllSessions(ctx, identity.RevokeSessionsCommand{AccountID: reg.AccountID})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Revoked)

	assert.False(t, refresh(t, f, a.RefreshToken).Success)
	assert.False(t, refresh(t, f, b.RefreshToken).Success)

	res, err = f.Service.RevokeAllSessions(ctx, identity.RevokeSessionsCommand{AccountID: reg.AccountID})
	require.NoError(t, err)
	assert.Zero(t, res.Revoked)

	res, err = f.Service.RevokeAllSessions(ctx, identity.RevokeSessionsCommand{AccountID: identity.NewID()})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, identity.MsgUserNotFound, res.Message)
}
