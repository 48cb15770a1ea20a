// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankcore/identity/internal/identity"
	"github.com/bankcore/identity/internal/identity/identitytest"
)

const (
	alicePassword = "Wonder1and!"
	bobPassword   = "Bu1lder#Bob"
)

func login(t *testing.T, f *identitytest.Fixture, email, password string) identity.TokenResult {
	t.Helper()
	res, err := f.Service.Login(context.Background(), identity.LoginCommand{Email: email, Password: password})
	require.NoError(t, err)
	return res
}

func TestLogin_AliceScenario(t *testing.T) {
	ctx := context.Background()
	f := identitytest.NewFixture(t)

	reg := f.Register(t, "alice@x", alicePassword)

	got, err := f.Service.GetAccount(ctx, identity.GetAccountQuery{AccountID: reg.AccountID})
	require.NoError(t, err)
	require.True(t, got.Found)
	assert.Equal(t, []string{identity.RoleUser}, got.Account.Roles)

	for i := 1; i <= 4; i++ {
		res := login(t, f, "alice@x", "wrong")
		assert.False(t, res.Success)
		assert.Equal(t, identity.MsgInvalidCredentials, res.Message, "attempt %d", i)
	}

	fifth := login(t, f, "alice@x", "wrong")
	assert.False(t, fifth.Success)
	assert.Equal(t, identity.MsgAccountLocked, fifth.Message)

	sixth := login(t, f, "alice@x", alicePassword)
	assert.False(t, sixth.Success)
	assert.Equal(t, identity.MsgAccountLocked, sixth.Message)

	unlock, err := f.Service.Unlock(ctx, identity.UnlockCommand{AccountID: reg.AccountID})
	require.NoError(t, err)
	assert.True(t, unlock.Success)
	assert.Equal(t, identity.MsgUserUnlocked, unlock.Message)

	ok := login(t, f, "alice@x", alicePassword)
	require.True(t, ok.Success, ok.Message)
	assert.Equal(t, identity.MsgLoginSuccessful, ok.Message)
	assert.NotEmpty(t, ok.AccessToken)
	assert.NotEmpty(t, ok.RefreshToken)
	assert.Equal(t, identitytest.Epoch.Add(15*time.Minute), ok.ExpiresAt)
	assert.Equal(t, identitytest.Epoch.Add(7*24*time.Hour), ok.RefreshExpiresAt)

	got, err = f.Service.GetAccount(ctx, identity.GetAccountQuery{AccountID: reg.AccountID})
	require.NoError(t, err)
	assert.Zero(t, got.Account.FailedLoginCount)
	require.NotNil(t, got.Account.LastLoginAt)
	assert.False(t, got.Account.Locked)
}

func TestLogin_LockHorizonIsInTheFuture(t *testing.T) {
	ctx := context.Background()
	f := identitytest.NewFixture(t)
	reg := f.Register(t, "carol@x", alicePassword)

	for i := 0; i < identity.DefaultLockoutThreshold; i++ {
		login(t, f, "carol@x", "nope")
	}

	got, err := f.Service.GetAccount(ctx, identity.GetAccountQuery{AccountID: reg.AccountID})
	require.NoError(t, err)
	require.True(t, got.Account.Locked)
	assert.Equal(t, identity.LockThrottle, got.Account.Lock.Kind)
	require.NotNil(t, got.Account.Lock.Until)
	assert.True(t, got.Account.Lock.Until.After(f.Clock.Now()))
	assert.Equal(t, identity.DefaultLockoutThreshold, got.Account.FailedLoginCount)

	events := f.Store.Events()
	var locked int
	for _, ev := range events {
		if ev.Type == identity.EventUserLocked {
			locked++
		}
	}
	assert.Equal(t, 1, locked)
}

func TestLogin_ThrottleExpires(t *testing.T) {
	f := identitytest.NewFixture(t)
	f.Register(t, "dave@x", alicePassword)

	for i := 0; i < identity.DefaultLockoutThreshold; i++ {
		login(t, f, "dave@x", "nope")
	}
	assert.Equal(t, identity.MsgAccountLocked, login(t, f, "dave@x", alicePassword).Message)

	f.Clock.Advance(identity.DefaultLockoutDuration - time.Second)
	assert.Equal(t, identity.MsgAccountLocked, login(t, f, "dave@x", alicePassword).Message)

	f.Clock.Advance(time.Second)
	res := login(t, f, "dave@x", alicePassword)
	assert.True(t, res.Success, res.Message)
}

func TestLogin_LockedAttemptsDoNotCount(t *testing.T) {
	ctx := context.Background()
	f := identitytest.NewFixture(t)
	reg := f.Register(t, "erin@x", alicePassword)

	_, err := f.Service.Lock(ctx, identity.LockCommand{AccountID: reg.AccountID, Reason: "audit"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, identity.MsgAccountLocked, login(t, f, "erin@x", "wrong").Message)
	}

	got, err := f.Service.GetAccount(ctx, identity.GetAccountQuery{AccountID: reg.AccountID})
	require.NoError(t, err)
	assert.Zero(t, got.Account.FailedLoginCount)
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := identitytest.NewFixture(t)
	f.Register(t, "frank@x", alicePassword)

	unknown := login(t, f, "nobody@x", alicePassword)
	wrong := login(t, f, "frank@x", "wrong")

	assert.False(t, unknown.Success)
	assert.Equal(t, wrong.Message, unknown.Message)
	assert.Equal(t, identity.MsgInvalidCredentials, unknown.Message)
}

func TestLogin_EmailIsCaseInsensitive(t *testing.T) {
	f := identitytest.NewFixture(t)
	f.Register(t, "Grace@Example.com", alicePassword)

	res := login(t, f, "grace@example.COM", alicePassword)
	assert.True(t, res.Success, res.Message)
}

func TestLogin_Inactive(t *testing.T) {
	ctx := context.Background()
	f := identitytest.NewFixture(t)
	reg := f.Register(t, "heidi@x", alicePassword)

	_, err := f.Service.SetActive(ctx, identity.SetActiveCommand{AccountID: reg.AccountID, Active: false})
	require.NoError(t, err)

	res := login(t, f, "heidi@x", alicePassword)
	assert.False(t, res.Success)
	assert.Equal(t, identity.MsgAccountInactive, res.Message)
}

func TestLogin_SuccessResetsCounter(t *testing.T) {
	ctx := context.Background()
	f := identitytest.NewFixture(t)
	reg := f.Register(t, "ivan@x", alicePassword)

	for i := 0; i < identity.DefaultLockoutThreshold-1; i++ {
		login(t, f, "ivan@x", "nope")
	}
	require.True(t, login(t, f, "ivan@x", alicePassword).Success)

	for i := 0; i < identity.DefaultLockoutThreshold-1; i++ {
		assert.Equal(t, identity.MsgInvalidCredentials, login(t, f, "ivan@x", "nope").Message)
	}

	got, err := f.Service.GetAccount(ctx, identity.GetAccountQuery{AccountID: reg.AccountID})
	require.NoError(t, err)
	assert.Equal(t, identity.DefaultLockoutThreshold-1, got.Account.FailedLoginCount)
	assert.False(t, got.Account.Locked)
}

func TestLogin_CustomPolicy(t *testing.T) {
	f := identitytest.NewFixture(t, identity.WithLockoutPolicy(identity.LockoutPolicy{Threshold: 2, Duration: time.Minute}))
	f.Register(t, "judy@x", alicePassword)

	assert.Equal(t, identity.MsgInvalidCredentials, login(t, f, "judy@x", "a").Message)
	assert.Equal(t, identity.MsgAccountLocked, login(t, f, "judy@x", "b").Message)

	f.Clock.Advance(time.Minute)
	assert.True(t, login(t, f, "judy@x", alicePassword).Success)
}

func TestLogin_AccessTokenCarriesRoles(t *testing.T) {
	ctx := context.Background()
	f := identitytest.NewFixture(t)
	reg := f.Register(t, "ken@x", alicePassword)

	_, err := f.Service.AssignRole(ctx, identity.AssignRoleCommand{AccountID: reg.AccountID, RoleName: identity.RoleAdmin})
	require.NoError(t, err)

	res := login(t, f, "ken@x", alicePassword)
	require.True(t, res.Success)

	claims, err := f.Signer.Verify(res.AccessToken, f.Clock.Now())
	require.NoError(t, err)
	assert.Equal(t, reg.AccountID.String(), claims.Subject)
	assert.Equal(t, "ken@x", claims.Email)
	assert.Equal(t, "Test", claims.GivenName)
	assert.Equal(t, "User", claims.FamilyName)
	assert.ElementsMatch(t, []string{identity.RoleAdmin, identity.RoleUser}, claims.Roles)
}

// interleavingHasher runs hook once, after the first password check, to
// simulate a command committing while Login is between lookup and commit.
type interleavingHasher struct {
	identity.PasswordHasher
	once sync.Once
	hook func()
}

func (h *interleavingHasher) Verify(password, hash string) (bool, error) {
	ok, err := h.PasswordHasher.Verify(password, hash)
	h.once.Do(h.hook)
	return ok, err
}

func TestLogin_AccountChangedDuringLogin(t *testing.T) {
	tests := []struct {
		name   string
		change func(t *testing.T, f *identitytest.Fixture, id ulid.ULID)
		want   string
	}{
		{
			name: "admin lock",
			change: func(t *testing.T, f *identitytest.Fixture, id ulid.ULID) {
				res, err := f.Service.Lock(context.Background(), identity.LockCommand{AccountID: id, Reason: "fraud review"})
				require.NoError(t, err)
				require.True(t, res.Success)
			},
			want: identity.MsgAccountLocked,
		},
		{
			name: "throttle from concurrent failures",
			change: func(t *testing.T, f *identitytest.Fixture, _ ulid.ULID) {
				for i := 0; i < identity.DefaultLockoutThreshold; i++ {
					login(t, f, "race@x", "wrong")
				}
			},
			want: identity.MsgAccountLocked,
		},
		{
			name: "deactivation",
			change: func(t *testing.T, f *identitytest.Fixture, id ulid.ULID) {
				res, err := f.Service.SetActive(context.Background(), identity.SetActiveCommand{AccountID: id, Active: false})
				require.NoError(t, err)
				require.True(t, res.Success)
			},
			want: identity.MsgAccountInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := identitytest.NewFixture(t)
			reg := f.Register(t, "race@x", alicePassword)

			hasher := &interleavingHasher{PasswordHasher: identitytest.FastHasher()}
			hasher.hook = func() { tt.change(t, f, reg.AccountID) }
			svc, err := identity.NewService(f.Store.Stores(), hasher, f.Signer,
				identity.WithClock(f.Clock.Now),
				identity.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
			require.NoError(t, err)

			res, err := svc.Login(ctx, identity.LoginCommand{Email: "race@x", Password: alicePassword})
			require.NoError(t, err)
			assert.False(t, res.Success)
			assert.Equal(t, tt.want, res.Message)
			assert.Empty(t, res.RefreshToken)
			assert.Empty(t, f.Store.Tokens(reg.AccountID), "no refresh token may be issued")

			got, err := f.Service.GetAccount(ctx, identity.GetAccountQuery{AccountID: reg.AccountID})
			require.NoError(t, err)
			assert.Nil(t, got.Account.LastLoginAt)
		})
	}
}
