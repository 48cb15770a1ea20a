// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankcore/identity/internal/identity"
	"github.com/bankcore/identity/internal/identity/identitytest"
	"github.com/bankcore/identity/pkg/errutil"
)

func registerCmd(email string) identity.RegisterCommand {
	return identity.RegisterCommand{
		Email:     email,
		Password:  alicePassword,
		FirstName: "Alice",
		LastName:  "Liddell",
		BirthDate: time.Date(1995, 5, 4, 0, 0, 0, 0, time.UTC),
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	f := identitytest.NewFixture(t)

	res, err := f.Service.Register(ctx, registerCmd("alice@example.com"))
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, identity.MsgRegistered, res.Message)

	got, err := f.Service.GetAccount(ctx, identity.GetAccountQuery{AccountID: res.AccountID})
	require.NoError(t, err)
	require.True(t, got.Found)
	assert.Equal(t, "alice@example.com", got.Account.Email)
	assert.Equal(t, "Alice", got.Account.FirstName)
	assert.True(t, got.Account.Active)
	assert.False(t, got.Account.EmailConfirmed)
	assert.Equal(t, []string{identity.RoleUser}, got.Account.Roles)

	events := f.Store.Events()
	require.Len(t, events, 1)
	assert.Equal(t, identity.EventUserRegistered, events[0].Type)
	assert.Equal(t, res.AccountID, events[0].AggregateID)
	var payload identity.UserRegisteredPayload
	require.NoError(t, json.Unmarshal(events[0].Payload, &payload))
	assert.Equal(t, "alice@example.com", payload.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	f := identitytest.NewFixture(t)
	f.Register(t, "dup@example.com", alicePassword)

	res, err := f.Service.Register(ctx, registerCmd("DUP@example.com"))
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, identity.MsgEmailExists, res.Message)
}

func TestRegister_StoresLowercasedEmail(t *testing.T) {
	ctx := context.Background()
	f := identitytest.NewFixture(t)

	res, err := f.Service.Register(ctx, registerCmd("  Bob@Example.COM "))
	require.NoError(t, err)
	require.True(t, res.Success, res.Message)

	got, err := f.Service.GetAccount(ctx, identity.GetAccountQuery{AccountID: res.AccountID})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", got.Account.Email)

	assert.True(t, login(t, f, "BOB@example.com", alicePassword).Success)
}

func TestRegister_PasswordIsHashed(t *testing.T) {
	ctx := context.Background()
	f := identitytest.NewFixture(t)
	res := f.Register(t, "hashed@example.com", alicePassword)

	acct, err := f.Store.Stores().Accounts.GetByID(ctx, res.AccountID)
	require.NoError(t, err)
	assert.NotEqual(t, alicePassword, acct.PasswordHash)
	assert.Contains(t, acct.PasswordHash, "$argon2id$")
}

func TestRegister_RolesNotSeeded(t *testing.T) {
	ctx := context.Background()
	store := identitytest.NewStore()
	signer, err := identity.NewJWTSigner(identity.SignerConfig{Secret: identitytest.TestSecret})
	require.NoError(t, err)
	svc, err := identity.NewService(store.Stores(), identitytest.FastHasher(), signer)
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerCmd("early@example.com"))
	require.Error(t, err)
	errutil.AssertFailure(t, err, errutil.Failure{Class: identity.ErrConfiguration, Code: identity.CodeConfigInvalid})
	assert.False(t, identity.IsRetryable(err))

	_, err = store.Stores().Accounts.GetByEmail(ctx, "early@example.com")
	assert.ErrorIs(t, err, identity.ErrNotFound)
}

func TestRegister_EventAppendFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	f := identitytest.NewFixture(t)
	f.Store.Fail(identitytest.OpEventsAppend, errors.New("disk full"))

	_, err := f.Service.Register(ctx, registerCmd("rollback@example.com"))
	require.Error(t, err)
	assert.True(t, identity.IsRetryable(err))
	errutil.AssertFailure(t, err, storageFailure.WithOperation("append events"))

	_, err = f.Store.Stores().Accounts.GetByEmail(ctx, "rollback@example.com")
	assert.ErrorIs(t, err, identity.ErrNotFound)
	assert.Zero(t, f.Store.Assignments())

	f.Store.ClearFailures()
	res, err := f.Service.Register(ctx, registerCmd("rollback@example.com"))
	require.NoError(t, err)
	assert.True(t, res.Success)
}
