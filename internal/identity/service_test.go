// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bankcore/identity/internal/identity"
	"github.com/bankcore/identity/internal/identity/identitytest"
	"github.com/bankcore/identity/internal/identity/mocks"
	"github.com/bankcore/identity/pkg/errutil"
)

var storageFailure = errutil.Failure{Class: identity.ErrStorage, Code: identity.CodeStorageFailed}

type passthroughTx struct{}

func (passthroughTx) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockedService struct {
	accounts *mocks.MockCredentialStore
	roles    *mocks.MockRoleStore
	tokens   *mocks.MockRefreshTokenStore
	events   *mocks.MockEventLog
	hasher   *mocks.MockPasswordHasher
	svc      *identity.Service
}

func newMockedService(t *testing.T) *mockedService {
	t.Helper()
	m := &mockedService{
		accounts: mocks.NewMockCredentialStore(t),
		roles:    mocks.NewMockRoleStore(t),
		tokens:   mocks.NewMockRefreshTokenStore(t),
		events:   mocks.NewMockEventLog(t),
		hasher:   mocks.NewMockPasswordHasher(t),
	}
	signer, err := identity.NewJWTSigner(identity.SignerConfig{Secret: identitytest.TestSecret})
	require.NoError(t, err)
	m.svc, err = identity.NewService(identity.Stores{
		Accounts:   m.accounts,
		Roles:      m.roles,
		Tokens:     m.tokens,
		Events:     m.events,
		Transactor: passthroughTx{},
	}, m.hasher, signer, identity.WithClock(func() time.Time { return identitytest.Epoch }))
	require.NoError(t, err)
	return m
}

func TestNewService_ConfigurationErrors(t *testing.T) {
	store := identitytest.NewStore()
	signer, err := identity.NewJWTSigner(identity.SignerConfig{Secret: identitytest.TestSecret})
	require.NoError(t, err)
	hasher := identitytest.FastHasher()

	tests := []struct {
		name   string
		stores identity.Stores
		hasher identity.PasswordHasher
		signer identity.TokenSigner
		opts   []identity.Option
	}{
		{"missing accounts", identity.Stores{}, hasher, signer, nil},
		{"missing hasher", store.Stores(), nil, signer, nil},
		{"missing signer", store.Stores(), hasher, nil, nil},
		{"bad threshold", store.Stores(), hasher, signer,
			[]identity.Option{identity.WithLockoutPolicy(identity.LockoutPolicy{Threshold: 0, Duration: time.Minute})}},
		{"bad refresh ttl", store.Stores(), hasher, signer,
			[]identity.Option{identity.WithRefreshTokenTTL(-time.Hour)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := identity.NewService(tt.stores, tt.hasher, tt.signer, tt.opts...)
			require.Error(t, err)
			assert.True(t, identity.IsConfigurationError(err))
			errutil.AssertErrorCode(t, err, identity.CodeConfigInvalid)
		})
	}
}

func TestLogin_UnknownEmailVerifiesDummyHash(t *testing.T) {
	m := newMockedService(t)
	ctx := context.Background()

	m.accounts.EXPECT().GetByEmail(ctx, "ghost@x").Return(nil, identity.ErrNotFound)
	m.hasher.EXPECT().Verify("pw", mock.MatchedBy(func(h string) bool {
		return strings.HasPrefix(h, "$argon2id$")
	})).Return(false, nil)

	res, err := m.svc.Login(ctx, identity.LoginCommand{Email: "ghost@x", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, identity.MsgInvalidCredentials, res.Message)
}

func TestLogin_StorageFailureIsRetryable(t *testing.T) {
	m := newMockedService(t)
	ctx := context.Background()

	m.accounts.EXPECT().GetByEmail(ctx, "a@x").Return(nil, errors.New("connection reset"))

	_, err := m.svc.Login(ctx, identity.LoginCommand{Email: "a@x", Password: "pw"})
	require.Error(t, err)
	assert.True(t, identity.IsRetryable(err))
	errutil.AssertFailure(t, err, storageFailure.WithOperation("get account by email"))
}

func TestLogin_CancelledIsNotRetryable(t *testing.T) {
	m := newMockedService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m.accounts.EXPECT().GetByEmail(ctx, "a@x").Return(nil, context.Canceled)

	_, err := m.svc.Login(ctx, identity.LoginCommand{Email: "a@x", Password: "pw"})
	require.Error(t, err)
	assert.False(t, identity.IsRetryable(err))
}

func TestLogin_HashVerifyError(t *testing.T) {
	m := newMockedService(t)
	ctx := context.Background()
	acct := &identity.Account{ID: identity.NewID(), Email: "a@x", PasswordHash: "corrupt", Active: true}

	m.accounts.EXPECT().GetByEmail(ctx, "a@x").Return(acct, nil)
	m.hasher.EXPECT().Verify("pw", "corrupt").Return(false, errors.New("invalid hash format"))

	_, err := m.svc.Login(ctx, identity.LoginCommand{Email: "a@x", Password: "pw"})
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "LOGIN_VERIFY_FAILED")
	errutil.AssertErrorContext(t, err, "account_id", acct.ID.String())
}

func TestLogin_ThresholdReachedAppendsLockEvent(t *testing.T) {
	m := newMockedService(t)
	ctx := context.Background()
	acct := &identity.Account{ID: identity.NewID(), Email: "a@x", PasswordHash: "h", Active: true}
	until := identitytest.Epoch.Add(identity.DefaultLockoutDuration)

	m.accounts.EXPECT().GetByEmail(ctx, "a@x").Return(acct, nil)
	m.hasher.EXPECT().Verify("bad", "h").Return(false, nil)
	m.accounts.EXPECT().
		RecordFailedLogin(ctx, acct.ID, identitytest.Epoch, identity.DefaultLockoutPolicy()).
		Return(identity.FailedLogin{
			Count:  5,
			Lock:   identity.Lock{Kind: identity.LockThrottle, Until: &until},
			Locked: true,
		}, nil)
	m.events.EXPECT().Append(ctx, mock.MatchedBy(func(ev identity.Event) bool {
		return ev.Type == identity.EventUserLocked && ev.AggregateID == acct.ID
	})).Return(nil)

	res, err := m.svc.Login(ctx, identity.LoginCommand{Email: "a@x", Password: "bad"})
	require.NoError(t, err)
	assert.Equal(t, identity.MsgAccountLocked, res.Message)
}

func TestLogin_LockEventFailureFailsLogin(t *testing.T) {
	m := newMockedService(t)
	ctx := context.Background()
	acct := &identity.Account{ID: identity.NewID(), Email: "a@x", PasswordHash: "h", Active: true}
	until := identitytest.Epoch.Add(identity.DefaultLockoutDuration)

	m.accounts.EXPECT().GetByEmail(ctx, "a@x").Return(acct, nil)
	m.hasher.EXPECT().Verify("bad", "h").Return(false, nil)
	m.accounts.EXPECT().RecordFailedLogin(ctx, acct.ID, mock.Anything, mock.Anything).
		Return(identity.FailedLogin{Count: 5, Lock: identity.Lock{Kind: identity.LockThrottle, Until: &until}, Locked: true}, nil)
	m.events.EXPECT().Append(ctx, mock.Anything).Return(errors.New("write failed"))

	_, err := m.svc.Login(ctx, identity.LoginCommand{Email: "a@x", Password: "bad"})
	errutil.AssertFailure(t, err, storageFailure.WithOperation("append events"))
}

func TestRefresh_RevokeLostRace(t *testing.T) {
	m := newMockedService(t)
	ctx := context.Background()
	acct := &identity.Account{ID: identity.NewID(), Email: "a@x", Active: true}
	tok := &identity.RefreshToken{
		ID:        identity.NewID(),
		AccountID: acct.ID,
		TokenHash: identity.HashRefreshToken("r1"),
		ExpiresAt: identitytest.Epoch.Add(time.Hour),
	}

	m.tokens.EXPECT().GetByHash(ctx, tok.TokenHash).Return(tok, nil)
	m.accounts.EXPECT().GetByID(ctx, acct.ID).Return(acct, nil)
	m.tokens.EXPECT().Revoke(ctx, tok.ID, identitytest.Epoch).Return(identity.ErrTokenNotActive)

	res, err := m.svc.Refresh(ctx, identity.RefreshCommand{RefreshToken: "r1"})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, identity.MsgInvalidRefreshToken, res.Message)
}

func TestRefresh_SuccessorInsertFailure(t *testing.T) {
	m := newMockedService(t)
	ctx := context.Background()
	acct := &identity.Account{ID: identity.NewID(), Email: "a@x", Active: true}
	tok := &identity.RefreshToken{
		ID:        identity.NewID(),
		AccountID: acct.ID,
		TokenHash: identity.HashRefreshToken("r1"),
		ExpiresAt: identitytest.Epoch.Add(time.Hour),
	}

	m.tokens.EXPECT().GetByHash(ctx, tok.TokenHash).Return(tok, nil)
	m.accounts.EXPECT().GetByID(ctx, acct.ID).Return(acct, nil)
	m.tokens.EXPECT().Revoke(ctx, tok.ID, identitytest.Epoch).Return(nil)
	m.roles.EXPECT().RolesForAccount(ctx, acct.ID).Return([]*identity.Role{{Name: identity.RoleUser}}, nil)
	m.tokens.EXPECT().Create(ctx, mock.AnythingOfType("*identity.RefreshToken")).Return(errors.New("unique violation"))

	_, err := m.svc.Refresh(ctx, identity.RefreshCommand{RefreshToken: "r1"})
	require.Error(t, err)
	assert.True(t, identity.IsRetryable(err))
	errutil.AssertFailure(t, err, storageFailure.WithOperation("create refresh token"))
}
