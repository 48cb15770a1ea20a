// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankcore/identity/internal/identity"
	"github.com/bankcore/identity/internal/identity/identitytest"
	"github.com/bankcore/identity/pkg/errutil"
)

func newSigner(t *testing.T, cfg identity.SignerConfig) *identity.JWTSigner {
	t.Helper()
	if cfg.Secret == nil {
		cfg.Secret = identitytest.TestSecret
	}
	s, err := identity.NewJWTSigner(cfg)
	require.NoError(t, err)
	return s
}

func TestJWTSigner_RoundTrip(t *testing.T) {
	s := newSigner(t, identity.SignerConfig{})
	subject := identity.TokenSubject{
		AccountID: identity.NewID(),
		Email:     "a@x",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Roles:     []string{"Admin", "User"},
	}
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	signed, err := s.Sign(subject, issued)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(identity.DefaultAccessTokenTTL), signed.ExpiresAt)

	claims, err := s.Verify(signed.Token, signed.ExpiresAt.Add(-time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, subject.AccountID.String(), claims.Subject)
	assert.Equal(t, "Ada", claims.GivenName)
	assert.Equal(t, "Lovelace", claims.FamilyName)
	assert.Equal(t, subject.Roles, claims.Roles)
	assert.Equal(t, identity.DefaultIssuer, claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{identity.DefaultAudience}, claims.Audience)
	assert.NotEmpty(t, claims.ID)

	id, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, subject.AccountID, id)

	_, err = s.Verify(signed.Token, signed.ExpiresAt)
	require.Error(t, err)
	assert.ErrorIs(t, err, identity.ErrAccessTokenExpired)
	errutil.AssertErrorCode(t, err, "TOKEN_EXPIRED")

	_, err = s.Verify(signed.Token, signed.ExpiresAt.Add(time.Millisecond))
	assert.ErrorIs(t, err, identity.ErrAccessTokenExpired)
}

func TestJWTSigner_SubSecondIssueTime(t *testing.T) {
	s := newSigner(t, identity.SignerConfig{TTL: time.Minute})
	issued := time.Date(2026, 1, 1, 12, 0, 0, 900_000_000, time.UTC)

	signed, err := s.Sign(identity.TokenSubject{AccountID: identity.NewID()}, issued)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 12, 1, 0, 0, time.UTC), signed.ExpiresAt)

	_, err = s.Verify(signed.Token, signed.ExpiresAt.Add(-time.Millisecond))
	assert.NoError(t, err)
}

func TestJWTSigner_RejectsForeignTokens(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := newSigner(t, identity.SignerConfig{})
	subject := identity.TokenSubject{AccountID: identity.NewID()}

	tests := []struct {
		name   string
		signer *identity.JWTSigner
	}{
		{"different secret", newSigner(t, identity.SignerConfig{Secret: []byte("ffffffffffffffffffffffffffffffff")})},
		{"different issuer", newSigner(t, identity.SignerConfig{Issuer: "other"})},
		{"different audience", newSigner(t, identity.SignerConfig{Audience: "other"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed, err := tt.signer.Sign(subject, issued)
			require.NoError(t, err)
			_, err = s.Verify(signed.Token, issued)
			require.Error(t, err)
			assert.ErrorIs(t, err, identity.ErrAccessTokenInvalid)
		})
	}
}

func TestJWTSigner_RejectsOtherAlgorithms(t *testing.T) {
	s := newSigner(t, identity.SignerConfig{})
	claims := jwt.RegisteredClaims{
		Issuer:    identity.DefaultIssuer,
		Audience:  jwt.ClaimStrings{identity.DefaultAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(identitytest.TestSecret)
	require.NoError(t, err)

	_, err = s.Verify(token, time.Now())
	assert.ErrorIs(t, err, identity.ErrAccessTokenInvalid)
}

func TestNewJWTSigner_Configuration(t *testing.T) {
	tests := []struct {
		name string
		cfg  identity.SignerConfig
	}{
		{"missing secret", identity.SignerConfig{}},
		{"short secret", identity.SignerConfig{Secret: []byte("short")}},
		{"negative ttl", identity.SignerConfig{Secret: identitytest.TestSecret, TTL: -time.Second}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := identity.NewJWTSigner(tt.cfg)
			require.Error(t, err)
			assert.True(t, identity.IsConfigurationError(err))
			assert.False(t, identity.IsRetryable(err))
		})
	}
}
