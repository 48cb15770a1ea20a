// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// Refresh token configuration.
const (
	RefreshTokenBytes = 32 // 256 bits of entropy
)

// RefreshToken is a persisted refresh-token record. Only the SHA-256 digest
// of the token value is stored; the plaintext is handed to the client once.
type RefreshToken struct {
	ID        ulid.ULID
	AccountID ulid.ULID
	TokenHash string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Revoked   bool
	RevokedAt *time.Time
}

// NewRefreshToken creates a validated RefreshToken record.
func NewRefreshToken(accountID ulid.ULID, tokenHash string, issuedAt, expiresAt time.Time) (*RefreshToken, error) {
	if isZeroID(accountID) {
		return nil, oops.Code("REFRESH_TOKEN_INVALID_ACCOUNT").Errorf("account ID cannot be zero")
	}
	if tokenHash == "" {
		return nil, oops.Code("REFRESH_TOKEN_INVALID_HASH").Errorf("token hash cannot be empty")
	}
	if !expiresAt.After(issuedAt) {
		return nil, oops.Code("REFRESH_TOKEN_INVALID_EXPIRY").
			With("issued_at", issuedAt).
			With("expires_at", expiresAt).
			Errorf("expiry must be after issue time")
	}
	return &RefreshToken{
		ID:        NewID(),
		AccountID: accountID,
		TokenHash: tokenHash,
		IssuedAt:  issuedAt.UTC(),
		ExpiresAt: expiresAt.UTC(),
	}, nil
}

// ValidAt reports whether the token can be exchanged at t: not revoked and
// t is not after ExpiresAt.
func (t *RefreshToken) ValidAt(at time.Time) bool {
	return !t.Revoked && !at.After(t.ExpiresAt)
}

// GenerateRefreshToken creates a random token value and its digest.
// Returns (plaintext_token, sha256_hex_digest, error).
func GenerateRefreshToken() (token, hash string, err error) {
	b := make([]byte, RefreshTokenBytes)
	if _, err = rand.Read(b); err != nil {
		return "", "", oops.Code("REFRESH_TOKEN_GENERATE_FAILED").
			With("operation", "crypto/rand.Read").
			With("requested_bytes", RefreshTokenBytes).
			Wrap(err)
	}
	token = base64.StdEncoding.EncodeToString(b)
	return token, HashRefreshToken(token), nil
}

// HashRefreshToken computes the lookup digest of a refresh token value.
func HashRefreshToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}
