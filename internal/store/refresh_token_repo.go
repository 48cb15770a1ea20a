// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/bankcore/identity/internal/identity"
)

const refreshTokenColumns = `id, account_id, token_hash, issued_at, expires_at, revoked, revoked_at`

// RefreshTokenRepository implements identity.RefreshTokenStore using
// PostgreSQL. Only token digests are stored.
type RefreshTokenRepository struct {
	pool Pool
}

// NewRefreshTokenRepository creates a new refresh token repository.
func NewRefreshTokenRepository(pool Pool) *RefreshTokenRepository {
	return &RefreshTokenRepository{pool: pool}
}

// Compile-time interface check.
var _ identity.RefreshTokenStore = (*RefreshTokenRepository)(nil)

// Create persists a token record.
func (r *RefreshTokenRepository) Create(ctx context.Context, token *identity.RefreshToken) error {
	_, err := conn(ctx, r.pool).Exec(ctx,
		`INSERT INTO refresh_tokens (`+refreshTokenColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		token.ID.String(),
		token.AccountID.String(),
		token.TokenHash,
		token.IssuedAt.UTC(),
		token.ExpiresAt.UTC(),
		token.Revoked,
		nullableTime(token.RevokedAt),
	)
	if err != nil {
		return oops.With("operation", "create refresh token").With("account_id", token.AccountID.String()).Wrap(err)
	}
	return nil
}

// GetByHash retrieves a token by its digest.
func (r *RefreshTokenRepository) GetByHash(ctx context.Context, tokenHash string) (*identity.RefreshToken, error) {
	row := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+refreshTokenColumns+` FROM refresh_tokens WHERE token_hash = $1`, tokenHash)
	token, err := scanRefreshToken(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("REFRESH_TOKEN_NOT_FOUND").Wrap(identity.ErrNotFound)
	}
	if err != nil {
		return nil, oops.With("operation", "get refresh token").Wrap(err)
	}
	return token, nil
}

// Revoke marks a token revoked if it is still valid at at. Exactly one of
// several concurrent callers succeeds.
func (r *RefreshTokenRepository) Revoke(ctx context.Context, id ulid.ULID, at time.Time) error {
	at = at.UTC()
	result, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE refresh_tokens
		SET revoked = TRUE, revoked_at = $2
		WHERE id = $1 AND NOT revoked AND expires_at >= $2`,
		id.String(), at)
	if err != nil {
		return oops.With("operation", "revoke refresh token").With("id", id.String()).Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("REFRESH_TOKEN_NOT_ACTIVE").With("id", id.String()).Wrap(identity.ErrTokenNotActive)
	}
	return nil
}

// RevokeAllForAccount revokes every unrevoked token of an account.
func (r *RefreshTokenRepository) RevokeAllForAccount(ctx context.Context, accountID ulid.ULID, at time.Time) (int, error) {
	result, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE refresh_tokens
		SET revoked = TRUE, revoked_at = $2
		WHERE account_id = $1 AND NOT revoked`,
		accountID.String(), at.UTC())
	if err != nil {
		return 0, oops.With("operation", "revoke account tokens").With("account_id", accountID.String()).Wrap(err)
	}
	return int(result.RowsAffected()), nil
}

// ListByAccount returns an account's tokens newest first.
func (r *RefreshTokenRepository) ListByAccount(ctx context.Context, accountID ulid.ULID) ([]*identity.RefreshToken, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+refreshTokenColumns+` FROM refresh_tokens WHERE account_id = $1 ORDER BY issued_at DESC, id DESC`,
		accountID.String())
	if err != nil {
		return nil, oops.With("operation", "list refresh tokens").With("account_id", accountID.String()).Wrap(err)
	}
	defer rows.Close()

	var tokens []*identity.RefreshToken
	for rows.Next() {
		token, err := scanRefreshToken(rows)
		if err != nil {
			return nil, oops.With("operation", "scan refresh token row").Wrap(err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.With("operation", "iterate refresh tokens").Wrap(err)
	}
	return tokens, nil
}

func scanRefreshToken(row pgx.Row) (*identity.RefreshToken, error) {
	var (
		t                   identity.RefreshToken
		idStr, accountIDStr string
	)
	err := row.Scan(&idStr, &accountIDStr, &t.TokenHash, &t.IssuedAt, &t.ExpiresAt, &t.Revoked, &t.RevokedAt)
	if err != nil {
		return nil, err
	}
	if t.ID, err = ulid.Parse(idStr); err != nil {
		return nil, oops.Code("REFRESH_TOKEN_CORRUPT_ID").With("id", idStr).Wrap(err)
	}
	if t.AccountID, err = ulid.Parse(accountIDStr); err != nil {
		return nil, oops.Code("REFRESH_TOKEN_CORRUPT_ID").With("account_id", accountIDStr).Wrap(err)
	}
	return &t, nil
}
