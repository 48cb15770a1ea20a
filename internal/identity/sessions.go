// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity

import (
	"context"
	"errors"
)

// RevokeRefreshToken revokes a single refresh token. Unknown, expired and
// already revoked tokens also succeed so the caller learns nothing about
// which tokens exist.
func (s *Service) RevokeRefreshToken(ctx context.Context, cmd RevokeTokenCommand) (CommandResult, error) {
	now := s.now()
	digest := HashRefreshToken(cmd.RefreshToken)

	err := s.tx.InTransaction(ctx, func(ctx context.Context) error {
		token, err := s.tokens.GetByHash(ctx, digest)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return storageError("get refresh token", err)
		}
		err = s.tokens.Revoke(ctx, token.ID, now)
		if err != nil && !errors.Is(err, ErrTokenNotActive) {
			return storageError("revoke refresh token", err)
		}
		return nil
	})
	if err != nil {
		return CommandResult{}, err
	}
	return CommandResult{Success: true, Message: MsgTokenRevoked}, nil
}

// RevokeAllSessions revokes every refresh token of an account and reports
// how many were revoked. Issued access tokens stay valid until they expire.
func (s *Service) RevokeAllSessions(ctx context.Context, cmd RevokeSessionsCommand) (SessionsResult, error) {
	now := s.now()

	var out SessionsResult
	err := s.tx.InTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.accounts.GetByID(ctx, cmd.AccountID); err != nil {
			if errors.Is(err, ErrNotFound) {
				out = SessionsResult{Message: MsgUserNotFound}
				return nil
			}
			return storageError("get account", err)
		}
		n, err := s.tokens.RevokeAllForAccount(ctx, cmd.AccountID, now)
		if err != nil {
			return storageError("revoke refresh tokens", err)
		}
		out = SessionsResult{Revoked: n, Success: true, Message: MsgSessionsRevoked}
		return nil
	})
	if err != nil {
		return SessionsResult{}, err
	}

	if out.Success {
		s.logger.InfoContext(ctx, "sessions revoked",
			"account_id", cmd.AccountID.String(),
			"count", out.Revoked)
	}
	return out, nil
}
