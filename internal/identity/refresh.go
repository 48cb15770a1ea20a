// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity

import (
	"context"
	"errors"
)

// Refresh rotates a refresh token. The presented token is revoked and its
// successor created in one transaction, so a given token can be exchanged
// at most once. If two requests race on the same token, the conditional
// revoke lets exactly one of them win.
func (s *Service) Refresh(ctx context.Context, cmd RefreshCommand) (TokenResult, error) {
	now := s.now()
	digest := HashRefreshToken(cmd.RefreshToken)

	var out TokenResult
	err := s.tx.InTransaction(ctx, func(ctx context.Context) error {
		token, err := s.tokens.GetByHash(ctx, digest)
		if errors.Is(err, ErrNotFound) {
			out = TokenResult{Message: MsgInvalidRefreshToken}
			return nil
		}
		if err != nil {
			return storageError("get refresh token", err)
		}
		if !token.ValidAt(now) {
			out = TokenResult{Message: MsgInvalidRefreshToken}
			return nil
		}

		account, err := s.accounts.GetByID(ctx, token.AccountID)
		if errors.Is(err, ErrNotFound) {
			out = TokenResult{Message: MsgUserNotFoundOrGone}
			return nil
		}
		if err != nil {
			return storageError("get account", err)
		}
		if !account.Active {
			out = TokenResult{Message: MsgUserNotFoundOrGone}
			return nil
		}

		if err := s.tokens.Revoke(ctx, token.ID, now); err != nil {
			if errors.Is(err, ErrTokenNotActive) {
				out = TokenResult{Message: MsgInvalidRefreshToken}
				return nil
			}
			return storageError("revoke refresh token", err)
		}

		sess, err := s.newSession(ctx, account, now)
		if err != nil {
			return err
		}
		if err := s.tokens.Create(ctx, sess.refreshToken); err != nil {
			return storageError("create refresh token", err)
		}
		out = sess.result(MsgTokenRefreshed)
		return nil
	})
	if err != nil {
		return TokenResult{}, err
	}

	if out.Success {
		s.logger.InfoContext(ctx, "refresh token rotated")
	}
	return out, nil
}
