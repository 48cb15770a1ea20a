// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// session is a signed access token plus an unpersisted refresh token.
type session struct {
	access       SignedToken
	refresh      string
	refreshToken *RefreshToken
}

func (s session) result(message string) TokenResult {
	return TokenResult{
		AccessToken:      s.access.Token,
		RefreshToken:     s.refresh,
		ExpiresAt:        s.access.ExpiresAt,
		RefreshExpiresAt: s.refreshToken.ExpiresAt,
		Success:          true,
		Message:          message,
	}
}

// Login verifies credentials and issues a token pair.
//
// Unknown emails and wrong passwords produce the same result, and an
// unknown email still runs a password verification so response time does
// not reveal whether the account exists.
func (s *Service) Login(ctx context.Context, cmd LoginCommand) (TokenResult, error) {
	now := s.now()

	account, lookupErr := s.accounts.GetByEmail(ctx, NormalizeEmail(cmd.Email))
	if lookupErr != nil {
		if !errors.Is(lookupErr, ErrNotFound) {
			return TokenResult{}, storageError("get account by email", lookupErr)
		}
		_, _ = s.hasher.Verify(cmd.Password, dummyPasswordHash)
		return TokenResult{Message: MsgInvalidCredentials}, nil
	}

	valid, err := s.hasher.Verify(cmd.Password, account.PasswordHash)
	if err != nil {
		return TokenResult{}, oops.Code("LOGIN_VERIFY_FAILED").
			With("account_id", account.ID.String()).
			Wrap(err)
	}

	if account.IsLockedAt(now) {
		s.logger.InfoContext(ctx, "login rejected: account locked",
			"account_id", account.ID.String(),
			"lock_kind", string(account.Lock.Kind))
		return TokenResult{Message: MsgAccountLocked}, nil
	}

	if !valid {
		return s.recordFailure(ctx, account, now)
	}

	if !account.Active {
		return TokenResult{Message: MsgAccountInactive}, nil
	}

	sess, err := s.newSession(ctx, account, now)
	if err != nil {
		return TokenResult{}, err
	}

	var rejected string
	err = s.tx.InTransaction(ctx, func(ctx context.Context) error {
		applied, err := s.accounts.RecordSuccessfulLogin(ctx, account.ID, now)
		if err != nil {
			return storageError("record successful login", err)
		}
		if !applied {
			rejected, err = s.rejectionFor(ctx, account.ID, now)
			return err
		}
		if err := s.tokens.Create(ctx, sess.refreshToken); err != nil {
			return storageError("create refresh token", err)
		}
		return nil
	})
	if err != nil {
		return TokenResult{}, err
	}
	if rejected != "" {
		s.logger.InfoContext(ctx, "login rejected: account changed during login",
			"account_id", account.ID.String(),
			"reason", rejected)
		return TokenResult{Message: rejected}, nil
	}

	s.logger.InfoContext(ctx, "login succeeded", "account_id", account.ID.String())
	return sess.result(MsgLoginSuccessful), nil
}

// rejectionFor re-reads an account whose successful login was refused by
// the store and returns the message for its current state.
func (s *Service) rejectionFor(ctx context.Context, id ulid.ULID, now time.Time) (string, error) {
	current, err := s.accounts.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return MsgInvalidCredentials, nil
	}
	if err != nil {
		return "", storageError("get account", err)
	}
	if current.IsLockedAt(now) {
		return MsgAccountLocked, nil
	}
	return MsgAccountInactive, nil
}

// recordFailure increments the failure counter. The attempt that reaches the
// threshold sets the throttle lock and records a UserLocked event in the
// same transaction.
func (s *Service) recordFailure(ctx context.Context, account *Account, now time.Time) (TokenResult, error) {
	var failed FailedLogin
	err := s.tx.InTransaction(ctx, func(ctx context.Context) error {
		var err error
		failed, err = s.accounts.RecordFailedLogin(ctx, account.ID, now, s.policy)
		if err != nil {
			return storageError("record failed login", err)
		}
		if !failed.Locked {
			return nil
		}
		event, err := UserLocked(account.ID, failed.Lock, now)
		if err != nil {
			return err
		}
		return s.appendEvents(ctx, event)
	})
	if err != nil {
		return TokenResult{}, err
	}

	if failed.Locked {
		s.logger.WarnContext(ctx, "account throttled after repeated failures",
			"account_id", account.ID.String(),
			"failed_attempts", failed.Count)
	}
	if failed.Locked || failed.Lock.ActiveAt(now) {
		return TokenResult{Message: MsgAccountLocked}, nil
	}
	return TokenResult{Message: MsgInvalidCredentials}, nil
}

// newSession signs an access token carrying the account's roles and
// prepares a refresh token record. Nothing is persisted.
func (s *Service) newSession(ctx context.Context, account *Account, now time.Time) (session, error) {
	roles, err := s.roles.RolesForAccount(ctx, account.ID)
	if err != nil {
		return session{}, storageError("get account roles", err)
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}

	access, err := s.signer.Sign(TokenSubject{
		AccountID: account.ID,
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Roles:     names,
	}, now)
	if err != nil {
		return session{}, err
	}

	plaintext, hash, err := GenerateRefreshToken()
	if err != nil {
		return session{}, err
	}
	record, err := NewRefreshToken(account.ID, hash, now, now.Add(s.refreshTTL))
	if err != nil {
		return session{}, err
	}

	return session{access: access, refresh: plaintext, refreshToken: record}, nil
}
