// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity

import (
	"context"
	"errors"

	"github.com/oklog/ulid/v2"
)

// Lock places an indefinite administrative lock on an account and revokes
// its refresh tokens in the same transaction, as deactivation does. Issued
// access tokens stay valid until they expire. Locking an already locked
// account succeeds, replaces the lock and records another event.
func (s *Service) Lock(ctx context.Context, cmd LockCommand) (CommandResult, error) {
	now := s.now()
	lock := AdminLock(cmd.Reason, now)

	return s.mutateAccount(ctx, cmd.AccountID, "lock account", func(ctx context.Context, account *Account) (CommandResult, error) {
		if err := s.accounts.SetLock(ctx, account.ID, lock, now); err != nil {
			return CommandResult{}, storageError("set lock", err)
		}
		revoked, err := s.tokens.RevokeAllForAccount(ctx, account.ID, now)
		if err != nil {
			return CommandResult{}, storageError("revoke refresh tokens", err)
		}
		event, err := UserLocked(account.ID, lock, now)
		if err != nil {
			return CommandResult{}, err
		}
		if err := s.appendEvents(ctx, event); err != nil {
			return CommandResult{}, err
		}
		s.logger.InfoContext(ctx, "account locked",
			"account_id", account.ID.String(),
			"revoked_sessions", revoked)
		return CommandResult{Success: true, Message: MsgUserLocked}, nil
	})
}

// Unlock clears any lock. The failed-login counter is left unchanged; the
// next successful login resets it.
func (s *Service) Unlock(ctx context.Context, cmd UnlockCommand) (CommandResult, error) {
	now := s.now()

	return s.mutateAccount(ctx, cmd.AccountID, "unlock account", func(ctx context.Context, account *Account) (CommandResult, error) {
		if err := s.accounts.SetLock(ctx, account.ID, NoLock(), now); err != nil {
			return CommandResult{}, storageError("clear lock", err)
		}
		event, err := UserUnlocked(account.ID, now)
		if err != nil {
			return CommandResult{}, err
		}
		if err := s.appendEvents(ctx, event); err != nil {
			return CommandResult{}, err
		}
		s.logger.InfoContext(ctx, "account unlocked", "account_id", account.ID.String())
		return CommandResult{Success: true, Message: MsgUserUnlocked}, nil
	})
}

// SetActive activates or deactivates an account. Deactivation revokes every
// refresh token of the account in the same transaction. Setting the current
// state again succeeds without recording an event.
func (s *Service) SetActive(ctx context.Context, cmd SetActiveCommand) (CommandResult, error) {
	now := s.now()
	message := MsgUserDeactivated
	if cmd.Active {
		message = MsgUserActivated
	}

	return s.mutateAccount(ctx, cmd.AccountID, "set active", func(ctx context.Context, account *Account) (CommandResult, error) {
		if account.Active == cmd.Active {
			return CommandResult{Success: true, Message: message}, nil
		}

		account.Active = cmd.Active
		account.UpdatedAt = now
		if err := s.accounts.Update(ctx, account); err != nil {
			return CommandResult{}, storageError("update account", err)
		}
		if !cmd.Active {
			if _, err := s.tokens.RevokeAllForAccount(ctx, account.ID, now); err != nil {
				return CommandResult{}, storageError("revoke refresh tokens", err)
			}
		}
		event, err := ActiveChanged(account.ID, cmd.Active, now)
		if err != nil {
			return CommandResult{}, err
		}
		if err := s.appendEvents(ctx, event); err != nil {
			return CommandResult{}, err
		}
		s.logger.InfoContext(ctx, "account active state changed",
			"account_id", account.ID.String(),
			"active", cmd.Active)
		return CommandResult{Success: true, Message: message}, nil
	})
}

// mutateAccount loads an account inside a transaction and applies fn. A
// missing account yields "User not found".
func (s *Service) mutateAccount(
	ctx context.Context,
	id ulid.ULID,
	operation string,
	fn func(ctx context.Context, account *Account) (CommandResult, error),
) (CommandResult, error) {
	var out CommandResult
	err := s.tx.InTransaction(ctx, func(ctx context.Context) error {
		account, err := s.accounts.GetByID(ctx, id)
		if errors.Is(err, ErrNotFound) {
			out = CommandResult{Message: MsgUserNotFound}
			return nil
		}
		if err != nil {
			return storageError(operation, err)
		}
		out, err = fn(ctx, account)
		return err
	})
	if err != nil {
		return CommandResult{}, err
	}
	return out, nil
}
