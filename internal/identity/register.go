// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity

import (
	"context"
	"errors"

	"github.com/samber/oops"
)

// Register creates an account, grants the default role and records a
// UserRegistered event in one transaction.
func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (RegisterResult, error) {
	now := s.now()
	email := NormalizeEmail(cmd.Email)

	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return RegisterResult{Message: MsgEmailExists}, nil
	} else if !errors.Is(err, ErrNotFound) {
		return RegisterResult{}, storageError("get account by email", err)
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return RegisterResult{}, oops.Code("REGISTER_HASH_FAILED").Wrap(err)
	}

	account, err := NewAccount(email, hash, cmd.FirstName, cmd.LastName, cmd.BirthDate, now)
	if err != nil {
		return RegisterResult{}, err
	}

	err = s.tx.InTransaction(ctx, func(ctx context.Context) error {
		role, err := s.roles.GetByName(ctx, DefaultRole)
		if errors.Is(err, ErrNotFound) {
			return configError("default role %q does not exist; seed roles first", DefaultRole)
		}
		if err != nil {
			return storageError("get default role", err)
		}

		if err := s.accounts.Create(ctx, account); err != nil {
			if errors.Is(err, ErrDuplicateEmail) {
				return err
			}
			return storageError("create account", err)
		}

		if err := s.roles.Assign(ctx, AccountRole{AccountID: account.ID, RoleID: role.ID, AssignedAt: now}); err != nil {
			return storageError("assign default role", err)
		}

		event, err := UserRegistered(account, now)
		if err != nil {
			return err
		}
		return s.appendEvents(ctx, event)
	})
	if errors.Is(err, ErrDuplicateEmail) {
		return RegisterResult{Message: MsgEmailExists}, nil
	}
	if err != nil {
		return RegisterResult{}, err
	}

	s.logger.InfoContext(ctx, "account registered", "account_id", account.ID.String())
	return RegisterResult{AccountID: account.ID, Success: true, Message: MsgRegistered}, nil
}
