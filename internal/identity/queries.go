// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity

import (
	"context"
	"errors"
	"time"
)

// GetAccount returns the read model of one account.
func (s *Service) GetAccount(ctx context.Context, q GetAccountQuery) (AccountResult, error) {
	account, err := s.accounts.GetByID(ctx, q.AccountID)
	if errors.Is(err, ErrNotFound) {
		return AccountResult{Message: MsgUserNotFound}, nil
	}
	if err != nil {
		return AccountResult{}, storageError("get account", err)
	}

	view, err := s.view(ctx, account, s.now())
	if err != nil {
		return AccountResult{}, err
	}
	return AccountResult{Found: true, Account: &view}, nil
}

// ListAccounts returns one page of accounts ordered by creation time.
func (s *Service) ListAccounts(ctx context.Context, q ListAccountsQuery) (AccountPage, error) {
	offset := (q.Page - 1) * q.PageSize
	accounts, total, err := s.accounts.List(ctx, offset, q.PageSize)
	if err != nil {
		return AccountPage{}, storageError("list accounts", err)
	}

	now := s.now()
	views := make([]AccountView, 0, len(accounts))
	for _, a := range accounts {
		v, err := s.view(ctx, a, now)
		if err != nil {
			return AccountPage{}, err
		}
		views = append(views, v)
	}

	return AccountPage{
		Accounts:   views,
		TotalCount: total,
		Page:       q.Page,
		PageSize:   q.PageSize,
		Success:    true,
	}, nil
}

// VerifyAccessToken checks an access token and returns its claims.
func (s *Service) VerifyAccessToken(_ context.Context, q VerifyTokenQuery) (VerifyResult, error) {
	claims, err := s.signer.Verify(q.AccessToken, s.now())
	switch {
	case errors.Is(err, ErrAccessTokenExpired):
		return VerifyResult{Message: MsgAccessTokenExpired}, nil
	case err != nil:
		return VerifyResult{Message: MsgAccessTokenInvalid}, nil
	}
	return VerifyResult{Valid: true, Claims: claims, Message: MsgAccessTokenValid}, nil
}

// AccountEvents returns the recorded events of an account in order.
func (s *Service) AccountEvents(ctx context.Context, q AccountEventsQuery) (EventsResult, error) {
	if _, err := s.accounts.GetByID(ctx, q.AccountID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return EventsResult{Message: MsgUserNotFound}, nil
		}
		return EventsResult{}, storageError("get account", err)
	}
	events, err := s.events.ListByAggregate(ctx, q.AccountID)
	if err != nil {
		return EventsResult{}, storageError("list events", err)
	}
	return EventsResult{Events: events, Success: true}, nil
}

func (s *Service) view(ctx context.Context, a *Account, now time.Time) (AccountView, error) {
	roles, err := s.roles.RolesForAccount(ctx, a.ID)
	if err != nil {
		return AccountView{}, storageError("get account roles", err)
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}

	lock, locked := NoLock(), a.IsLockedAt(now)
	if locked {
		lock = a.Lock
	}

	return AccountView{
		ID:               a.ID,
		Email:            a.Email,
		FirstName:        a.FirstName,
		LastName:         a.LastName,
		BirthDate:        a.BirthDate,
		Active:           a.Active,
		EmailConfirmed:   a.EmailConfirmed,
		Locked:           locked,
		Lock:             lock,
		FailedLoginCount: a.FailedLoginCount,
		LastLoginAt:      a.LastLoginAt,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
		Roles:            names,
	}, nil
}
