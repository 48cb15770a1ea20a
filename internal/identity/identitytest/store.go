// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

// Package identitytest provides in-memory identity stores and helpers for
// tests.
package identitytest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/bankcore/identity/internal/identity"
)

// Operation names accepted by Store.Fail.
const (
	OpAccountsCreate        = "accounts.create"
	OpAccountsGet           = "accounts.get"
	OpAccountsUpdate        = "accounts.update"
	OpAccountsFailedLogin   = "accounts.record_failed_login"
	OpAccountsSuccessLogin  = "accounts.record_successful_login"
	OpAccountsSetLock       = "accounts.set_lock"
	OpRolesAssign           = "roles.assign"
	OpRolesGet              = "roles.get"
	OpTokensCreate          = "tokens.create"
	OpTokensRevoke          = "tokens.revoke"
	OpEventsAppend          = "events.append"
	OpTransactionBegin      = "tx.begin"
	OpAccountsRolesForAcct  = "roles.for_account"
	OpTokensRevokeAll       = "tokens.revoke_all"
	OpTokensGetByHash       = "tokens.get_by_hash"
	OpEventsListByAggregate = "events.list_by_aggregate"
)

type txKey struct{}

type state struct {
	accounts    map[ulid.ULID]*identity.Account
	roles       map[ulid.ULID]*identity.Role
	assignments map[[2]ulid.ULID]identity.AccountRole
	tokens      map[ulid.ULID]*identity.RefreshToken
	events      []identity.Event
}

// Store is an in-memory implementation of every identity store. It is safe
// for concurrent use. Transactions are serialized; a transaction that returns
// an error restores the state captured when it began.
type Store struct {
	txMu sync.Mutex

	mu       sync.Mutex
	st       state
	failures map[string]error
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		st: state{
			accounts:    make(map[ulid.ULID]*identity.Account),
			roles:       make(map[ulid.ULID]*identity.Role),
			assignments: make(map[[2]ulid.ULID]identity.AccountRole),
			tokens:      make(map[ulid.ULID]*identity.RefreshToken),
		},
		failures: make(map[string]error),
	}
}

// Stores returns the Store as an identity.Stores bundle.
func (s *Store) Stores() identity.Stores {
	return identity.Stores{
		Accounts:   (*accountStore)(s),
		Roles:      (*roleStore)(s),
		Tokens:     (*tokenStore)(s),
		Events:     (*eventLog)(s),
		Transactor: s,
	}
}

// Fail makes every subsequent call of op return err until cleared.
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

// ClearFailures removes all injected failures.
func (s *Store) ClearFailures() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = make(map[string]error)
}

// injected returns the failure for op. Caller holds mu.
func (s *Store) injected(op string) error {
	return s.failures[op]
}

// InTransaction implements identity.Transactor. Nested calls join the
// outer transaction.
func (s *Store) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	if err := s.injected(OpTransactionBegin); err != nil {
		s.mu.Unlock()
		return err
	}
	snapshot := s.st.clone()
	s.mu.Unlock()

	err := fn(context.WithValue(ctx, txKey{}, true))
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		s.mu.Lock()
		s.st = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// Events returns every appended event in append order.
func (s *Store) Events() []identity.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]identity.Event, len(s.st.events))
	copy(out, s.st.events)
	return out
}

// Assignments returns the number of account-role rows.
func (s *Store) Assignments() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.assignments)
}

// Tokens returns every refresh token record of an account.
func (s *Store) Tokens(accountID ulid.ULID) []*identity.RefreshToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*identity.RefreshToken
	for _, t := range s.st.tokens {
		if t.AccountID == accountID {
			out = append(out, cloneToken(t))
		}
	}
	return out
}

func (st state) clone() state {
	c := state{
		accounts:    make(map[ulid.ULID]*identity.Account, len(st.accounts)),
		roles:       make(map[ulid.ULID]*identity.Role, len(st.roles)),
		assignments: make(map[[2]ulid.ULID]identity.AccountRole, len(st.assignments)),
		tokens:      make(map[ulid.ULID]*identity.RefreshToken, len(st.tokens)),
		events:      make([]identity.Event, len(st.events)),
	}
	for k, v := range st.accounts {
		c.accounts[k] = cloneAccount(v)
	}
	for k, v := range st.roles {
		r := *v
		c.roles[k] = &r
	}
	for k, v := range st.assignments {
		c.assignments[k] = v
	}
	for k, v := range st.tokens {
		c.tokens[k] = cloneToken(v)
	}
	copy(c.events, st.events)
	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneAccount(a *identity.Account) *identity.Account {
	c := *a
	c.LastFailedLoginAt = cloneTime(a.LastFailedLoginAt)
	c.LastLoginAt = cloneTime(a.LastLoginAt)
	c.Lock.Until = cloneTime(a.Lock.Until)
	c.Lock.LockedAt = cloneTime(a.Lock.LockedAt)
	return &c
}

func cloneToken(t *identity.RefreshToken) *identity.RefreshToken {
	c := *t
	c.RevokedAt = cloneTime(t.RevokedAt)
	return &c
}

func notFound(code string, key string, value any) error {
	return oops.Code(code).With(key, value).Wrap(identity.ErrNotFound)
}

// accountStore implements identity.CredentialStore.
type accountStore Store

func (a *accountStore) store() *Store { return (*Store)(a) }

func (a *accountStore) Create(_ context.Context, account *identity.Account) error {
	s := a.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpAccountsCreate); err != nil {
		return err
	}
	for _, existing := range s.st.accounts {
		if strings.EqualFold(existing.Email, account.Email) {
			return oops.Code("ACCOUNT_EMAIL_EXISTS").With("email", account.Email).Wrap(identity.ErrDuplicateEmail)
		}
	}
	s.st.accounts[account.ID] = cloneAccount(account)
	return nil
}

func (a *accountStore) GetByID(_ context.Context, id ulid.ULID) (*identity.Account, error) {
	s := a.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpAccountsGet); err != nil {
		return nil, err
	}
	acct, ok := s.st.accounts[id]
	if !ok {
		return nil, notFound("ACCOUNT_NOT_FOUND", "id", id.String())
	}
	return cloneAccount(acct), nil
}

func (a *accountStore) GetByEmail(_ context.Context, email string) (*identity.Account, error) {
	s := a.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpAccountsGet); err != nil {
		return nil, err
	}
	for _, acct := range s.st.accounts {
		if strings.EqualFold(acct.Email, email) {
			return cloneAccount(acct), nil
		}
	}
	return nil, notFound("ACCOUNT_NOT_FOUND", "email", email)
}

func (a *accountStore) List(_ context.Context, offset, limit int) ([]*identity.Account, int, error) {
	s := a.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]*identity.Account, 0, len(s.st.accounts))
	for _, acct := range s.st.accounts {
		all = append(all, acct)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID.Compare(all[j].ID) < 0 })

	total := len(all)
	if offset >= total {
		return []*identity.Account{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	out := make([]*identity.Account, 0, end-offset)
	for _, acct := range all[offset:end] {
		out = append(out, cloneAccount(acct))
	}
	return out, total, nil
}

func (a *accountStore) Update(_ context.Context, account *identity.Account) error {
	s := a.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpAccountsUpdate); err != nil {
		return err
	}
	acct, ok := s.st.accounts[account.ID]
	if !ok {
		return notFound("ACCOUNT_NOT_FOUND", "id", account.ID.String())
	}
	acct.FirstName = account.FirstName
	acct.LastName = account.LastName
	acct.BirthDate = account.BirthDate
	acct.Active = account.Active
	acct.EmailConfirmed = account.EmailConfirmed
	acct.UpdatedAt = account.UpdatedAt
	return nil
}

func (a *accountStore) RecordFailedLogin(_ context.Context, id ulid.ULID, at time.Time, policy identity.LockoutPolicy) (identity.FailedLogin, error) {
	s := a.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpAccountsFailedLogin); err != nil {
		return identity.FailedLogin{}, err
	}
	acct, ok := s.st.accounts[id]
	if !ok {
		return identity.FailedLogin{}, notFound("ACCOUNT_NOT_FOUND", "id", id.String())
	}

	at = at.UTC()
	acct.FailedLoginCount++
	acct.LastFailedLoginAt = &at
	acct.UpdatedAt = at

	locked := false
	if policy.Reached(acct.FailedLoginCount) && acct.Lock.Kind != identity.LockAdmin && !acct.Lock.ActiveAt(at) {
		until := policy.ThrottleUntil(at)
		lockedAt := at
		acct.Lock = identity.Lock{
			Kind:     identity.LockThrottle,
			Until:    &until,
			Reason:   identity.ThrottleLockReason,
			LockedAt: &lockedAt,
		}
		locked = true
	}
	return identity.FailedLogin{Count: acct.FailedLoginCount, Lock: cloneAccount(acct).Lock, Locked: locked}, nil
}

func (a *accountStore) RecordSuccessfulLogin(_ context.Context, id ulid.ULID, at time.Time) (bool, error) {
	s := a.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpAccountsSuccessLogin); err != nil {
		return false, err
	}
	acct, ok := s.st.accounts[id]
	if !ok {
		return false, notFound("ACCOUNT_NOT_FOUND", "id", id.String())
	}
	if !acct.Active || acct.Lock.ActiveAt(at) {
		return false, nil
	}
	at = at.UTC()
	acct.FailedLoginCount = 0
	acct.LastLoginAt = &at
	acct.UpdatedAt = at
	return true, nil
}

func (a *accountStore) SetLock(_ context.Context, id ulid.ULID, lock identity.Lock, at time.Time) error {
	s := a.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpAccountsSetLock); err != nil {
		return err
	}
	acct, ok := s.st.accounts[id]
	if !ok {
		return notFound("ACCOUNT_NOT_FOUND", "id", id.String())
	}
	acct.Lock = identity.Lock{
		Kind:     lock.Kind,
		Until:    cloneTime(lock.Until),
		Reason:   lock.Reason,
		LockedAt: cloneTime(lock.LockedAt),
	}
	acct.UpdatedAt = at.UTC()
	return nil
}

// roleStore implements identity.RoleStore.
type roleStore Store

func (r *roleStore) store() *Store { return (*Store)(r) }

func (r *roleStore) Create(_ context.Context, role *identity.Role) error {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.st.roles {
		if strings.EqualFold(existing.Name, role.Name) {
			return oops.Code("ROLE_EXISTS").With("name", role.Name).Wrap(identity.ErrDuplicateRole)
		}
	}
	c := *role
	s.st.roles[role.ID] = &c
	return nil
}

func (r *roleStore) GetByName(_ context.Context, name string) (*identity.Role, error) {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpRolesGet); err != nil {
		return nil, err
	}
	for _, role := range s.st.roles {
		if strings.EqualFold(role.Name, name) {
			c := *role
			return &c, nil
		}
	}
	return nil, notFound("ROLE_NOT_FOUND", "name", name)
}

func (r *roleStore) List(_ context.Context) ([]*identity.Role, error) {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*identity.Role, 0, len(s.st.roles))
	for _, role := range s.st.roles {
		c := *role
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *roleStore) UpdateDescription(_ context.Context, id ulid.ULID, description string) error {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	role, ok := s.st.roles[id]
	if !ok {
		return notFound("ROLE_NOT_FOUND", "id", id.String())
	}
	role.Description = description
	return nil
}

func (r *roleStore) Assign(_ context.Context, assignment identity.AccountRole) error {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpRolesAssign); err != nil {
		return err
	}
	key := [2]ulid.ULID{assignment.AccountID, assignment.RoleID}
	if _, ok := s.st.assignments[key]; ok {
		return oops.Code("ROLE_ALREADY_ASSIGNED").
			With("account_id", assignment.AccountID.String()).
			With("role_id", assignment.RoleID.String()).
			Wrap(identity.ErrAlreadyAssigned)
	}
	s.st.assignments[key] = assignment
	return nil
}

func (r *roleStore) RolesForAccount(_ context.Context, accountID ulid.ULID) ([]*identity.Role, error) {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpAccountsRolesForAcct); err != nil {
		return nil, err
	}
	var out []*identity.Role
	for key := range s.st.assignments {
		if key[0] != accountID {
			continue
		}
		if role, ok := s.st.roles[key[1]]; ok {
			c := *role
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// tokenStore implements identity.RefreshTokenStore.
type tokenStore Store

func (t *tokenStore) store() *Store { return (*Store)(t) }

func (t *tokenStore) Create(_ context.Context, token *identity.RefreshToken) error {
	s := t.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpTokensCreate); err != nil {
		return err
	}
	for _, existing := range s.st.tokens {
		if existing.TokenHash == token.TokenHash {
			return oops.Code("REFRESH_TOKEN_EXISTS").Errorf("token hash already stored")
		}
	}
	s.st.tokens[token.ID] = cloneToken(token)
	return nil
}

func (t *tokenStore) GetByHash(_ context.Context, tokenHash string) (*identity.RefreshToken, error) {
	s := t.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpTokensGetByHash); err != nil {
		return nil, err
	}
	for _, tok := range s.st.tokens {
		if tok.TokenHash == tokenHash {
			return cloneToken(tok), nil
		}
	}
	return nil, notFound("REFRESH_TOKEN_NOT_FOUND", "token_hash", "<redacted>")
}

func (t *tokenStore) Revoke(_ context.Context, id ulid.ULID, at time.Time) error {
	s := t.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpTokensRevoke); err != nil {
		return err
	}
	tok, ok := s.st.tokens[id]
	if !ok || !tok.ValidAt(at) {
		return oops.Code("REFRESH_TOKEN_NOT_ACTIVE").With("id", id.String()).Wrap(identity.ErrTokenNotActive)
	}
	at = at.UTC()
	tok.Revoked = true
	tok.RevokedAt = &at
	return nil
}

func (t *tokenStore) RevokeAllForAccount(_ context.Context, accountID ulid.ULID, at time.Time) (int, error) {
	s := t.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpTokensRevokeAll); err != nil {
		return 0, err
	}
	at = at.UTC()
	n := 0
	for _, tok := range s.st.tokens {
		if tok.AccountID == accountID && !tok.Revoked {
			revokedAt := at
			tok.Revoked = true
			tok.RevokedAt = &revokedAt
			n++
		}
	}
	return n, nil
}

func (t *tokenStore) ListByAccount(_ context.Context, accountID ulid.ULID) ([]*identity.RefreshToken, error) {
	s := t.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*identity.RefreshToken
	for _, tok := range s.st.tokens {
		if tok.AccountID == accountID {
			out = append(out, cloneToken(tok))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Compare(out[j].ID) > 0 })
	return out, nil
}

// eventLog implements identity.EventLog.
type eventLog Store

func (e *eventLog) store() *Store { return (*Store)(e) }

func (e *eventLog) Append(_ context.Context, events ...identity.Event) error {
	s := e.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpEventsAppend); err != nil {
		return err
	}
	seen := make(map[ulid.ULID]struct{}, len(s.st.events))
	for _, ev := range s.st.events {
		seen[ev.ID] = struct{}{}
	}
	for _, ev := range events {
		if _, dup := seen[ev.ID]; dup {
			continue
		}
		seen[ev.ID] = struct{}{}
		s.st.events = append(s.st.events, ev)
	}
	return nil
}

func (e *eventLog) ListByAggregate(_ context.Context, aggregateID ulid.ULID) ([]identity.Event, error) {
	s := e.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected(OpEventsListByAggregate); err != nil {
		return nil, err
	}
	var out []identity.Event
	for _, ev := range s.st.events {
		if ev.AggregateID == aggregateID {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID.Compare(out[j].ID) < 0 })
	return out, nil
}

var (
	_ identity.CredentialStore   = (*accountStore)(nil)
	_ identity.RoleStore         = (*roleStore)(nil)
	_ identity.RefreshTokenStore = (*tokenStore)(nil)
	_ identity.EventLog          = (*eventLog)(nil)
	_ identity.Transactor        = (*Store)(nil)
)
