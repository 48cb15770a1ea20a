// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// CredentialStore manages account persistence.
//
// Implementations must compare emails case-insensitively and return errors
// wrapping ErrNotFound or ErrDuplicateEmail where documented.
type CredentialStore interface {
	// Create persists a new account. Returns ErrDuplicateEmail if the email
	// is already registered.
	Create(ctx context.Context, account *Account) error

	// GetByID retrieves an account. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id ulid.ULID) (*Account, error)

	// GetByEmail retrieves an account by case-insensitive email. Returns
	// ErrNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// List returns a page of accounts ordered by creation time and the
	// total number of accounts.
	List(ctx context.Context, offset, limit int) ([]*Account, int, error)

	// Update writes profile fields (names, birth date, active and
	// email-confirmed flags). Login counters and lock state are written
	// only through the dedicated methods below.
	Update(ctx context.Context, account *Account) error

	// RecordFailedLogin atomically increments the failure counter and sets a
	// throttle lock when the policy threshold is reached. An admin lock is
	// never replaced.
	RecordFailedLogin(ctx context.Context, id ulid.ULID, at time.Time, policy LockoutPolicy) (FailedLogin, error)

	// RecordSuccessfulLogin resets the failure counter and stamps the last
	// login time if the account is active and not locked at at. It reports
	// false, changing nothing, otherwise.
	RecordSuccessfulLogin(ctx context.Context, id ulid.ULID, at time.Time) (bool, error)

	// SetLock replaces the lock state.
	SetLock(ctx context.Context, id ulid.ULID, lock Lock, at time.Time) error
}

// RoleStore manages role definitions and account assignments.
type RoleStore interface {
	// Create persists a new role. Returns ErrDuplicateRole if a role with
	// the same case-insensitive name exists.
	Create(ctx context.Context, role *Role) error

	// GetByName retrieves a role by case-insensitive name. Returns
	// ErrNotFound if absent.
	GetByName(ctx context.Context, name string) (*Role, error)

	// List returns all roles ordered by name.
	List(ctx context.Context) ([]*Role, error)

	// UpdateDescription changes a role's description. Returns ErrNotFound
	// if the role does not exist.
	UpdateDescription(ctx context.Context, id ulid.ULID, description string) error

	// Assign grants a role. Returns ErrAlreadyAssigned if the account
	// already holds it.
	Assign(ctx context.Context, assignment AccountRole) error

	// RolesForAccount returns the roles an account holds, ordered by name.
	RolesForAccount(ctx context.Context, accountID ulid.ULID) ([]*Role, error)
}

// RefreshTokenStore manages refresh token records.
type RefreshTokenStore interface {
	// Create persists a new token record.
	Create(ctx context.Context, token *RefreshToken) error

	// GetByHash retrieves a token by value digest. Returns ErrNotFound if
	// absent.
	GetByHash(ctx context.Context, tokenHash string) (*RefreshToken, error)

	// Revoke marks a token revoked only if it is still valid at at. Returns
	// ErrTokenNotActive if it was already revoked or has expired.
	Revoke(ctx context.Context, id ulid.ULID, at time.Time) error

	// RevokeAllForAccount revokes every unrevoked token of an account and
	// returns how many were revoked.
	RevokeAllForAccount(ctx context.Context, accountID ulid.ULID, at time.Time) (int, error)

	// ListByAccount returns an account's tokens, newest first.
	ListByAccount(ctx context.Context, accountID ulid.ULID) ([]*RefreshToken, error)
}

// EventLog is the append-only domain event record.
type EventLog interface {
	// Append writes events in order. Appending an event whose ID already
	// exists is a no-op.
	Append(ctx context.Context, events ...Event) error

	// ListByAggregate returns an aggregate's events in ID order.
	ListByAggregate(ctx context.Context, aggregateID ulid.ULID) ([]Event, error)
}

// Transactor runs a function inside one atomic storage unit. Stores called
// with the context passed to fn join the unit. A returned error rolls back.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Stores bundles the repositories the engine depends on.
type Stores struct {
	Accounts   CredentialStore
	Roles      RoleStore
	Tokens     RefreshTokenStore
	Events     EventLog
	Transactor Transactor
}
