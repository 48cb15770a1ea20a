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

const accountColumns = `id, email, password_hash, first_name, last_name, birth_date, active,
	email_confirmed, failed_login_count, last_failed_login_at, last_login_at,
	lock_kind, locked_until, lock_reason, locked_at, created_at, updated_at`

// AccountRepository implements identity.CredentialStore using PostgreSQL.
type AccountRepository struct {
	pool Pool
}

// NewAccountRepository creates a new account repository.
func NewAccountRepository(pool Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Compile-time interface check.
var _ identity.CredentialStore = (*AccountRepository)(nil)

// Create persists a new account.
func (r *AccountRepository) Create(ctx context.Context, account *identity.Account) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		account.ID.String(),
		account.Email,
		account.PasswordHash,
		account.FirstName,
		account.LastName,
		account.BirthDate,
		account.Active,
		account.EmailConfirmed,
		account.FailedLoginCount,
		nullableTime(account.LastFailedLoginAt),
		nullableTime(account.LastLoginAt),
		lockKind(account.Lock.Kind),
		nullableTime(account.Lock.Until),
		account.Lock.Reason,
		nullableTime(account.Lock.LockedAt),
		account.CreatedAt.UTC(),
		account.UpdatedAt.UTC(),
	)
	if isUniqueViolation(err) {
		return oops.Code("ACCOUNT_DUPLICATE_EMAIL").With("email", account.Email).Wrap(identity.ErrDuplicateEmail)
	}
	if err != nil {
		return oops.With("operation", "create account").With("account_id", account.ID.String()).Wrap(err)
	}
	return nil
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id ulid.ULID) (*identity.Account, error) {
	row := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id.String())
	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("ACCOUNT_NOT_FOUND").With("id", id.String()).Wrap(identity.ErrNotFound)
	}
	if err != nil {
		return nil, oops.With("operation", "get account by id").With("id", id.String()).Wrap(err)
	}
	return account, nil
}

// GetByEmail retrieves an account by case-insensitive email.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*identity.Account, error) {
	row := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE LOWER(email) = LOWER($1)`, email)
	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("ACCOUNT_NOT_FOUND").With("email", email).Wrap(identity.ErrNotFound)
	}
	if err != nil {
		return nil, oops.With("operation", "get account by email").Wrap(err)
	}
	return account, nil
}

// List returns a page of accounts in creation order and the total count.
func (r *AccountRepository) List(ctx context.Context, offset, limit int) ([]*identity.Account, int, error) {
	q := conn(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&total); err != nil {
		return nil, 0, oops.With("operation", "count accounts").Wrap(err)
	}

	rows, err := q.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts ORDER BY created_at, id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, oops.With("operation", "list accounts").Wrap(err)
	}
	defer rows.Close()

	accounts := make([]*identity.Account, 0, limit)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, 0, oops.With("operation", "scan account row").Wrap(err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, oops.With("operation", "iterate accounts").Wrap(err)
	}
	return accounts, total, nil
}

// Update writes the profile fields of an account.
func (r *AccountRepository) Update(ctx context.Context, account *identity.Account) error {
	result, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE accounts
		SET first_name = $2, last_name = $3, birth_date = $4, active = $5,
		    email_confirmed = $6, updated_at = $7
		WHERE id = $1`,
		account.ID.String(),
		account.FirstName,
		account.LastName,
		account.BirthDate,
		account.Active,
		account.EmailConfirmed,
		account.UpdatedAt.UTC(),
	)
	if err != nil {
		return oops.With("operation", "update account").With("account_id", account.ID.String()).Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("ACCOUNT_NOT_FOUND").With("id", account.ID.String()).Wrap(identity.ErrNotFound)
	}
	return nil
}

// recordFailedLoginSQL increments the counter and sets the throttle in one
// statement under a row lock. lock_now is true only for the increment that
// sets the lock.
const recordFailedLoginSQL = `
	WITH target AS (
		SELECT id,
		       failed_login_count + 1 >= $3
		       AND lock_kind <> 'admin'
		       AND NOT (lock_kind = 'throttle' AND COALESCE(locked_until > $2, FALSE)) AS lock_now
		FROM accounts
		WHERE id = $1
		FOR UPDATE
	)
	UPDATE accounts a
	SET failed_login_count   = a.failed_login_count + 1,
	    last_failed_login_at = $2,
	    updated_at           = $2,
	    lock_kind            = CASE WHEN t.lock_now THEN 'throttle' ELSE a.lock_kind END,
	    locked_until         = CASE WHEN t.lock_now THEN $4 ELSE a.locked_until END,
	    lock_reason          = CASE WHEN t.lock_now THEN $5 ELSE a.lock_reason END,
	    locked_at            = CASE WHEN t.lock_now THEN $2 ELSE a.locked_at END
	FROM target t
	WHERE a.id = t.id
	RETURNING a.failed_login_count, a.lock_kind, a.locked_until, a.lock_reason, a.locked_at, t.lock_now`

// RecordFailedLogin atomically increments the failure counter and applies
// the throttle lock when policy's threshold is reached.
func (r *AccountRepository) RecordFailedLogin(ctx context.Context, id ulid.ULID, at time.Time, policy identity.LockoutPolicy) (identity.FailedLogin, error) {
	at = at.UTC()

	var (
		out  identity.FailedLogin
		kind string
	)
	err := conn(ctx, r.pool).QueryRow(ctx, recordFailedLoginSQL,
		id.String(), at, policy.Threshold, policy.ThrottleUntil(at), identity.ThrottleLockReason,
	).Scan(&out.Count, &kind, &out.Lock.Until, &out.Lock.Reason, &out.Lock.LockedAt, &out.Locked)
	if errors.Is(err, pgx.ErrNoRows) {
		return identity.FailedLogin{}, oops.Code("ACCOUNT_NOT_FOUND").With("id", id.String()).Wrap(identity.ErrNotFound)
	}
	if err != nil {
		return identity.FailedLogin{}, oops.With("operation", "record failed login").With("account_id", id.String()).Wrap(err)
	}
	out.Lock.Kind = identity.LockKind(kind)
	return out, nil
}

const recordSuccessfulLoginSQL = `
	WITH target AS (
	    SELECT id, active
	         AND (lock_kind = 'none' OR (lock_kind = 'throttle' AND (locked_until IS NULL OR locked_until <= $2))) AS allowed
	    FROM accounts
	    WHERE id = $1
	    FOR UPDATE
	), updated AS (
	    UPDATE accounts a
	    SET failed_login_count = 0, last_login_at = $2, updated_at = $2
	    FROM target t
	    WHERE a.id = t.id AND t.allowed
	    RETURNING a.id
	)
	SELECT t.allowed FROM target t`

// RecordSuccessfulLogin resets the failure counter and stamps the login,
// unless the account has been deactivated or locked in the meantime. The
// account row stays locked until the surrounding transaction ends, so a
// concurrent lock or deactivation is ordered before or after the login.
func (r *AccountRepository) RecordSuccessfulLogin(ctx context.Context, id ulid.ULID, at time.Time) (bool, error) {
	at = at.UTC()
	var allowed bool
	err := conn(ctx, r.pool).QueryRow(ctx, recordSuccessfulLoginSQL, id.String(), at).Scan(&allowed)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, oops.Code("ACCOUNT_NOT_FOUND").With("id", id.String()).Wrap(identity.ErrNotFound)
	}
	if err != nil {
		return false, oops.With("operation", "record successful login").With("account_id", id.String()).Wrap(err)
	}
	return allowed, nil
}

// SetLock replaces the lock state of an account.
func (r *AccountRepository) SetLock(ctx context.Context, id ulid.ULID, lock identity.Lock, at time.Time) error {
	result, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE accounts
		SET lock_kind = $2, locked_until = $3, lock_reason = $4, locked_at = $5, updated_at = $6
		WHERE id = $1`,
		id.String(),
		lockKind(lock.Kind),
		nullableTime(lock.Until),
		lock.Reason,
		nullableTime(lock.LockedAt),
		at.UTC(),
	)
	if err != nil {
		return oops.With("operation", "set lock").With("account_id", id.String()).Wrap(err)
	}
	if result.RowsAffected() == 0 {
		return oops.Code("ACCOUNT_NOT_FOUND").With("id", id.String()).Wrap(identity.ErrNotFound)
	}
	return nil
}

func lockKind(k identity.LockKind) string {
	if k == "" {
		return string(identity.LockNone)
	}
	return string(k)
}

func scanAccount(row pgx.Row) (*identity.Account, error) {
	var (
		a     identity.Account
		idStr string
		kind  string
	)
	err := row.Scan(
		&idStr,
		&a.Email,
		&a.PasswordHash,
		&a.FirstName,
		&a.LastName,
		&a.BirthDate,
		&a.Active,
		&a.EmailConfirmed,
		&a.FailedLoginCount,
		&a.LastFailedLoginAt,
		&a.LastLoginAt,
		&kind,
		&a.Lock.Until,
		&a.Lock.Reason,
		&a.Lock.LockedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.ID, err = ulid.Parse(idStr)
	if err != nil {
		return nil, oops.Code("ACCOUNT_CORRUPT_ID").With("id", idStr).Wrap(err)
	}
	a.Lock.Kind = identity.LockKind(kind)
	return &a, nil
}
