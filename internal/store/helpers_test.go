// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package store

import (
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankcore/identity/internal/identity"
)

var (
	testNow   = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	testBirth = time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	noTime    = (*time.Time)(nil)
)

var accountColumnNames = []string{
	"id", "email", "password_hash", "first_name", "last_name", "birth_date", "active",
	"email_confirmed", "failed_login_count", "last_failed_login_at", "last_login_at",
	"lock_kind", "locked_until", "lock_reason", "locked_at", "created_at", "updated_at",
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		mock.Close()
	})
	return mock
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation, Message: "duplicate key value violates unique constraint"}
}

func testAccount(t *testing.T) *identity.Account {
	t.Helper()
	account, err := identity.NewAccount("alice@example.com", "$argon2id$hash", "Alice", "Smith", testBirth, testNow)
	require.NoError(t, err)
	return account
}

func accountRow(account *identity.Account) *pgxmock.Rows {
	return pgxmock.NewRows(accountColumnNames).AddRow(
		account.ID.String(),
		account.Email,
		account.PasswordHash,
		account.FirstName,
		account.LastName,
		account.BirthDate,
		account.Active,
		account.EmailConfirmed,
		account.FailedLoginCount,
		account.LastFailedLoginAt,
		account.LastLoginAt,
		string(account.Lock.Kind),
		account.Lock.Until,
		account.Lock.Reason,
		account.Lock.LockedAt,
		account.CreatedAt,
		account.UpdatedAt,
	)
}
