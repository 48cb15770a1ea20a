// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankcore/identity/internal/identity"
	"github.com/bankcore/identity/pkg/errutil"
)

func TestAccountRepository_Create(t *testing.T) {
	account := testAccount(t)

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
		errMsg    string
	}{
		{
			name: "inserts account",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO accounts`).
					WithArgs(
						account.ID.String(), "alice@example.com", "$argon2id$hash", "Alice", "Smith",
						testBirth, true, false, 0, noTime, noTime,
						"none", noTime, "", noTime, testNow, testNow,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "duplicate email",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO accounts`).
					WillReturnError(uniqueViolation())
			},
			wantErr: identity.ErrDuplicateEmail,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO accounts`).
					WillReturnError(errors.New("connection refused"))
			},
			errMsg: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			tt.setupMock(mock)

			err := NewAccountRepository(mock).Create(context.Background(), account)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				errutil.AssertErrorContext(t, err, "operation", "create account")
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestAccountRepository_GetByEmail(t *testing.T) {
	account := testAccount(t)

	t.Run("matches case-insensitively", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(`FROM accounts WHERE LOWER\(email\) = LOWER\(\$1\)`).
			WithArgs("ALICE@example.com").
			WillReturnRows(accountRow(account))

		got, err := NewAccountRepository(mock).GetByEmail(context.Background(), "ALICE@example.com")
		require.NoError(t, err)
		assert.Equal(t, account.ID, got.ID)
		assert.Equal(t, "alice@example.com", got.Email)
		assert.Equal(t, identity.LockNone, got.Lock.Kind)
		assert.Nil(t, got.LastLoginAt)
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(`FROM accounts WHERE LOWER`).
			WithArgs("nobody@example.com").
			WillReturnError(pgx.ErrNoRows)

		_, err := NewAccountRepository(mock).GetByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, identity.ErrNotFound)
		errutil.AssertErrorCode(t, err, "ACCOUNT_NOT_FOUND")
	})
}

func TestAccountRepository_GetByID(t *testing.T) {
	account := testAccount(t)
	until := testNow.Add(5 * time.Minute)
	account.FailedLoginCount = 5
	account.Lock = identity.Lock{Kind: identity.LockThrottle, Until: &until, Reason: identity.ThrottleLockReason, LockedAt: &testNow}

	t.Run("restores lock state", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(`FROM accounts WHERE id = \$1`).
			WithArgs(account.ID.String()).
			WillReturnRows(accountRow(account))

		got, err := NewAccountRepository(mock).GetByID(context.Background(), account.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, got.FailedLoginCount)
		assert.Equal(t, identity.LockThrottle, got.Lock.Kind)
		require.NotNil(t, got.Lock.Until)
		assert.True(t, got.Lock.Until.Equal(until))
		assert.True(t, got.IsLockedAt(testNow.Add(time.Minute)))
	})

	t.Run("corrupt id", func(t *testing.T) {
		mock := newMockPool(t)
		rows := pgxmock.NewRows(accountColumnNames).AddRow(
			"not-a-ulid", account.Email, account.PasswordHash, account.FirstName, account.LastName,
			account.BirthDate, account.Active, account.EmailConfirmed, 0, noTime, noTime,
			"none", noTime, "", noTime, account.CreatedAt, account.UpdatedAt,
		)
		mock.ExpectQuery(`FROM accounts WHERE id`).
			WithArgs(account.ID.String()).
			WillReturnRows(rows)

		_, err := NewAccountRepository(mock).GetByID(context.Background(), account.ID)
		require.Error(t, err)
		errutil.AssertErrorCode(t, err, "ACCOUNT_CORRUPT_ID")
	})
}

func TestAccountRepository_List(t *testing.T) {
	first := testAccount(t)
	second := testAccount(t)
	second.Email = "bob@example.com"

	mock := newMockPool(t)
	mock.ExpectQuery(`SELECT COUNT`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(12))
	rows := pgxmock.NewRows(accountColumnNames)
	for _, a := range []*identity.Account{first, second} {
		rows.AddRow(
			a.ID.String(), a.Email, a.PasswordHash, a.FirstName, a.LastName, a.BirthDate,
			a.Active, a.EmailConfirmed, a.FailedLoginCount, noTime, noTime,
			"none", noTime, "", noTime, a.CreatedAt, a.UpdatedAt,
		)
	}
	mock.ExpectQuery(`ORDER BY created_at, id LIMIT \$1 OFFSET \$2`).
		WithArgs(2, 10).
		WillReturnRows(rows)

	accounts, total, err := NewAccountRepository(mock).List(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, accounts, 2)
	assert.Equal(t, "bob@example.com", accounts[1].Email)
}

func TestAccountRepository_Update(t *testing.T) {
	account := testAccount(t)
	account.Active = false

	t.Run("writes profile fields", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(`UPDATE accounts`).
			WithArgs(account.ID.String(), "Alice", "Smith", testBirth, false, false, testNow).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, NewAccountRepository(mock).Update(context.Background(), account))
	})

	t.Run("missing account", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec(`UPDATE accounts`).
			WithArgs(account.ID.String(), "Alice", "Smith", testBirth, false, false, testNow).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := NewAccountRepository(mock).Update(context.Background(), account)
		assert.ErrorIs(t, err, identity.ErrNotFound)
	})
}

func TestAccountRepository_RecordFailedLogin(t *testing.T) {
	id := identity.NewID()
	policy := identity.DefaultLockoutPolicy()
	until := testNow.Add(policy.Duration)
	columns := []string{"failed_login_count", "lock_kind", "locked_until", "lock_reason", "locked_at", "lock_now"}

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		want      identity.FailedLogin
		wantErr   error
	}{
		{
			name: "below threshold",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`WITH target AS`).
					WithArgs(id.String(), testNow, 5, until, identity.ThrottleLockReason).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(3, "none", noTime, "", noTime, false))
			},
			want: identity.FailedLogin{Count: 3, Lock: identity.Lock{Kind: identity.LockNone}},
		},
		{
			name: "threshold sets throttle",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`WITH target AS`).
					WithArgs(id.String(), testNow, 5, until, identity.ThrottleLockReason).
					WillReturnRows(pgxmock.NewRows(columns).
						AddRow(5, "throttle", &until, identity.ThrottleLockReason, &testNow, true))
			},
			want: identity.FailedLogin{
				Count:  5,
				Lock:   identity.Lock{Kind: identity.LockThrottle, Until: &until, Reason: identity.ThrottleLockReason, LockedAt: &testNow},
				Locked: true,
			},
		},
		{
			name: "missing account",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`WITH target AS`).
					WithArgs(id.String(), testNow, 5, until, identity.ThrottleLockReason).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: identity.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			tt.setupMock(mock)

			got, err := NewAccountRepository(mock).RecordFailedLogin(context.Background(), id, testNow, policy)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountRepository_SetLock(t *testing.T) {
	id := identity.NewID()
	lock := identity.AdminLock("fraud review", testNow)

	mock := newMockPool(t)
	mock.ExpectExec(`UPDATE accounts`).
		WithArgs(id.String(), "admin", noTime, "fraud review", lock.LockedAt, testNow).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE accounts`).
		WithArgs(id.String(), "none", noTime, "", noTime, testNow).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewAccountRepository(mock)
	require.NoError(t, repo.SetLock(context.Background(), id, lock, testNow))
	assert.ErrorIs(t, repo.SetLock(context.Background(), id, identity.NoLock(), testNow), identity.ErrNotFound)
}

func TestAccountRepository_RecordSuccessfulLogin(t *testing.T) {
	tests := []struct {
		name    string
		allowed bool
	}{
		{"active and unlocked", true},
		{"locked or inactive", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := identity.NewID()

			mock := newMockPool(t)
			mock.ExpectQuery(`FOR UPDATE(.|\n)*SET failed_login_count = 0(.|\n)*WHERE a.id = t.id AND t.allowed`).
				WithArgs(id.String(), testNow).
				WillReturnRows(pgxmock.NewRows([]string{"allowed"}).AddRow(tt.allowed))

			applied, err := NewAccountRepository(mock).RecordSuccessfulLogin(context.Background(), id, testNow)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, applied)
		})
	}
}

func TestAccountRepository_RecordSuccessfulLoginNotFound(t *testing.T) {
	id := identity.NewID()

	mock := newMockPool(t)
	mock.ExpectQuery(`SET failed_login_count = 0`).
		WithArgs(id.String(), testNow).
		WillReturnError(pgx.ErrNoRows)

	_, err := NewAccountRepository(mock).RecordSuccessfulLogin(context.Background(), id, testNow)
	assert.ErrorIs(t, err, identity.ErrNotFound)
}
