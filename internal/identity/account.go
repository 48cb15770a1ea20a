// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// Name length limits.
const (
	MaxNameLength  = 50
	MaxEmailLength = 256
)

// MinimumAge is the minimum age in whole years required to register.
const MinimumAge = 18

// Account is an identity record.
type Account struct {
	ID                ulid.ULID
	Email             string
	PasswordHash      string
	FirstName         string
	LastName          string
	BirthDate         time.Time
	Active            bool
	EmailConfirmed    bool
	FailedLoginCount  int
	LastFailedLoginAt *time.Time
	LastLoginAt       *time.Time
	Lock              Lock
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewAccount creates a validated, active, unconfirmed Account with no lock.
func NewAccount(email, passwordHash, firstName, lastName string, birthDate, now time.Time) (*Account, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, oops.Code("ACCOUNT_INVALID_EMAIL").Errorf("email cannot be empty")
	}
	if len(email) > MaxEmailLength {
		return nil, oops.Code("ACCOUNT_INVALID_EMAIL").
			With("max", MaxEmailLength).
			Errorf("email must be at most %d characters", MaxEmailLength)
	}
	if passwordHash == "" {
		return nil, oops.Code("ACCOUNT_INVALID_HASH").Errorf("password hash cannot be empty")
	}
	if birthDate.IsZero() {
		return nil, oops.Code("ACCOUNT_INVALID_BIRTH_DATE").Errorf("birth date cannot be zero")
	}

	now = now.UTC()
	return &Account{
		ID:             NewID(),
		Email:          email,
		PasswordHash:   passwordHash,
		FirstName:      strings.TrimSpace(firstName),
		LastName:       strings.TrimSpace(lastName),
		BirthDate:      birthDate.UTC(),
		Active:         true,
		EmailConfirmed: false,
		Lock:           NoLock(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// NormalizeEmail trims surrounding whitespace and lowercases. Emails are
// stored and looked up in this form, so every store compares them the
// same way.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsLockedAt reports whether a lock is in effect at t.
func (a *Account) IsLockedAt(t time.Time) bool {
	return a.Lock.ActiveAt(t)
}

// AgeAt returns the age in whole years of someone born on birthDate,
// evaluated at t. Both are compared as UTC calendar dates.
func AgeAt(birthDate, t time.Time) int {
	b := birthDate.UTC()
	now := t.UTC()
	age := now.Year() - b.Year()
	if now.Month() < b.Month() || (now.Month() == b.Month() && now.Day() < b.Day()) {
		age--
	}
	return age
}
