// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/oklog/ulid/v2"
)

// Validation limits.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
	MaxLockReason     = 512
	MaxPageSize       = 100
)

// Validator is implemented by commands that check their own input. now is
// the UTC evaluation time used for age checks.
type Validator interface {
	ValidateAt(now time.Time) error
}

// ValidationMessage renders a validation error as a business result message
// of the form "Validation failed: field: reason; field: reason".
func ValidationMessage(err error) string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return "Validation failed: " + err.Error()
	}
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, errs[k]))
	}
	return "Validation failed: " + strings.Join(parts, "; ")
}

func requiredID(value interface{}) error {
	id, ok := value.(ulid.ULID)
	if !ok {
		return errors.New("must be an account id")
	}
	if isZeroID(id) {
		return errors.New("cannot be blank")
	}
	return nil
}

func passwordComplexity(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r) && !unicode.IsNumber(r):
			special = true
		}
	}
	var missing []string
	if !upper {
		missing = append(missing, "an uppercase letter")
	}
	if !lower {
		missing = append(missing, "a lowercase letter")
	}
	if !digit {
		missing = append(missing, "a digit")
	}
	if !special {
		missing = append(missing, "a special character")
	}
	if len(missing) > 0 {
		return fmt.Errorf("must contain %s", strings.Join(missing, ", "))
	}
	return nil
}

func globPattern(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := compileRolePattern(s); err != nil {
		return errors.New("must be a valid glob pattern")
	}
	return nil
}

func minimumAge(now time.Time) validation.RuleFunc {
	return func(value interface{}) error {
		bd, _ := value.(time.Time)
		if bd.IsZero() {
			return errors.New("cannot be blank")
		}
		if AgeAt(bd, now) < MinimumAge {
			return fmt.Errorf("must be at least %d years old", MinimumAge)
		}
		return nil
	}
}

func intRange(lo, hi int) validation.RuleFunc {
	return func(value interface{}) error {
		n, _ := value.(int)
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

func intMin(lo int) validation.RuleFunc {
	return func(value interface{}) error {
		n, _ := value.(int)
		if n < lo {
			return fmt.Errorf("must be at least %d", lo)
		}
		return nil
	}
}

// ValidateAt implements Validator.
func (c RegisterCommand) ValidateAt(now time.Time) error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required, validation.Length(3, MaxEmailLength), is.Email),
		validation.Field(&c.Password,
			validation.Required,
			validation.Length(MinPasswordLength, MaxPasswordLength),
			validation.By(passwordComplexity),
		),
		validation.Field(&c.FirstName, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&c.LastName, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&c.BirthDate, validation.By(minimumAge(now))),
	)
}

// ValidateAt implements Validator.
func (c LoginCommand) ValidateAt(time.Time) error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required),
		validation.Field(&c.Password, validation.Required),
	)
}

// ValidateAt implements Validator.
func (c RefreshCommand) ValidateAt(time.Time) error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.RefreshToken, validation.Required),
	)
}

// ValidateAt implements Validator.
func (c AssignRoleCommand) ValidateAt(time.Time) error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.AccountID, validation.By(requiredID)),
		validation.Field(&c.RoleName, validation.Required, validation.Length(1, MaxRoleNameLength)),
	)
}

// ValidateAt implements Validator.
func (c LockCommand) ValidateAt(time.Time) error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.AccountID, validation.By(requiredID)),
		validation.Field(&c.Reason, validation.Length(0, MaxLockReason)),
	)
}

// ValidateAt implements Validator.
func (c UnlockCommand) ValidateAt(time.Time) error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.AccountID, validation.By(requiredID)),
	)
}

// ValidateAt implements Validator.
func (c SetActiveCommand) ValidateAt(time.Time) error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.AccountID, validation.By(requiredID)),
	)
}

// ValidateAt implements Validator.
func (c RevokeTokenCommand) ValidateAt(time.Time) error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.RefreshToken, validation.Required),
	)
}

// ValidateAt implements Validator.
func (c RevokeSessionsCommand) ValidateAt(time.Time) error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.AccountID, validation.By(requiredID)),
	)
}

// ValidateAt implements Validator.
func (c CreateRoleCommand) ValidateAt(time.Time) error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, MaxRoleNameLength)),
	)
}

// ValidateAt implements Validator.
func (SeedRolesCommand) ValidateAt(time.Time) error { return nil }

// ValidateAt implements Validator.
func (q GetAccountQuery) ValidateAt(time.Time) error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.AccountID, validation.By(requiredID)),
	)
}

// ValidateAt implements Validator.
func (q ListAccountsQuery) ValidateAt(time.Time) error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Page, validation.By(intMin(1))),
		validation.Field(&q.PageSize, validation.By(intRange(1, MaxPageSize))),
	)
}

// ValidateAt implements Validator.
func (q VerifyTokenQuery) ValidateAt(time.Time) error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.AccessToken, validation.Required),
	)
}

// ValidateAt implements Validator.
func (q AccountEventsQuery) ValidateAt(time.Time) error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.AccountID, validation.By(requiredID)),
	)
}

// ValidateAt implements Validator.
func (q ListRolesQuery) ValidateAt(time.Time) error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Pattern, validation.Length(0, MaxRoleNameLength), validation.By(globPattern)),
	)
}
