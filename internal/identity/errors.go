// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/oops"
)

// Repository sentinels. Store implementations wrap these so the engine can
// map them to business outcomes.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when an account with the same
	// case-insensitive email already exists.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateRole is returned when a role with the same name exists.
	ErrDuplicateRole = errors.New("role already exists")

	// ErrAlreadyAssigned is returned when an account already holds a role.
	ErrAlreadyAssigned = errors.New("role already assigned")

	// ErrTokenNotActive is returned by a conditional revoke when the token
	// was already revoked or has expired.
	ErrTokenNotActive = errors.New("refresh token not active")
)

// Error kinds for infrastructure failures.
var (
	// ErrStorage marks a transient storage failure. Callers may retry with
	// backoff.
	ErrStorage = errors.New("storage failure")

	// ErrConfiguration marks a misconfiguration (missing signing key,
	// unseeded default role). Retrying will not help.
	ErrConfiguration = errors.New("configuration error")
)

// Error codes attached to infrastructure failures.
const (
	CodeStorageFailed = "IDENTITY_STORAGE_FAILED"
	CodeConfigInvalid = "IDENTITY_CONFIG_INVALID"
	CodeTokenFailed   = "IDENTITY_TOKEN_FAILED"
)

// IsRetryable reports whether err is a storage failure worth retrying.
// Configuration errors and caller cancellation are never retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConfiguration) || errors.Is(err, context.Canceled) {
		return false
	}
	return errors.Is(err, ErrStorage)
}

// IsConfigurationError reports whether err is a configuration error.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func storageError(operation string, err error) error {
	return oops.Code(CodeStorageFailed).
		With("operation", operation).
		Wrap(fmt.Errorf("%w: %w", ErrStorage, err))
}

func configError(format string, args ...any) error {
	return oops.Code(CodeConfigInvalid).
		Wrap(fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...)))
}
