// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity

import (
	"time"

	"github.com/samber/oops"
)

// Lockout defaults.
const (
	// DefaultLockoutThreshold is the number of consecutive failures that
	// triggers a throttle lock.
	DefaultLockoutThreshold = 5

	// DefaultLockoutDuration is how long a throttle lock lasts.
	DefaultLockoutDuration = 5 * time.Minute
)

// ThrottleLockReason is recorded when the failure threshold is reached.
const ThrottleLockReason = "Too many failed login attempts"

// LockKind distinguishes automatic throttling from an administrative lock.
type LockKind string

// Lock kinds.
const (
	LockNone     LockKind = "none"
	LockThrottle LockKind = "throttle"
	LockAdmin    LockKind = "admin"
)

// Valid reports whether k is a known lock kind.
func (k LockKind) Valid() bool {
	switch k {
	case LockNone, LockThrottle, LockAdmin:
		return true
	}
	return false
}

// Lock is the lockout state of an account.
//
// A throttle lock expires at Until. An admin lock has no Until and stays in
// effect until explicitly cleared.
type Lock struct {
	Kind     LockKind
	Until    *time.Time
	Reason   string
	LockedAt *time.Time
}

// ActiveAt reports whether the lock is in effect at t. Expiry is evaluated
// lazily against the stored timestamp.
func (l Lock) ActiveAt(t time.Time) bool {
	switch l.Kind {
	case LockAdmin:
		return true
	case LockThrottle:
		return l.Until != nil && l.Until.After(t)
	}
	return false
}

// RemainingAt returns how long the lock stays in effect after t. Admin
// locks report zero with indefinite true.
func (l Lock) RemainingAt(t time.Time) (remaining time.Duration, indefinite bool) {
	switch l.Kind {
	case LockAdmin:
		return 0, true
	case LockThrottle:
		if l.Until != nil && l.Until.After(t) {
			return l.Until.Sub(t), false
		}
	}
	return 0, false
}

// AdminLock returns an indefinite lock set at t.
func AdminLock(reason string, t time.Time) Lock {
	at := t.UTC()
	return Lock{Kind: LockAdmin, Reason: reason, LockedAt: &at}
}

// NoLock returns the cleared lock state.
func NoLock() Lock {
	return Lock{Kind: LockNone}
}

// LockoutPolicy configures automatic throttling.
type LockoutPolicy struct {
	Threshold int
	Duration  time.Duration
}

// DefaultLockoutPolicy returns the default policy: 5 failures, 5 minutes.
func DefaultLockoutPolicy() LockoutPolicy {
	return LockoutPolicy{Threshold: DefaultLockoutThreshold, Duration: DefaultLockoutDuration}
}

// Validate checks the policy values.
func (p LockoutPolicy) Validate() error {
	if p.Threshold < 1 {
		return oops.Code("LOCKOUT_INVALID_THRESHOLD").
			With("threshold", p.Threshold).
			Errorf("lockout threshold must be at least 1")
	}
	if p.Duration <= 0 {
		return oops.Code("LOCKOUT_INVALID_DURATION").
			With("duration", p.Duration.String()).
			Errorf("lockout duration must be positive")
	}
	return nil
}

// Reached reports whether failures meets the threshold.
func (p LockoutPolicy) Reached(failures int) bool {
	return failures >= p.Threshold
}

// ThrottleUntil returns the throttle horizon for a lock set at t. The
// horizon is strictly after t.
func (p LockoutPolicy) ThrottleUntil(t time.Time) time.Time {
	return t.UTC().Add(p.Duration)
}

// FailedLogin is the state of an account after an atomic failure increment.
type FailedLogin struct {
	// Count is the failure counter after the increment.
	Count int

	// Lock is the account's lock state after the increment.
	Lock Lock

	// Locked is true when this increment set the throttle lock.
	Locked bool
}
