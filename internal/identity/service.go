// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity

import (
	"context"
	"log/slog"
	"time"
)

// DefaultRefreshTokenTTL is the refresh token lifetime.
const DefaultRefreshTokenTTL = 7 * 24 * time.Hour

// Clock returns the current time.
type Clock func() time.Time

// Service is the authentication engine. Its methods implement the identity
// commands; business-rule failures are reported in results, never as errors.
//
// Service methods expect input that has passed validation. Use Pipeline for
// untrusted input.
type Service struct {
	accounts   CredentialStore
	roles      RoleStore
	tokens     RefreshTokenStore
	events     EventLog
	tx         Transactor
	hasher     PasswordHasher
	signer     TokenSigner
	logger     *slog.Logger
	clock      Clock
	policy     LockoutPolicy
	refreshTTL time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source.
func WithClock(clock Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLockoutPolicy overrides the lockout policy.
func WithLockoutPolicy(policy LockoutPolicy) Option {
	return func(s *Service) { s.policy = policy }
}

// WithRefreshTokenTTL overrides the refresh token lifetime.
func WithRefreshTokenTTL(ttl time.Duration) Option {
	return func(s *Service) { s.refreshTTL = ttl }
}

// NewService creates the engine. Missing collaborators and invalid policies
// are configuration errors.
func NewService(stores Stores, hasher PasswordHasher, signer TokenSigner, opts ...Option) (*Service, error) {
	switch {
	case stores.Accounts == nil:
		return nil, configError("credential store is required")
	case stores.Roles == nil:
		return nil, configError("role store is required")
	case stores.Tokens == nil:
		return nil, configError("refresh token store is required")
	case stores.Events == nil:
		return nil, configError("event log is required")
	case stores.Transactor == nil:
		return nil, configError("transactor is required")
	case hasher == nil:
		return nil, configError("password hasher is required")
	case signer == nil:
		return nil, configError("token signer is required")
	}

	s := &Service{
		accounts:   stores.Accounts,
		roles:      stores.Roles,
		tokens:     stores.Tokens,
		events:     stores.Events,
		tx:         stores.Transactor,
		hasher:     hasher,
		signer:     signer,
		logger:     slog.Default(),
		clock:      time.Now,
		policy:     DefaultLockoutPolicy(),
		refreshTTL: DefaultRefreshTokenTTL,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.policy.Validate(); err != nil {
		return nil, configError("invalid lockout policy: %v", err)
	}
	if s.refreshTTL <= 0 {
		return nil, configError("refresh token lifetime must be positive, got %s", s.refreshTTL)
	}
	return s, nil
}

func (s *Service) now() time.Time {
	return s.clock().UTC()
}

// appendEvents writes events inside the caller's transaction. A failure
// aborts the operation.
func (s *Service) appendEvents(ctx context.Context, events ...Event) error {
	if err := s.events.Append(ctx, events...); err != nil {
		return storageError("append events", err)
	}
	return nil
}
