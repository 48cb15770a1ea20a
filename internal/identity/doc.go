// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

// Package identity implements the authentication and session-lifecycle core
// of the identity service.
//
// # Domain Types
//
// Account, Role, AccountRole, RefreshToken and Event are plain data types.
// Accounts should be created through NewAccount, which validates the email
// and credential hash; repository implementations receive pre-validated
// values.
//
// # Commands
//
// Service implements every command (Register, Login, Refresh, AssignRole,
// Lock, Unlock, SetActive, RevokeRefreshToken, RevokeAllSessions) and query
// (GetAccount, ListAccounts, AccountEvents). Each command runs as a single
// atomic unit through a Transactor: the state change and the events it
// produces are committed together or not at all.
//
// Business-rule outcomes (bad credentials, locked account, duplicate role)
// are reported in the result's Success and Message fields. A non-nil error is
// always an infrastructure failure and is classified as either ErrStorage
// (retryable) or ErrConfiguration (not retryable).
//
// # Pipeline
//
// Pipeline wraps every command in an explicit, ordered list of decorators:
// tracing, logging, metrics, then validation. Validation failures are
// returned as results with a "Validation failed: ..." message.
package identity
