// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Result is implemented by every command result.
type Result interface {
	Succeeded() bool
}

// Result messages.
const (
	MsgRegistered          = "User registered successfully"
	MsgEmailExists         = "User with this email already exists"
	MsgLoginSuccessful     = "Login successful"
	MsgInvalidCredentials  = "Invalid email or password"
	MsgAccountLocked       = "User account is locked"
	MsgAccountInactive     = "User account is inactive"
	MsgTokenRefreshed      = "Token refreshed successfully"
	MsgInvalidRefreshToken = "Invalid or expired refresh token"
	MsgUserNotFoundOrGone  = "User not found or inactive"
	MsgUserNotFound        = "User not found"
	MsgUserLocked          = "User locked successfully"
	MsgUserUnlocked        = "User unlocked successfully"
	MsgRoleNotFound        = "Role does not exist"
	MsgRoleAlreadyHeld     = "User already has this role"
	MsgRoleExists          = "Role already exists"
	MsgRoleCreated         = "Role created successfully"
	MsgRolesSeeded         = "Roles seeded successfully"
	MsgTokenRevoked        = "Refresh token revoked"
	MsgSessionsRevoked     = "Sessions revoked"
	MsgUserActivated       = "User activated successfully"
	MsgUserDeactivated     = "User deactivated successfully"
	MsgAccessTokenValid    = "Access token is valid"
	MsgAccessTokenExpired  = "Access token has expired"
	MsgAccessTokenInvalid  = "Access token is invalid"
)

// RegisterCommand registers a new account.
type RegisterCommand struct {
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	BirthDate time.Time `json:"birth_date"`
}

// RegisterResult is the outcome of Register.
type RegisterResult struct {
	AccountID ulid.ULID
	Success   bool
	Message   string
}

// Succeeded implements Result.
func (r RegisterResult) Succeeded() bool { return r.Success }

// LoginCommand authenticates with email and password.
type LoginCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResult carries an access/refresh token pair.
type TokenResult struct {
	AccessToken      string
	RefreshToken     string
	ExpiresAt        time.Time
	RefreshExpiresAt time.Time
	Success          bool
	Message          string
}

// Succeeded implements Result.
func (r TokenResult) Succeeded() bool { return r.Success }

// RefreshCommand exchanges a refresh token for a new pair. AccessToken is
// accepted for compatibility and ignored.
type RefreshCommand struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CommandResult is the outcome of commands that return no data.
type CommandResult struct {
	Success bool
	Message string
}

// Succeeded implements Result.
func (r CommandResult) Succeeded() bool { return r.Success }

// AssignRoleCommand grants a role to an account.
type AssignRoleCommand struct {
	AccountID ulid.ULID `json:"account_id"`
	RoleName  string    `json:"role_name"`
}

// LockCommand locks an account until explicitly unlocked.
type LockCommand struct {
	AccountID ulid.ULID `json:"account_id"`
	Reason    string    `json:"reason"`
}

// UnlockCommand clears any lock on an account.
type UnlockCommand struct {
	AccountID ulid.ULID `json:"account_id"`
}

// SetActiveCommand activates or deactivates an account.
type SetActiveCommand struct {
	AccountID ulid.ULID `json:"account_id"`
	Active    bool      `json:"active"`
}

// RevokeTokenCommand revokes a single refresh token (logout).
type RevokeTokenCommand struct {
	RefreshToken string `json:"refresh_token"`
}

// RevokeSessionsCommand revokes every refresh token of an account.
type RevokeSessionsCommand struct {
	AccountID ulid.ULID `json:"account_id"`
}

// SessionsResult is the outcome of RevokeAllSessions.
type SessionsResult struct {
	Revoked int
	Success bool
	Message string
}

// Succeeded implements Result.
func (r SessionsResult) Succeeded() bool { return r.Success }

// CreateRoleCommand creates an ad-hoc role.
type CreateRoleCommand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SeedRolesCommand creates the fixed role set if missing.
type SeedRolesCommand struct{}

// SeedResult lists which seed roles were created.
type SeedResult struct {
	Created  []string
	Existing []string
	Success  bool
	Message  string
}

// Succeeded implements Result.
func (r SeedResult) Succeeded() bool { return r.Success }

// GetAccountQuery fetches one account.
type GetAccountQuery struct {
	AccountID ulid.ULID `json:"account_id"`
}

// AccountView is the read model of an account. It never carries the
// credential hash.
type AccountView struct {
	ID               ulid.ULID
	Email            string
	FirstName        string
	LastName         string
	BirthDate        time.Time
	Active           bool
	EmailConfirmed   bool
	Locked           bool
	Lock             Lock
	FailedLoginCount int
	LastLoginAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Roles            []string
}

// AccountResult is the outcome of GetAccount.
type AccountResult struct {
	Found   bool
	Account *AccountView
	Message string
}

// Succeeded implements Result.
func (r AccountResult) Succeeded() bool { return r.Found }

// ListAccountsQuery fetches a page of accounts. Page is 1-based.
type ListAccountsQuery struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// AccountPage is one page of accounts.
type AccountPage struct {
	Accounts   []AccountView
	TotalCount int
	Page       int
	PageSize   int
	Success    bool
	Message    string
}

// Succeeded implements Result.
func (r AccountPage) Succeeded() bool { return r.Success }

// TotalPages returns the number of pages at the current page size.
func (r AccountPage) TotalPages() int {
	if r.PageSize <= 0 {
		return 0
	}
	return (r.TotalCount + r.PageSize - 1) / r.PageSize
}

// VerifyTokenQuery verifies an access token.
type VerifyTokenQuery struct {
	AccessToken string `json:"access_token"`
}

// VerifyResult is the outcome of VerifyAccessToken.
type VerifyResult struct {
	Valid   bool
	Claims  *AccessClaims
	Message string
}

// Succeeded implements Result.
func (r VerifyResult) Succeeded() bool { return r.Valid }

// AccountEventsQuery reads an account's event history.
type AccountEventsQuery struct {
	AccountID ulid.ULID `json:"account_id"`
}

// EventsResult is the outcome of AccountEvents.
type EventsResult struct {
	Events  []Event
	Success bool
	Message string
}

// Succeeded implements Result.
func (r EventsResult) Succeeded() bool { return r.Success }

// ListRolesQuery lists roles. Pattern is a case-insensitive glob over role
// names; empty matches every role.
type ListRolesQuery struct {
	Pattern string `json:"pattern"`
}

// RolesResult is the outcome of ListRoles.
type RolesResult struct {
	Roles   []*Role
	Success bool
	Message string
}

// Succeeded implements Result.
func (r RolesResult) Succeeded() bool { return r.Success }
