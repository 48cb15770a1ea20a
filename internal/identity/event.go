// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity

import (
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// EventType tags a domain event record.
type EventType string

// Event types.
const (
	EventUserRegistered  EventType = "UserRegistered"
	EventUserLocked      EventType = "UserLocked"
	EventUserUnlocked    EventType = "UserUnlocked"
	EventRoleAssigned    EventType = "RoleAssigned"
	EventUserActivated   EventType = "UserActivated"
	EventUserDeactivated EventType = "UserDeactivated"
)

// Event is an immutable record of a state transition. Events are produced by
// command handlers and appended in the same transaction as the change they
// describe.
type Event struct {
	ID          ulid.ULID
	AggregateID ulid.ULID
	Type        EventType
	Payload     json.RawMessage
	CreatedAt   time.Time
	Processed   bool
}

// UserRegisteredPayload is the payload of EventUserRegistered.
type UserRegisteredPayload struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserLockedPayload is the payload of EventUserLocked.
type UserLockedPayload struct {
	AccountID string     `json:"account_id"`
	Kind      LockKind   `json:"kind"`
	Reason    string     `json:"reason,omitempty"`
	Until     *time.Time `json:"until,omitempty"`
}

// AccountPayload is the payload of events that only carry the account id.
type AccountPayload struct {
	AccountID string `json:"account_id"`
}

// RoleAssignedPayload is the payload of EventRoleAssigned.
type RoleAssignedPayload struct {
	AccountID string `json:"account_id"`
	RoleName  string `json:"role_name"`
}

func newEvent(aggregateID ulid.ULID, typ EventType, payload any, at time.Time) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, oops.Code("EVENT_ENCODE_FAILED").
			With("event_type", string(typ)).
			Wrap(err)
	}
	return Event{
		ID:          NewID(),
		AggregateID: aggregateID,
		Type:        typ,
		Payload:     data,
		CreatedAt:   at.UTC(),
	}, nil
}

// UserRegistered builds the registration event for account.
func UserRegistered(account *Account, at time.Time) (Event, error) {
	return newEvent(account.ID, EventUserRegistered, UserRegisteredPayload{
		AccountID: account.ID.String(),
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
	}, at)
}

// UserLocked builds a lock event.
func UserLocked(accountID ulid.ULID, lock Lock, at time.Time) (Event, error) {
	return newEvent(accountID, EventUserLocked, UserLockedPayload{
		AccountID: accountID.String(),
		Kind:      lock.Kind,
		Reason:    lock.Reason,
		Until:     lock.Until,
	}, at)
}

// UserUnlocked builds an unlock event.
func UserUnlocked(accountID ulid.ULID, at time.Time) (Event, error) {
	return newEvent(accountID, EventUserUnlocked, AccountPayload{AccountID: accountID.String()}, at)
}

// RoleAssigned builds a role-assignment event.
func RoleAssigned(accountID ulid.ULID, roleName string, at time.Time) (Event, error) {
	return newEvent(accountID, EventRoleAssigned, RoleAssignedPayload{
		AccountID: accountID.String(),
		RoleName:  roleName,
	}, at)
}

// ActiveChanged builds an activation or deactivation event.
func ActiveChanged(accountID ulid.ULID, active bool, at time.Time) (Event, error) {
	typ := EventUserDeactivated
	if active {
		typ = EventUserActivated
	}
	return newEvent(accountID, typ, AccountPayload{AccountID: accountID.String()}, at)
}
