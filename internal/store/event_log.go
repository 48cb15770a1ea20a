// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/bankcore/identity/internal/identity"
)

// EventLog implements identity.EventLog on the domain_events table.
type EventLog struct {
	pool Pool
}

// NewEventLog creates a new event log.
func NewEventLog(pool Pool) *EventLog {
	return &EventLog{pool: pool}
}

// Compile-time interface check.
var _ identity.EventLog = (*EventLog)(nil)

const appendEventSQL = `
	INSERT INTO domain_events (id, aggregate_id, event_type, payload, created_at, processed)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id) DO NOTHING`

// Append writes events in order. Events already stored are skipped.
func (l *EventLog) Append(ctx context.Context, events ...identity.Event) error {
	q := conn(ctx, l.pool)
	for _, ev := range events {
		if _, err := q.Exec(ctx, appendEventSQL, eventArgs(ev)...); err != nil {
			return oops.With("operation", "append event").
				With("event_id", ev.ID.String()).
				With("event_type", string(ev.Type)).
				Wrap(err)
		}
	}
	return nil
}

// ListByAggregate returns an aggregate's events in ID order.
func (l *EventLog) ListByAggregate(ctx context.Context, aggregateID ulid.ULID) ([]identity.Event, error) {
	rows, err := conn(ctx, l.pool).Query(ctx, `
		SELECT id, aggregate_id, event_type, payload, created_at, processed
		FROM domain_events
		WHERE aggregate_id = $1
		ORDER BY id`,
		aggregateID.String())
	if err != nil {
		return nil, oops.With("operation", "list events").With("aggregate_id", aggregateID.String()).Wrap(err)
	}
	defer rows.Close()

	var events []identity.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, oops.With("operation", "scan event row").Wrap(err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.With("operation", "iterate events").Wrap(err)
	}
	return events, nil
}

func eventArgs(ev identity.Event) []any {
	return []any{
		ev.ID.String(),
		ev.AggregateID.String(),
		string(ev.Type),
		[]byte(ev.Payload),
		ev.CreatedAt.UTC(),
		ev.Processed,
	}
}

func scanEvent(row pgx.Row) (identity.Event, error) {
	var (
		ev                     identity.Event
		idStr, aggStr, typeStr string
		payload                []byte
	)
	if err := row.Scan(&idStr, &aggStr, &typeStr, &payload, &ev.CreatedAt, &ev.Processed); err != nil {
		return identity.Event{}, err
	}

	var err error
	if ev.ID, err = ulid.Parse(idStr); err != nil {
		return identity.Event{}, oops.Code("EVENT_CORRUPT_ID").With("id", idStr).Wrap(err)
	}
	if ev.AggregateID, err = ulid.Parse(aggStr); err != nil {
		return identity.Event{}, oops.Code("EVENT_CORRUPT_ID").With("aggregate_id", aggStr).Wrap(err)
	}
	ev.Type = identity.EventType(typeStr)
	ev.Payload = payload
	return ev, nil
}
