// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"

	"github.com/bankcore/identity/internal/identity"
)

// Transactor runs functions inside a PostgreSQL transaction.
type Transactor struct {
	pool Pool
}

// NewTransactor creates a new transactor.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// InTransaction executes fn within a database transaction. Repositories
// called with the context passed to fn use the transaction. A nested call
// joins the outer transaction. If fn returns an error the transaction is
// rolled back.
func (t *Transactor) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return oops.Code("TX_BEGIN_FAILED").Wrap(fmt.Errorf("%w: %w", identity.ErrStorage, err))
	}

	finished := false
	defer func() {
		if !finished {
			_ = tx.Rollback(context.WithoutCancel(ctx)) //nolint:errcheck // fn error takes precedence
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	finished = true
	if err := tx.Commit(ctx); err != nil {
		return oops.Code("TX_COMMIT_FAILED").Wrap(fmt.Errorf("%w: %w", identity.ErrStorage, err))
	}
	return nil
}
