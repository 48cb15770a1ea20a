// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package main

import (
	"context"
	"log/slog"

	"github.com/sethvargo/go-retry"

	"github.com/bankcore/identity/internal/config"
	"github.com/bankcore/identity/internal/identity"
)

// withRetry runs fn, retrying with exponential backoff while it fails with
// a retryable storage error.
func withRetry(ctx context.Context, cfg config.RetryConfig, logger *slog.Logger, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(cfg.Attempts, retry.NewExponential(cfg.BaseDelay))

	attempt := 0
	//nolint:wrapcheck // fn errors already carry their codes
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if identity.IsRetryable(err) {
			logger.WarnContext(ctx, "retrying after storage failure", "attempt", attempt, "error", err)
			return retry.RetryableError(err)
		}
		return err
	})
}

// call executes one decorated command with retries.
func call[C any, R identity.Result](ctx context.Context, a *app, h identity.Handler[C, R], cmd C) (R, error) {
	var out R
	err := withRetry(ctx, a.cfg.Retry, a.logger, func(ctx context.Context) error {
		r, err := h(ctx, cmd)
		if err != nil {
			return err
		}
		out = r
		return nil
	})
	return out, err
}
