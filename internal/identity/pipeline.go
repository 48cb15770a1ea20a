// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identity

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bankcore/identity/pkg/errutil"
)

var tracer = otel.Tracer("bankcore/identity")

// Command outcomes reported by the logging and metrics decorators.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Handler executes one command.
type Handler[C any, R Result] func(ctx context.Context, cmd C) (R, error)

// Middleware decorates a Handler.
type Middleware[C any, R Result] func(next Handler[C, R]) Handler[C, R]

// Chain wraps h with middlewares. The first middleware is the outermost.
func Chain[C any, R Result](h Handler[C, R], middlewares ...Middleware[C, R]) Handler[C, R] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

func outcome[R Result](r R, err error) string {
	switch {
	case err != nil:
		return OutcomeError
	case r.Succeeded():
		return OutcomeSuccess
	}
	return OutcomeRejected
}

// WithTracing starts a span per command.
func WithTracing[C any, R Result](name string) Middleware[C, R] {
	return func(next Handler[C, R]) Handler[C, R] {
		return func(ctx context.Context, cmd C) (R, error) {
			ctx, span := tracer.Start(ctx, "identity."+name,
				trace.WithAttributes(attribute.String("command.name", name)),
			)
			defer span.End()

			r, err := next(ctx, cmd)
			span.SetAttributes(attribute.String("command.outcome", outcome(r, err)))
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return r, err
		}
	}
}

// WithLogging logs each command's outcome. Infrastructure errors are logged
// with their oops code and context.
func WithLogging[C any, R Result](logger *slog.Logger, name string) Middleware[C, R] {
	return func(next Handler[C, R]) Handler[C, R] {
		return func(ctx context.Context, cmd C) (R, error) {
			start := time.Now()
			r, err := next(ctx, cmd)
			elapsed := time.Since(start)

			switch out := outcome(r, err); out {
			case OutcomeError:
				errutil.LogError(ctx, logger, "command failed", err, "command", name, "duration", elapsed)
			case OutcomeSuccess:
				logger.DebugContext(ctx, "command completed",
					"command", name,
					"duration", elapsed)
			default:
				logger.InfoContext(ctx, "command rejected",
					"command", name,
					"duration", elapsed)
			}
			return r, err
		}
	}
}

// Recorder receives per-command measurements.
type Recorder interface {
	ObserveCommand(command, outcome string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCommand(string, string, time.Duration) {}

// WithMetrics records the outcome and duration of each command.
func WithMetrics[C any, R Result](rec Recorder, name string) Middleware[C, R] {
	if rec == nil {
		rec = nopRecorder{}
	}
	return func(next Handler[C, R]) Handler[C, R] {
		return func(ctx context.Context, cmd C) (R, error) {
			start := time.Now()
			r, err := next(ctx, cmd)
			rec.ObserveCommand(name, outcome(r, err), time.Since(start))
			return r, err
		}
	}
}

// WithValidation rejects invalid commands before they reach the handler.
// fail builds the failure result carrying the validation message.
func WithValidation[C Validator, R Result](clock Clock, fail func(message string) R) Middleware[C, R] {
	if clock == nil {
		clock = time.Now
	}
	return func(next Handler[C, R]) Handler[C, R] {
		return func(ctx context.Context, cmd C) (R, error) {
			if err := cmd.ValidateAt(clock().UTC()); err != nil {
				return fail(ValidationMessage(err)), nil
			}
			return next(ctx, cmd)
		}
	}
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*pipelineConfig)

type pipelineConfig struct {
	logger   *slog.Logger
	recorder Recorder
	clock    Clock
}

// WithPipelineLogger sets the logger used by the logging decorator.
func WithPipelineLogger(logger *slog.Logger) PipelineOption {
	return func(c *pipelineConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRecorder sets the metrics sink.
func WithRecorder(rec Recorder) PipelineOption {
	return func(c *pipelineConfig) {
		if rec != nil {
			c.recorder = rec
		}
	}
}

// Pipeline exposes every Service command wrapped in the decorator chain
// tracing, logging, metrics, validation.
type Pipeline struct {
	Register           Handler[RegisterCommand, RegisterResult]
	Login              Handler[LoginCommand, TokenResult]
	Refresh            Handler[RefreshCommand, TokenResult]
	AssignRole         Handler[AssignRoleCommand, CommandResult]
	Lock               Handler[LockCommand, CommandResult]
	Unlock             Handler[UnlockCommand, CommandResult]
	SetActive          Handler[SetActiveCommand, CommandResult]
	RevokeRefreshToken Handler[RevokeTokenCommand, CommandResult]
	RevokeAllSessions  Handler[RevokeSessionsCommand, SessionsResult]
	CreateRole         Handler[CreateRoleCommand, CommandResult]
	SeedRoles          Handler[SeedRolesCommand, SeedResult]
	GetAccount         Handler[GetAccountQuery, AccountResult]
	ListAccounts       Handler[ListAccountsQuery, AccountPage]
	VerifyAccessToken  Handler[VerifyTokenQuery, VerifyResult]
	AccountEvents      Handler[AccountEventsQuery, EventsResult]
	ListRoles          Handler[ListRolesQuery, RolesResult]
}

func decorate[C Validator, R Result](cfg pipelineConfig, name string, h Handler[C, R], fail func(string) R) Handler[C, R] {
	return Chain(h,
		WithTracing[C, R](name),
		WithLogging[C, R](cfg.logger, name),
		WithMetrics[C, R](cfg.recorder, name),
		WithValidation[C, R](cfg.clock, fail),
	)
}

func failCommand(m string) CommandResult { return CommandResult{Message: m} }

func failToken(m string) TokenResult { return TokenResult{Message: m} }

// NewPipeline wraps svc's commands.
func NewPipeline(svc *Service, opts ...PipelineOption) *Pipeline {
	cfg := pipelineConfig{
		logger:   svc.logger,
		recorder: nopRecorder{},
		clock:    svc.clock,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Pipeline{
		Register: decorate[RegisterCommand, RegisterResult](cfg, "register", svc.Register,
			func(m string) RegisterResult { return RegisterResult{Message: m} }),
		Login:      decorate[LoginCommand, TokenResult](cfg, "login", svc.Login, failToken),
		Refresh:    decorate[RefreshCommand, TokenResult](cfg, "refresh", svc.Refresh, failToken),
		AssignRole: decorate[AssignRoleCommand, CommandResult](cfg, "assign_role", svc.AssignRole, failCommand),
		Lock:       decorate[LockCommand, CommandResult](cfg, "lock", svc.Lock, failCommand),
		Unlock:     decorate[UnlockCommand, CommandResult](cfg, "unlock", svc.Unlock, failCommand),
		SetActive:  decorate[SetActiveCommand, CommandResult](cfg, "set_active", svc.SetActive, failCommand),
		RevokeRefreshToken: decorate[RevokeTokenCommand, CommandResult](cfg, "revoke_token",
			svc.RevokeRefreshToken, failCommand),
		RevokeAllSessions: decorate[RevokeSessionsCommand, SessionsResult](cfg, "revoke_sessions",
			svc.RevokeAllSessions, func(m string) SessionsResult { return SessionsResult{Message: m} }),
		CreateRole: decorate[CreateRoleCommand, CommandResult](cfg, "create_role", svc.CreateRole, failCommand),
		SeedRoles: decorate[SeedRolesCommand, SeedResult](cfg, "seed_roles", svc.SeedRoles,
			func(m string) SeedResult { return SeedResult{Message: m} }),
		GetAccount: decorate[GetAccountQuery, AccountResult](cfg, "get_account", svc.GetAccount,
			func(m string) AccountResult { return AccountResult{Message: m} }),
		ListAccounts: decorate[ListAccountsQuery, AccountPage](cfg, "list_accounts", svc.ListAccounts,
			func(m string) AccountPage { return AccountPage{Message: m} }),
		VerifyAccessToken: decorate[VerifyTokenQuery, VerifyResult](cfg, "verify_token", svc.VerifyAccessToken,
			func(m string) VerifyResult { return VerifyResult{Message: m} }),
		AccountEvents: decorate[AccountEventsQuery, EventsResult](cfg, "account_events", svc.AccountEvents,
			func(m string) EventsResult { return EventsResult{Message: m} }),
		ListRoles: decorate[ListRolesQuery, RolesResult](cfg, "list_roles", svc.ListRoles,
			func(m string) RolesResult { return RolesResult{Message: m} }),
	}
}
