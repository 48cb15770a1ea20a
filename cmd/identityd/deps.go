// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bankcore/identity/internal/config"
	"github.com/bankcore/identity/internal/identity"
	"github.com/bankcore/identity/internal/logging"
	"github.com/bankcore/identity/internal/observability"
	"github.com/bankcore/identity/internal/store"
	"github.com/bankcore/identity/internal/xdg"
)

// serviceName is reported in every log record.
const serviceName = "identityd"

// Deps contains injectable dependencies for the commands.
// Nil fields use their default implementations.
type Deps struct {
	// Environ replaces the process environment for secrets and seed
	// passwords. Default: os.Environ.
	Environ map[string]string

	// StoresOpener connects the repositories.
	// Default: PostgreSQL via store.Open and store.NewStores.
	StoresOpener func(ctx context.Context, cfg *config.Config) (Backend, error)

	// MigratorFactory creates a schema migrator for a database URL.
	// Default: store.NewMigrator
	MigratorFactory func(databaseURL string) (Migrator, error)

	// ObservabilityServerFactory creates an observability server.
	// Default: observability.NewServer
	ObservabilityServerFactory func(addr string, ready observability.ReadinessChecker) ObservabilityServer

	// Hasher overrides the password hasher. Default: Argon2id.
	Hasher identity.PasswordHasher

	// Clock overrides the engine clock. Default: time.Now.
	Clock identity.Clock

	configFile string
}

// Backend is an opened set of stores.
type Backend struct {
	Stores identity.Stores
	// Ping reports storage reachability for readiness probes.
	Ping  func(ctx context.Context) error
	Close func()
}

// Migrator wraps the methods used from store.Migrator.
type Migrator interface {
	Up() error
	Down() error
	Steps(n int) error
	Force(version int) error
	Status() (store.Status, error)
	Close() error
}

// ObservabilityServer wraps the methods used from observability.Server.
type ObservabilityServer interface {
	Start() (<-chan error, error)
	Stop(ctx context.Context) error
	Addr() string
	Metrics() *observability.Metrics
}

func (d *Deps) withDefaults() *Deps {
	if d == nil {
		d = &Deps{}
	}
	if d.StoresOpener == nil {
		d.StoresOpener = openPostgres
	}
	if d.MigratorFactory == nil {
		d.MigratorFactory = func(databaseURL string) (Migrator, error) {
			return store.NewMigrator(databaseURL)
		}
	}
	if d.ObservabilityServerFactory == nil {
		d.ObservabilityServerFactory = func(addr string, ready observability.ReadinessChecker) ObservabilityServer {
			return observability.NewServer(addr, ready)
		}
	}
	return d
}

func (d *Deps) lookupEnv(key string) (string, bool) {
	if d.Environ != nil {
		v, ok := d.Environ[key]
		return v, ok
	}
	return os.LookupEnv(key)
}

func (d *Deps) getenv(key string) string {
	v, _ := d.lookupEnv(key)
	return v
}

func openPostgres(ctx context.Context, cfg *config.Config) (Backend, error) {
	if err := cfg.RequireDatabase(); err != nil {
		return Backend{}, err
	}
	pool, err := store.Open(ctx, cfg.Secrets.DatabaseURL, cfg.PoolConfig())
	if err != nil {
		return Backend{}, err
	}
	return Backend{
		Stores: store.NewStores(pool),
		Ping:   pool.Ping,
		Close:  pool.Close,
	}, nil
}

// app is the per-invocation wiring of configuration, logging and the
// engine.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	deps     *Deps
	backend  Backend
	pipeline *identity.Pipeline
}

// loadApp resolves configuration and logging without touching storage.
func loadApp(cmd *cobra.Command, deps *Deps) (*app, error) {
	var (
		cfg *config.Config
		err error
	)
	path := deps.configFile
	if path == "" {
		path = xdg.DefaultConfigFile(deps.getenv)
	}
	if deps.Environ != nil {
		cfg, err = config.LoadWithEnvironment(path, cmd.Flags(), deps.Environ)
	} else {
		cfg, err = config.Load(path, cmd.Flags())
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Service: serviceName,
		Version: version,
		Format:  cfg.LogFormat,
		Level:   cfg.LogLevel,
		Writer:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logger, deps: deps}, nil
}

// openApp is loadApp plus an opened backend and a decorated pipeline.
// Callers must call close.
func openApp(cmd *cobra.Command, deps *Deps, opts ...identity.PipelineOption) (*app, error) {
	a, err := loadApp(cmd, deps)
	if err != nil {
		return nil, err
	}
	if err := a.cfg.RequireSigningSecret(); err != nil {
		return nil, err
	}

	signer, err := identity.NewJWTSigner(a.cfg.SignerConfig())
	if err != nil {
		return nil, err
	}

	var backend Backend
	err = withRetry(cmd.Context(), a.cfg.Retry, a.logger, func(ctx context.Context) error {
		var openErr error
		backend, openErr = deps.StoresOpener(ctx, a.cfg)
		return openErr
	})
	if err != nil {
		return nil, err
	}
	a.backend = backend

	hasher := deps.Hasher
	if hasher == nil {
		hasher = identity.NewArgon2idHasher()
	}
	svcOpts := []identity.Option{
		identity.WithLogger(a.logger),
		identity.WithLockoutPolicy(a.cfg.LockoutPolicy()),
		identity.WithRefreshTokenTTL(a.cfg.Token.RefreshTTL),
	}
	if deps.Clock != nil {
		svcOpts = append(svcOpts, identity.WithClock(deps.Clock))
	}
	svc, err := identity.NewService(backend.Stores, hasher, signer, svcOpts...)
	if err != nil {
		a.close()
		return nil, err
	}

	a.pipeline = identity.NewPipeline(svc, append([]identity.PipelineOption{identity.WithPipelineLogger(a.logger)}, opts...)...)
	return a, nil
}

func (a *app) close() {
	if a.backend.Close != nil {
		a.backend.Close()
	}
}
