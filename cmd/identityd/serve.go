// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/bankcore/identity/internal/identity"
)

// shutdownTimeout bounds graceful shutdown of the HTTP endpoints.
const shutdownTimeout = 5 * time.Second

// newServeCmd creates the serve subcommand.
func newServeCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the metrics and health endpoints until signalled",
		Long: `Connects to the database and serves /metrics,
/healthz/liveness and /healthz/readiness. Readiness follows database
reachability. Stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, deps)
		},
	}
}

func runServe(cmd *cobra.Command, deps *Deps) error {
	pre, err := loadApp(cmd, deps)
	if err != nil {
		return err
	}
	if pre.cfg.MetricsAddr == "" {
		return oops.Code("CONFIG_INVALID").
			Wrapf(identity.ErrConfiguration, "metrics_addr must be set for serve")
	}

	var a *app
	server := deps.ObservabilityServerFactory(pre.cfg.MetricsAddr, func(ctx context.Context) error {
		if a == nil || a.backend.Ping == nil {
			return errors.New("storage not connected")
		}
		return a.backend.Ping(ctx)
	})

	a, err = openApp(cmd, deps, identity.WithRecorder(server.Metrics()))
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	errCh, err := server.Start()
	if err != nil {
		return err
	}
	go monitorServerErrors(ctx, cancel, errCh, a)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	a.logger.Info("identityd ready", "metrics_addr", server.Addr())
	cmd.Println("identityd serving on", server.Addr())

	select {
	case sig := <-sigChan:
		a.logger.Info("received shutdown signal", "signal", sig.String())
	case <-ctx.Done():
		a.logger.Info("context cancelled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Stop(shutdownCtx); err != nil {
		a.logger.Warn("error stopping observability server", "error", err)
	}

	a.logger.Info("shutdown complete")
	return nil
}

// monitorServerErrors cancels ctx when the server reports an error. It
// exits when the channel closes or ctx is done.
func monitorServerErrors(ctx context.Context, cancel context.CancelFunc, errCh <-chan error, a *app) {
	select {
	case err, ok := <-errCh:
		if !ok {
			return
		}
		if err != nil {
			a.logger.Error("server error, triggering shutdown", "error", err)
			cancel()
		}
	case <-ctx.Done():
	}
}
