// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bankcore/identity/internal/identity"
)

// Metrics contains the identity command metrics. It implements
// identity.Recorder.
type Metrics struct {
	CommandsTotal   *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec
}

var _ identity.Recorder = (*Metrics)(nil)

// NewMetrics creates and registers the identity metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CommandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "identity_commands_total",
				Help: "Total number of identity commands by command and outcome",
			},
			[]string{"command", "outcome"},
		),
		CommandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "identity_command_duration_seconds",
				Help:    "Identity command latency in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
			},
			[]string{"command"},
		),
	}

	reg.MustRegister(m.CommandsTotal)
	reg.MustRegister(m.CommandDuration)

	return m
}

// ObserveCommand records one command execution.
func (m *Metrics) ObserveCommand(command, outcome string, elapsed time.Duration) {
	m.CommandsTotal.WithLabelValues(command, outcome).Inc()
	m.CommandDuration.WithLabelValues(command).Observe(elapsed.Seconds())
}
