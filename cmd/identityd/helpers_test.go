// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package main

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bankcore/identity/internal/config"
	"github.com/bankcore/identity/internal/identity/identitytest"
)

const testPassword = "Sup3r$ecret"

// harness runs CLI invocations against one in-memory store.
type harness struct {
	store *identitytest.Store
	clock *identitytest.Clock
	env   map[string]string
	deps  *Deps
	opens int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		store: identitytest.NewStore(),
		clock: identitytest.NewClock(identitytest.Epoch),
		env: map[string]string{
			"IDENTITY_JWT_SECRET": string(identitytest.TestSecret),
			"DATABASE_URL":        "postgres://identity@localhost/identity",
			"XDG_CONFIG_HOME":     t.TempDir(),
		},
	}
	h.deps = &Deps{
		Environ: h.env,
		StoresOpener: func(context.Context, *config.Config) (Backend, error) {
			h.opens++
			return Backend{
				Stores: h.store.Stores(),
				Ping:   func(context.Context) error { return nil },
				Close:  func() {},
			}, nil
		},
		Hasher: identitytest.FastHasher(),
		Clock:  h.clock.Now,
	}
	return h
}

// run executes one CLI invocation and returns its standard output.
func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(h.deps)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (h *harness) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := h.run(t, args...)
	require.NoError(t, err, "identityd %s\n%s", strings.Join(args, " "), out)
	return out
}

// register seeds roles if needed and registers an account, returning its id.
func (h *harness) register(t *testing.T, email string) string {
	t.Helper()
	h.mustRun(t, "seed")
	h.env[envPassword] = testPassword
	out := h.mustRun(t, "account", "register",
		"--email", email,
		"--first-name", "Test",
		"--last-name", "User",
		"--birth-date", "1990-06-15")
	id := field(out, "Account ID")
	require.NotEmpty(t, id, out)
	return id
}

// field returns the value of the first "key: value" line in out.
func field(out, key string) string {
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		if v, ok := strings.CutPrefix(sc.Text(), key+": "); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
