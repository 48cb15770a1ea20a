// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

package identitytest

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bankcore/identity/internal/identity"
)

// Epoch is the default fixture start time.
var Epoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// TestSecret is a signing secret of the minimum accepted length.
var TestSecret = []byte("0123456789abcdef0123456789abcdef")

// FastHasher returns an argon2id hasher with minimal cost.
func FastHasher() *identity.Argon2idHasher {
	return identity.NewArgon2idHasherWithParams(identity.Argon2Params{
		Time: 1, Memory: 1024, Threads: 1, SaltLen: 16, KeyLen: 32,
	})
}

// Fixture wires a Service to an in-memory Store and a fake clock.
type Fixture struct {
	Store   *Store
	Clock   *Clock
	Signer  *identity.JWTSigner
	Service *identity.Service
}

// NewFixture creates a Fixture with seeded roles.
func NewFixture(t testing.TB, opts ...identity.Option) *Fixture {
	t.Helper()

	store := NewStore()
	clock := NewClock(Epoch)
	signer, err := identity.NewJWTSigner(identity.SignerConfig{Secret: TestSecret})
	require.NoError(t, err)

	base := []identity.Option{
		identity.WithClock(clock.Now),
		identity.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	svc, err := identity.NewService(store.Stores(), FastHasher(), signer, append(base, opts...)...)
	require.NoError(t, err)

	res, err := svc.SeedRoles(context.Background(), identity.SeedRolesCommand{})
	require.NoError(t, err)
	require.True(t, res.Success)

	return &Fixture{Store: store, Clock: clock, Signer: signer, Service: svc}
}

// Register registers an adult account with the given credentials and
// returns its id.
func (f *Fixture) Register(t testing.TB, email, password string) identity.RegisterResult {
	t.Helper()
	res, err := f.Service.Register(context.Background(), identity.RegisterCommand{
		Email:     email,
		Password:  password,
		FirstName: "Test",
		LastName:  "User",
		BirthDate: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.True(t, res.Success, res.Message)
	return res
}
