// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 BankCore Identity Contributors

//go:build integration

package store_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/bankcore/identity/internal/identity"
	"github.com/bankcore/identity/internal/identity/identitytest"
	"github.com/bankcore/identity/internal/store"
)

func newService(clock *identitytest.Clock) *identity.Service {
	signer, err := identity.NewJWTSigner(identity.SignerConfig{Secret: identitytest.TestSecret})
	Expect(err).NotTo(HaveOccurred())

	svc, err := identity.NewService(store.NewStores(pool), identitytest.FastHasher(), signer,
		identity.WithClock(clock.Now),
		identity.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	Expect(err).NotTo(HaveOccurred())

	seeded, err := svc.SeedRoles(context.Background(), identity.SeedRolesCommand{})
	Expect(err).NotTo(HaveOccurred())
	Expect(seeded.Success).To(BeTrue())
	return svc
}

func register(svc *identity.Service, email string) identity.RegisterResult {
	res, err := svc.Register(context.Background(), identity.RegisterCommand{
		Email:     email,
		Password:  "Sup3r$ecret",
		FirstName: "Test",
		LastName:  "User",
		BirthDate: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
	})
	Expect(err).NotTo(HaveOccurred())
	Expect(res.Success).To(BeTrue(), res.Message)
	return res
}

var _ = Describe("PostgreSQL identity stores", func() {
	var (
		ctx   context.Context
		clock *identitytest.Clock
		svc   *identity.Service
	)

	BeforeEach(func() {
		ctx = context.Background()
		clock = identitytest.NewClock(identitytest.Epoch)
		svc = newService(clock)
	})

	Describe("registration", func() {
		It("rejects a duplicate email regardless of case", func() {
			register(svc, "alice@example.com")

			res, err := svc.Register(ctx, identity.RegisterCommand{
				Email:     "ALICE@example.com",
				Password:  "Sup3r$ecret",
				FirstName: "Other",
				LastName:  "Alice",
				BirthDate: time.Date(1985, 1, 1, 0, 0, 0, 0, time.UTC),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Success).To(BeFalse())
			Expect(res.Message).To(Equal(identity.MsgEmailExists))
		})

		It("grants the default role and records the event", func() {
			res := register(svc, "carol@example.com")

			roles, err := store.NewRoleRepository(pool).RolesForAccount(ctx, res.AccountID)
			Expect(err).NotTo(HaveOccurred())
			Expect(roles).To(HaveLen(1))
			Expect(roles[0].Name).To(Equal(identity.RoleUser))

			events, err := store.NewEventLog(pool).ListByAggregate(ctx, res.AccountID)
			Expect(err).NotTo(HaveOccurred())
			Expect(events).To(HaveLen(1))
			Expect(events[0].Type).To(Equal(identity.EventUserRegistered))
		})
	})

	Describe("lockout", func() {
		It("locks on the fifth failure and lets the lock expire", func() {
			res := register(svc, "dave@example.com")

			for i := 1; i <= 4; i++ {
				out, err := svc.Login(ctx, identity.LoginCommand{Email: "dave@example.com", Password: "wrong"})
				Expect(err).NotTo(HaveOccurred())
				Expect(out.Message).To(Equal(identity.MsgInvalidCredentials))
			}
			out, err := svc.Login(ctx, identity.LoginCommand{Email: "dave@example.com", Password: "wrong"})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Message).To(Equal(identity.MsgAccountLocked))

			account, err := store.NewAccountRepository(pool).GetByID(ctx, res.AccountID)
			Expect(err).NotTo(HaveOccurred())
			Expect(account.FailedLoginCount).To(Equal(5))
			Expect(account.Lock.Kind).To(Equal(identity.LockThrottle))
			Expect(account.Lock.Until.After(clock.Now())).To(BeTrue())

			clock.Advance(identity.DefaultLockoutDuration + time.Second)
			out, err = svc.Login(ctx, identity.LoginCommand{Email: "dave@example.com", Password: "Sup3r$ecret"})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Success).To(BeTrue(), out.Message)
		})

		It("counts concurrent failures without losing increments", func() {
			res := register(svc, "erin@example.com")
			repo := store.NewAccountRepository(pool)
			policy := identity.LockoutPolicy{Threshold: 100, Duration: time.Minute}

			var wg sync.WaitGroup
			for range 20 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer GinkgoRecover()
					_, err := repo.RecordFailedLogin(ctx, res.AccountID, clock.Now(), policy)
					Expect(err).NotTo(HaveOccurred())
				}()
			}
			wg.Wait()

			account, err := repo.GetByID(ctx, res.AccountID)
			Expect(err).NotTo(HaveOccurred())
			Expect(account.FailedLoginCount).To(Equal(20))
		})

		It("never replaces an admin lock with a throttle", func() {
			res := register(svc, "frank@example.com")
			locked, err := svc.Lock(ctx, identity.LockCommand{AccountID: res.AccountID, Reason: "fraud review"})
			Expect(err).NotTo(HaveOccurred())
			Expect(locked.Success).To(BeTrue())

			out, err := store.NewAccountRepository(pool).RecordFailedLogin(ctx, res.AccountID, clock.Now(),
				identity.LockoutPolicy{Threshold: 1, Duration: time.Minute})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Locked).To(BeFalse())
			Expect(out.Lock.Kind).To(Equal(identity.LockAdmin))
			Expect(out.Lock.Reason).To(Equal("fraud review"))
		})
	})

	Describe("successful login", func() {
		It("is refused once the account is locked or deactivated", func() {
			repo := store.NewAccountRepository(pool)

			locked := register(svc, "heidi@example.com")
			_, err := svc.Lock(ctx, identity.LockCommand{AccountID: locked.AccountID, Reason: "fraud review"})
			Expect(err).NotTo(HaveOccurred())
			applied, err := repo.RecordSuccessfulLogin(ctx, locked.AccountID, clock.Now())
			Expect(err).NotTo(HaveOccurred())
			Expect(applied).To(BeFalse())

			inactive := register(svc, "ivan@example.com")
			_, err = svc.SetActive(ctx, identity.SetActiveCommand{AccountID: inactive.AccountID, Active: false})
			Expect(err).NotTo(HaveOccurred())
			applied, err = repo.RecordSuccessfulLogin(ctx, inactive.AccountID, clock.Now())
			Expect(err).NotTo(HaveOccurred())
			Expect(applied).To(BeFalse())

			open := register(svc, "judy@example.com")
			applied, err = repo.RecordSuccessfulLogin(ctx, open.AccountID, clock.Now())
			Expect(err).NotTo(HaveOccurred())
			Expect(applied).To(BeTrue())
		})
	})

	Describe("refresh rotation", func() {
		It("lets exactly one concurrent rotation win", func() {
			register(svc, "grace@example.com")
			login, err := svc.Login(ctx, identity.LoginCommand{Email: "grace@example.com", Password: "Sup3r$ecret"})
			Expect(err).NotTo(HaveOccurred())
			Expect(login.Success).To(BeTrue())

			const racers = 8
			results := make([]identity.TokenResult, racers)
			var wg sync.WaitGroup
			for i := range racers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer GinkgoRecover()
					res, err := svc.Refresh(ctx, identity.RefreshCommand{
						AccessToken:  login.AccessToken,
						RefreshToken: login.RefreshToken,
					})
					Expect(err).NotTo(HaveOccurred())
					results[i] = res
				}()
			}
			wg.Wait()

			winners := 0
			for _, res := range results {
				if res.Success {
					winners++
				} else {
					Expect(res.Message).To(Equal(identity.MsgInvalidRefreshToken))
				}
			}
			Expect(winners).To(Equal(1))
		})

		It("treats the expiry instant as still valid", func() {
			register(svc, "heidi@example.com")
			login, err := svc.Login(ctx, identity.LoginCommand{Email: "heidi@example.com", Password: "Sup3r$ecret"})
			Expect(err).NotTo(HaveOccurred())

			clock.Set(login.RefreshExpiresAt)
			res, err := svc.Refresh(ctx, identity.RefreshCommand{AccessToken: login.AccessToken, RefreshToken: login.RefreshToken})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Success).To(BeTrue(), res.Message)
		})
	})

	Describe("role assignment", func() {
		It("reports an already held role", func() {
			res := register(svc, "ivan@example.com")

			out, err := svc.AssignRole(ctx, identity.AssignRoleCommand{AccountID: res.AccountID, RoleName: "user"})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Success).To(BeFalse())
			Expect(out.Message).To(Equal(identity.MsgRoleAlreadyHeld))

			out, err = svc.AssignRole(ctx, identity.AssignRoleCommand{AccountID: res.AccountID, RoleName: "Manager"})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Success).To(BeTrue())
		})
	})

	Describe("account listing", func() {
		It("pages in registration order", func() {
			for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
				register(svc, email)
				clock.Advance(time.Second)
			}

			page, err := svc.ListAccounts(ctx, identity.ListAccountsQuery{Page: 2, PageSize: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.TotalCount).To(Equal(3))
			Expect(page.Accounts).To(HaveLen(1))
			Expect(page.Accounts[0].Email).To(Equal("c@example.com"))
		})
	})
})
