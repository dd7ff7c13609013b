// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

//go:build integration

package auth_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/holomush/gatekeeper/internal/auth"
)

var _ = Describe("Account Lifecycle", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
		cleanupUsers(ctx)
	})

	Describe("Registration", func() {
		It("stores a hash, never the plaintext", func() {
			user, err := env.Sessions.Register(ctx, "alice@example.test", "wonderland")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.HashedPassword).NotTo(ContainSubstring("wonderland"))
			Expect(string(user.HashedPassword)).To(HavePrefix("$argon2id$"))
		})

		It("rejects a taken email", func() {
			_, err := env.Sessions.Register(ctx, "alice@example.test", "wonderland")
			Expect(err).NotTo(HaveOccurred())

			_, err = env.Sessions.Register(ctx, "alice@example.test", "different")
			Expect(err).To(MatchError(auth.ErrAlreadyExists))

			// First registration's credentials stay intact.
			Expect(env.Sessions.Login(ctx, "alice@example.test", "wonderland")).To(BeTrue())
			Expect(env.Sessions.Login(ctx, "alice@example.test", "different")).To(BeFalse())
		})

		It("enforces email uniqueness at the database level", func() {
			_, err := env.Users.Add(ctx, "alice@example.test", []byte("hash-1"))
			Expect(err).NotTo(HaveOccurred())

			_, err = env.Users.Add(ctx, "alice@example.test", []byte("hash-2"))
			Expect(err).To(MatchError(auth.ErrAlreadyExists))
		})
	})

	Describe("Login", func() {
		BeforeEach(func() {
			_, err := env.Sessions.Register(ctx, "alice@example.test", "wonderland")
			Expect(err).NotTo(HaveOccurred())
		})

		It("accepts valid credentials", func() {
			Expect(env.Sessions.Login(ctx, "alice@example.test", "wonderland")).To(BeTrue())
		})

		It("rejects a wrong password", func() {
			Expect(env.Sessions.Login(ctx, "alice@example.test", "looking-glass")).To(BeFalse())
		})

		It("rejects an unknown email", func() {
			Expect(env.Sessions.Login(ctx, "ghost@example.test", "wonderland")).To(BeFalse())
		})
	})

	Describe("Sessions", func() {
		BeforeEach(func() {
			_, err := env.Sessions.Register(ctx, "alice@example.test", "wonderland")
			Expect(err).NotTo(HaveOccurred())
		})

		It("round-trips create, resolve, destroy", func() {
			token, err := env.Sessions.CreateSession(ctx, "alice@example.test")
			Expect(err).NotTo(HaveOccurred())
			Expect(token).NotTo(BeEmpty())

			user := env.Sessions.Resolve(ctx, token)
			Expect(user).NotTo(BeNil())
			Expect(user.Email).To(Equal("alice@example.test"))

			Expect(env.Sessions.Destroy(ctx, user.ID)).To(Succeed())
			Expect(env.Sessions.Resolve(ctx, token)).To(BeNil())
		})

		It("invalidates the previous token on rotation", func() {
			first, err := env.Sessions.CreateSession(ctx, "alice@example.test")
			Expect(err).NotTo(HaveOccurred())
			second, err := env.Sessions.CreateSession(ctx, "alice@example.test")
			Expect(err).NotTo(HaveOccurred())

			Expect(env.Sessions.Resolve(ctx, first)).To(BeNil())
			Expect(env.Sessions.Resolve(ctx, second)).NotTo(BeNil())
		})

		It("returns an empty token for an unknown email", func() {
			token, err := env.Sessions.CreateSession(ctx, "ghost@example.test")
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(BeEmpty())
		})
	})

	Describe("Password reset", func() {
		BeforeEach(func() {
			_, err := env.Sessions.Register(ctx, "alice@example.test", "wonderland")
			Expect(err).NotTo(HaveOccurred())
		})

		It("redeems a token exactly once", func() {
			token, err := env.Resets.Issue(ctx, "alice@example.test")
			Expect(err).NotTo(HaveOccurred())

			Expect(env.Resets.Redeem(ctx, token, "looking-glass")).To(Succeed())
			Expect(env.Sessions.Login(ctx, "alice@example.test", "looking-glass")).To(BeTrue())
			Expect(env.Sessions.Login(ctx, "alice@example.test", "wonderland")).To(BeFalse())

			err = env.Resets.Redeem(ctx, token, "third-password")
			Expect(err).To(MatchError(auth.ErrNotFound))
		})

		It("replaces a pending token when issued again", func() {
			first, err := env.Resets.Issue(ctx, "alice@example.test")
			Expect(err).NotTo(HaveOccurred())
			second, err := env.Resets.Issue(ctx, "alice@example.test")
			Expect(err).NotTo(HaveOccurred())

			Expect(env.Resets.Redeem(ctx, first, "nope")).To(MatchError(auth.ErrNotFound))
			Expect(env.Resets.Redeem(ctx, second, "looking-glass")).To(Succeed())
		})

		It("fails loudly for an unknown email", func() {
			_, err := env.Resets.Issue(ctx, "ghost@example.test")
			Expect(err).To(MatchError(auth.ErrNotFound))
		})
	})
})
