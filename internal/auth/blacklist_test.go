package auth

import (
	"context"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
)

var _ = ginkgo.Describe("MemoryBlacklist", func() {
	var (
		blacklist *MemoryBlacklist
		ctx       context.Context
	)

	ginkgo.BeforeEach(func() {
		blacklist = NewMemoryBlacklist(0)
		ctx = context.Background()
	})

	ginkgo.It("should report a revoked token until its expiry", func() {
		err := blacklist.Revoke(ctx, "tok", time.Now().Add(time.Hour))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		revoked, err := blacklist.IsRevoked(ctx, "tok")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(revoked).To(gomega.BeTrue())
	})

	ginkgo.It("should not report unknown tokens", func() {
		revoked, err := blacklist.IsRevoked(ctx, "unknown")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(revoked).To(gomega.BeFalse())
	})

	ginkgo.It("should treat an expired entry as not revoked", func() {
		err := blacklist.Revoke(ctx, "tok", time.Now().Add(-time.Minute))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		revoked, err := blacklist.IsRevoked(ctx, "tok")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(revoked).To(gomega.BeFalse())
	})

	ginkgo.It("should be idempotent", func() {
		expiresAt := time.Now().Add(time.Hour)
		gomega.Expect(blacklist.Revoke(ctx, "tok", expiresAt)).To(gomega.Succeed())
		gomega.Expect(blacklist.Revoke(ctx, "tok", expiresAt)).To(gomega.Succeed())

		revoked, err := blacklist.IsRevoked(ctx, "tok")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(revoked).To(gomega.BeTrue())
	})

	ginkgo.It("should sweep expired entries", func() {
		swept := NewMemoryBlacklist(10 * time.Millisecond)
		defer swept.Stop()

		gomega.Expect(swept.Revoke(ctx, "tok", time.Now().Add(20*time.Millisecond))).To(gomega.Succeed())

		gomega.Eventually(func() int {
			swept.mu.RLock()
			defer swept.mu.RUnlock()
			return len(swept.revoked)
		}).Should(gomega.BeZero())
	})
})

var _ = ginkgo.Describe("RedisBlacklist", func() {
	var (
		server    *miniredis.Miniredis
		client    *redis.Client
		blacklist *RedisBlacklist
		ctx       context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		server, err = miniredis.Run()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		client = redis.NewClient(&redis.Options{Addr: server.Addr()})
		blacklist = NewRedisBlacklist(client)
		ctx = context.Background()
	})

	ginkgo.AfterEach(func() {
		client.Close()
		server.Close()
	})

	ginkgo.It("should report a revoked token", func() {
		err := blacklist.Revoke(ctx, "tok", time.Now().Add(time.Hour))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		revoked, err := blacklist.IsRevoked(ctx, "tok")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(revoked).To(gomega.BeTrue())
	})

	ginkgo.It("should let entries expire with the token", func() {
		err := blacklist.Revoke(ctx, "tok", time.Now().Add(time.Minute))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		server.FastForward(2 * time.Minute)

		revoked, err := blacklist.IsRevoked(ctx, "tok")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(revoked).To(gomega.BeFalse())
	})

	ginkgo.It("should skip storing already expired tokens", func() {
		err := blacklist.Revoke(ctx, "tok", time.Now().Add(-time.Minute))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		revoked, err := blacklist.IsRevoked(ctx, "tok")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(revoked).To(gomega.BeFalse())
	})
})
