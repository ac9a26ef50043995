package auth

import (
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/ddjproj/reimbursement-tracking/internal"
	"github.com/ddjproj/reimbursement-tracking/internal/core/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Suite")
}

var _ = ginkgo.Describe("JWTTokenService", func() {
	var (
		tokens  *JWTTokenService
		account *domain.UserAccount
	)

	ginkgo.BeforeEach(func() {
		tokens = NewJWTTokenService(testSecret, time.Hour)
		account = &domain.UserAccount{ID: 1, Email: "user@example.com", Role: domain.RoleEmployee}
	})

	ginkgo.It("should issue a token whose subject is the account email", func() {
		token, err := tokens.Generate(account)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		claims, err := tokens.Validate(token)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(claims.Subject).To(gomega.Equal("user@example.com"))
		gomega.Expect(claims.ExpiresAt.Time).To(gomega.BeTemporally("~", time.Now().Add(time.Hour), time.Minute))
	})

	ginkgo.It("should reject an expired token", func() {
		expired := NewJWTTokenService(testSecret, -time.Minute)
		token, err := expired.Generate(account)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		_, err = tokens.Validate(token)
		gomega.Expect(err).To(gomega.MatchError(internal.ErrTokenExpired))
	})

	ginkgo.It("should reject a token signed with a different secret", func() {
		other := NewJWTTokenService("ffffffffffffffffffffffffffffffff", time.Hour)
		token, err := other.Generate(account)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		_, err = tokens.Validate(token)
		gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidToken))
	})

	ginkgo.It("should reject garbage", func() {
		_, err := tokens.Validate("not.a.token")
		gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidToken))
	})

	ginkgo.Describe("IsValid", func() {
		ginkgo.It("should accept the owning account only", func() {
			token, err := tokens.Generate(account)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			other := &domain.UserAccount{ID: 2, Email: "other@example.com", Role: domain.RoleEmployee}
			gomega.Expect(tokens.IsValid(token, account)).To(gomega.BeTrue())
			gomega.Expect(tokens.IsValid(token, other)).To(gomega.BeFalse())
		})
	})
})
