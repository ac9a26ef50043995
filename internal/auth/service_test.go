package auth

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/ddjproj/reimbursement-tracking/internal"
	"github.com/ddjproj/reimbursement-tracking/internal/core/domain"
)

type fakeUserRepo struct {
	accounts map[string]*domain.UserAccount
	nextID   int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{accounts: make(map[string]*domain.UserAccount), nextID: 1}
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.UserAccount, error) {
	if acct, ok := r.accounts[email]; ok {
		return acct, nil
	}
	return nil, internal.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.accounts[email]
	return ok, nil
}

func (r *fakeUserRepo) Create(_ context.Context, account *domain.UserAccount) error {
	account.ID = r.nextID
	r.nextID++
	r.accounts[account.Email] = account
	return nil
}

var _ = ginkgo.Describe("Service", func() {
	var (
		repo    *fakeUserRepo
		service *Service
		ctx     context.Context
	)

	ginkgo.BeforeEach(func() {
		repo = newFakeUserRepo()
		tokens := NewJWTTokenService(testSecret, time.Hour)
		blacklist := NewMemoryBlacklist(0)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		service = NewService(repo, tokens, blacklist, bcrypt.MinCost, time.Hour, logger)
		ctx = context.Background()
	})

	ginkgo.Describe("Register", func() {
		ginkgo.It("should create a restricted account and open a session", func() {
			session, err := service.Register(ctx, RegisterDTO{Email: "new@example.com", Password: "Str0ng!Pass"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(session.Token).NotTo(gomega.BeEmpty())
			gomega.Expect(session.Email).To(gomega.Equal("new@example.com"))
			gomega.Expect(session.Role).To(gomega.Equal("RESTRICTED"))
			gomega.Expect(session.Permissions).To(gomega.ConsistOf(
				"REQUEST_EMPLOYEE_ACCOUNT",
				"LOGOUT",
			))

			stored := repo.accounts["new@example.com"]
			gomega.Expect(stored).NotTo(gomega.BeNil())
			gomega.Expect(stored.PasswordHash).NotTo(gomega.Equal("Str0ng!Pass"))
		})

		ginkgo.It("should reject weak passwords", func() {
			_, err := service.Register(ctx, RegisterDTO{Email: "new@example.com", Password: "weakpass"})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrWeakPassword))
		})

		ginkgo.It("should reject an email already in use", func() {
			_, err := service.Register(ctx, RegisterDTO{Email: "new@example.com", Password: "Str0ng!Pass"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			_, err = service.Register(ctx, RegisterDTO{Email: "new@example.com", Password: "Str0ng!Pass"})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrEmailInUse))
		})

		ginkgo.It("should reject missing fields", func() {
			_, err := service.Register(ctx, RegisterDTO{Email: "", Password: "Str0ng!Pass"})
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("Login", func() {
		ginkgo.BeforeEach(func() {
			_, err := service.Register(ctx, RegisterDTO{Email: "user@example.com", Password: "Str0ng!Pass"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("should authenticate valid credentials", func() {
			session, err := service.Login(ctx, LoginDTO{Email: "user@example.com", Password: "Str0ng!Pass"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(session.Token).NotTo(gomega.BeEmpty())
			gomega.Expect(session.UserID).To(gomega.Equal(int64(1)))
		})

		ginkgo.It("should reject a wrong password", func() {
			_, err := service.Login(ctx, LoginDTO{Email: "user@example.com", Password: "Wr0ng!Pass"})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidCredentials))
		})

		ginkgo.It("should report unknown accounts", func() {
			_, err := service.Login(ctx, LoginDTO{Email: "nobody@example.com", Password: "Str0ng!Pass"})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrUserNotFound))
		})

		ginkgo.It("should reject empty credentials with a validation error", func() {
			_, err := service.Login(ctx, LoginDTO{})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeValidationFailed))
		})
	})

	ginkgo.Describe("Logout", func() {
		ginkgo.It("should revoke the session token", func() {
			session, err := service.Register(ctx, RegisterDTO{Email: "user@example.com", Password: "Str0ng!Pass"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			_, err = service.ValidateToken(ctx, session.Token)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(service.Logout(ctx, session.Token)).To(gomega.Succeed())

			_, err = service.ValidateToken(ctx, session.Token)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrTokenRevoked))
		})

		ginkgo.It("should succeed for garbage tokens", func() {
			gomega.Expect(service.Logout(ctx, "not.a.token")).To(gomega.Succeed())
		})

		ginkgo.It("should succeed for an empty token", func() {
			gomega.Expect(service.Logout(ctx, "")).To(gomega.Succeed())
		})
	})
})
