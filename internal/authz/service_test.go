package authz

import (
	"context"
	"io"
	"log/slog"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/ddjproj/reimbursement-tracking/internal"
	"github.com/ddjproj/reimbursement-tracking/internal/core/domain"
)

type stubDirectory struct {
	accounts map[string]*domain.UserAccount
}

func (d *stubDirectory) FindByEmail(ctx context.Context, email string) (*domain.UserAccount, error) {
	if acct, ok := d.accounts[email]; ok {
		return acct, nil
	}
	return nil, internal.ErrUserNotFound
}

var _ = ginkgo.Describe("Service", func() {
	var (
		service  *Service
		employee *domain.UserAccount
	)

	ginkgo.BeforeEach(func() {
		employee = &domain.UserAccount{ID: 2, Email: "employee@example.com", Role: domain.RoleEmployee}
		directory := &stubDirectory{accounts: map[string]*domain.UserAccount{
			employee.Email: employee,
		}}
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		service = NewService(directory, NewEvaluator(), logger)
	})

	ginkgo.Describe("CurrentUser", func() {
		ginkgo.It("should return the account for the context principal", func() {
			ctx := internal.ContextWithPrincipal(context.Background(), employee.Email)

			acct, err := service.CurrentUser(ctx)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(acct.ID).To(gomega.Equal(employee.ID))
		})

		ginkgo.It("should fail when no principal is present", func() {
			_, err := service.CurrentUser(context.Background())
			gomega.Expect(err).To(gomega.MatchError(internal.ErrUnauthenticated))
		})

		ginkgo.It("should fail when the principal no longer exists", func() {
			ctx := internal.ContextWithPrincipal(context.Background(), "gone@example.com")

			_, err := service.CurrentUser(ctx)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrUnauthenticated))
		})
	})

	ginkgo.Describe("RequirePermission", func() {
		ginkgo.It("should pass when the evaluator allows", func() {
			ctx := internal.ContextWithPrincipal(context.Background(), employee.Email)

			err := service.RequirePermission(ctx, domain.PermCreateReimbursementRequest, nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("should deny permissions outside the role bundle", func() {
			ctx := internal.ContextWithPrincipal(context.Background(), employee.Email)

			err := service.RequirePermission(ctx, domain.PermDeleteUser, nil)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrPermissionDenied))
		})

		ginkgo.It("should deny resource-scoped access to another user's reimbursement", func() {
			ctx := internal.ContextWithPrincipal(context.Background(), employee.Email)
			other := &domain.Reimbursement{ID: 10, UserID: 99, Status: domain.ReimbursementPending}

			err := service.RequirePermission(ctx, domain.PermViewSingleReimbursementRequest, other)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrPermissionDenied))
		})

		ginkgo.It("should propagate the unauthenticated error", func() {
			err := service.RequirePermission(context.Background(), domain.PermLogin, nil)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrUnauthenticated))
		})
	})
})
