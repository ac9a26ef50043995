package account

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/ddjproj/reimbursement-tracking/internal"
	"github.com/ddjproj/reimbursement-tracking/internal/authz"
	"github.com/ddjproj/reimbursement-tracking/internal/core/domain"
	"github.com/ddjproj/reimbursement-tracking/internal/core/events"
)

func TestAccount(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Account Suite")
}

type fakeRepo struct {
	byID map[int64]*domain.UserAccount
}

func newFakeRepo(accts ...*domain.UserAccount) *fakeRepo {
	r := &fakeRepo{byID: make(map[int64]*domain.UserAccount)}
	for _, a := range accts {
		r.byID[a.ID] = a
	}
	return r
}

func (r *fakeRepo) FindAll(_ context.Context) ([]*domain.UserAccount, error) {
	out := make([]*domain.UserAccount, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeRepo) FindByID(_ context.Context, id int64) (*domain.UserAccount, error) {
	if a, ok := r.byID[id]; ok {
		return a, nil
	}
	return nil, internal.ErrUserNotFound
}

func (r *fakeRepo) FindByEmail(_ context.Context, email string) (*domain.UserAccount, error) {
	for _, a := range r.byID {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, internal.ErrUserNotFound
}

func (r *fakeRepo) UpdateRole(_ context.Context, id int64, role domain.Role) error {
	a, ok := r.byID[id]
	if !ok {
		return internal.ErrUserNotFound
	}
	a.Role = role
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return internal.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

var _ = ginkgo.Describe("Service", func() {
	var (
		repo       *fakeRepo
		service    *Service
		bus        *events.EventBus
		manager    *domain.UserAccount
		employee   *domain.UserAccount
		restricted *domain.UserAccount
	)

	asUser := func(acct *domain.UserAccount) context.Context {
		return internal.ContextWithPrincipal(context.Background(), acct.Email)
	}

	ginkgo.BeforeEach(func() {
		manager = &domain.UserAccount{ID: 1, Email: "manager@example.com", Role: domain.RoleManager}
		employee = &domain.UserAccount{ID: 2, Email: "employee@example.com", Role: domain.RoleEmployee}
		restricted = &domain.UserAccount{ID: 3, Email: "restricted@example.com", Role: domain.RoleRestricted}
		repo = newFakeRepo(manager, employee, restricted)

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		permSvc := authz.NewService(repo, authz.NewEvaluator(), logger)
		bus = events.NewEventBus(logger)
		service = NewService(repo, permSvc, bus, logger)
	})

	ginkgo.Describe("GetAll", func() {
		ginkgo.It("should list accounts for a manager", func() {
			accts, err := service.GetAll(asUser(manager))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(accts).To(gomega.HaveLen(3))
		})

		ginkgo.It("should deny an employee", func() {
			_, err := service.GetAll(asUser(employee))
			gomega.Expect(err).To(gomega.MatchError(internal.ErrPermissionDenied))
		})

		ginkgo.It("should deny an anonymous caller", func() {
			_, err := service.GetAll(context.Background())
			gomega.Expect(err).To(gomega.MatchError(internal.ErrUnauthenticated))
		})
	})

	ginkgo.Describe("Me", func() {
		ginkgo.It("should return the caller's own account", func() {
			me, err := service.Me(asUser(employee))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(me.ID).To(gomega.Equal(employee.ID))
			gomega.Expect(me.Permissions).To(gomega.ContainElement("CREATE_REIMBURSEMENT_REQUEST"))
		})
	})

	ginkgo.Describe("UpdateRole", func() {
		ginkgo.It("should let a manager set any valid role", func() {
			acct, err := service.UpdateRole(asUser(manager), restricted.ID, UpdateRoleDTO{Role: "MANAGER"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(acct.Role).To(gomega.Equal("MANAGER"))
		})

		ginkgo.It("should reject an unknown role", func() {
			_, err := service.UpdateRole(asUser(manager), restricted.ID, UpdateRoleDTO{Role: "SUPERADMIN"})
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should deny an employee", func() {
			_, err := service.UpdateRole(asUser(employee), restricted.ID, UpdateRoleDTO{Role: "EMPLOYEE"})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrPermissionDenied))
		})
	})

	ginkgo.Describe("ProcessUpgrade", func() {
		ginkgo.It("should promote a restricted account to employee", func() {
			acct, err := service.ProcessUpgrade(asUser(manager), restricted.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(acct.Role).To(gomega.Equal("EMPLOYEE"))
		})

		ginkgo.It("should publish an upgrade event", func() {
			received := make(chan events.Event, 1)
			bus.Subscribe(events.EventTypeAccountUpgraded, func(_ context.Context, e events.Event) error {
				received <- e
				return nil
			})

			_, err := service.ProcessUpgrade(asUser(manager), restricted.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Eventually(received).Should(gomega.Receive())
		})

		ginkgo.It("should reject upgrading a non-restricted account", func() {
			_, err := service.ProcessUpgrade(asUser(manager), employee.ID)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidRoleChange))
		})

		ginkgo.It("should let a restricted user upgrade their own account", func() {
			acct, err := service.ProcessUpgrade(asUser(restricted), restricted.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(acct.Role).To(gomega.Equal("EMPLOYEE"))
		})

		ginkgo.It("should deny a restricted caller targeting another account", func() {
			_, err := service.ProcessUpgrade(asUser(restricted), employee.ID)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrPermissionDenied))
		})

		ginkgo.It("should deny an employee upgrading themselves", func() {
			_, err := service.ProcessUpgrade(asUser(employee), employee.ID)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrPermissionDenied))
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("should let a manager delete another account", func() {
			gomega.Expect(service.Delete(asUser(manager), employee.ID)).To(gomega.Succeed())

			_, err := repo.FindByID(context.Background(), employee.ID)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrUserNotFound))
		})

		ginkgo.It("should reject a manager deleting themselves", func() {
			err := service.Delete(asUser(manager), manager.ID)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrCannotDeleteSelf))
		})

		ginkgo.It("should deny an employee", func() {
			err := service.Delete(asUser(employee), restricted.ID)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrPermissionDenied))
		})

		ginkgo.It("should report a missing target", func() {
			err := service.Delete(asUser(manager), 999)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrUserNotFound))
		})
	})
})
