package reimbursement_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ddjproj/reimbursement-tracking/internal"
	datamodel "github.com/ddjproj/reimbursement-tracking/internal/core/datamodel/reimbursement"
	"github.com/ddjproj/reimbursement-tracking/internal/core/domain"
	reimbursementPostgres "github.com/ddjproj/reimbursement-tracking/internal/reimbursement/postgres"
)

func TestReimbursementPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Reimbursement Postgres Suite")
}

var _ = Describe("Reimbursement Repository", func() {
	var (
		db   *gorm.DB
		repo *reimbursementPostgres.Repository
		ctx  context.Context
	)

	BeforeEach(func() {
		var err error
		// Use SQLite in-memory database for testing
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&datamodel.Reimbursement{})
		Expect(err).NotTo(HaveOccurred())

		repo = reimbursementPostgres.NewRepository(db)
		ctx = context.Background()
	})

	submit := func(userID int64) *domain.Reimbursement {
		req := domain.NewReimbursement(userID, "Team lunch with the new client", domain.ReimbursementFood)
		Expect(repo.Create(ctx, req)).To(Succeed())
		return req
	}

	Describe("Create", func() {
		It("should persist a pending request and backfill the id", func() {
			req := submit(7)
			Expect(req.ID).To(BeNumerically(">", 0))

			stored, err := repo.FindByID(ctx, req.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Status).To(Equal(domain.ReimbursementPending))
			Expect(stored.UserID).To(Equal(int64(7)))
		})
	})

	Describe("FindByID", func() {
		It("should report a missing request", func() {
			_, err := repo.FindByID(ctx, 999)
			Expect(err).To(MatchError(internal.ErrReimbursementNotFound))
		})
	})

	Describe("FindByUserID", func() {
		It("should scope to the owner", func() {
			submit(7)
			submit(8)

			reqs, err := repo.FindByUserID(ctx, 7, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(reqs).To(HaveLen(1))
			Expect(reqs[0].UserID).To(Equal(int64(7)))
		})

		It("should apply the status filter", func() {
			req := submit(7)
			req.Status = domain.ReimbursementApproved
			Expect(repo.Update(ctx, req)).To(Succeed())
			submit(7)

			pending := domain.ReimbursementPending
			reqs, err := repo.FindByUserID(ctx, 7, &pending)
			Expect(err).NotTo(HaveOccurred())
			Expect(reqs).To(HaveLen(1))
			Expect(reqs[0].Status).To(Equal(domain.ReimbursementPending))
		})
	})

	Describe("FindAll", func() {
		It("should list every request", func() {
			submit(7)
			submit(8)

			reqs, err := repo.FindAll(ctx, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(reqs).To(HaveLen(2))
		})
	})

	Describe("Update", func() {
		It("should persist content and status changes", func() {
			req := submit(7)
			req.Description = "Hotel for the quarterly offsite"
			req.Type = domain.ReimbursementHotel
			req.Status = domain.ReimbursementDenied

			Expect(repo.Update(ctx, req)).To(Succeed())

			stored, err := repo.FindByID(ctx, req.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Description).To(Equal("Hotel for the quarterly offsite"))
			Expect(stored.Type).To(Equal(domain.ReimbursementHotel))
			Expect(stored.Status).To(Equal(domain.ReimbursementDenied))
		})

		It("should report a missing request", func() {
			req := &domain.Reimbursement{ID: 999, Description: "x", Type: domain.ReimbursementFood, Status: domain.ReimbursementPending}
			Expect(repo.Update(ctx, req)).To(MatchError(internal.ErrReimbursementNotFound))
		})
	})
})
