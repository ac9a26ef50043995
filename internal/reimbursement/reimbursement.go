package reimbursement

import (
	"context"

	"github.com/ddjproj/reimbursement-tracking/internal/core/domain"
)

// Repository is the reimbursement persistence surface.
type Repository interface {
	Create(ctx context.Context, r *domain.Reimbursement) error
	FindByID(ctx context.Context, id int64) (*domain.Reimbursement, error)
	FindByUserID(ctx context.Context, userID int64, status *domain.ReimbursementStatus) ([]*domain.Reimbursement, error)
	FindAll(ctx context.Context, status *domain.ReimbursementStatus) ([]*domain.Reimbursement, error)
	Update(ctx context.Context, r *domain.Reimbursement) error
}

// ServiceAPI is the reimbursement surface exposed to transport.
type ServiceAPI interface {
	Create(ctx context.Context, dto CreateDTO) (*ReimbursementResponse, error)
	GetByID(ctx context.Context, id int64) (*ReimbursementResponse, error)
	GetMine(ctx context.Context, status string) ([]*ReimbursementResponse, error)
	GetAll(ctx context.Context, status string) ([]*ReimbursementResponse, error)
	Update(ctx context.Context, id int64, dto UpdateDTO) (*ReimbursementResponse, error)
	Resolve(ctx context.Context, id int64, dto ResolveDTO) (*ReimbursementResponse, error)
	Types() []string
}
