package account

import (
	"context"

	"github.com/ddjproj/reimbursement-tracking/internal/core/domain"
)

// Repository is the full account persistence surface.
type Repository interface {
	FindAll(ctx context.Context) ([]*domain.UserAccount, error)
	FindByID(ctx context.Context, id int64) (*domain.UserAccount, error)
	FindByEmail(ctx context.Context, email string) (*domain.UserAccount, error)
	UpdateRole(ctx context.Context, id int64, role domain.Role) error
	Delete(ctx context.Context, id int64) error
}

// ServiceAPI is the account surface exposed to transport.
type ServiceAPI interface {
	GetAll(ctx context.Context) ([]*AccountResponse, error)
	GetByID(ctx context.Context, id int64) (*AccountResponse, error)
	Me(ctx context.Context) (*AccountResponse, error)
	UpdateRole(ctx context.Context, id int64, dto UpdateRoleDTO) (*AccountResponse, error)
	ProcessUpgrade(ctx context.Context, id int64) (*AccountResponse, error)
	Delete(ctx context.Context, id int64) error
}
