package account

import (
	"time"

	"github.com/ddjproj/reimbursement-tracking/internal/core/domain"
)

// AccountResponse is the API shape of a user account. The password hash
// never leaves the service layer.
type AccountResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toResponse(acct *domain.UserAccount) *AccountResponse {
	return &AccountResponse{
		ID:          acct.ID,
		Email:       acct.Email,
		Role:        string(acct.Role),
		Permissions: acct.Role.PermissionNames(),
		CreatedAt:   acct.CreatedAt,
		UpdatedAt:   acct.UpdatedAt,
	}
}

func toResponses(accts []*domain.UserAccount) []*AccountResponse {
	out := make([]*AccountResponse, 0, len(accts))
	for _, acct := range accts {
		out = append(out, toResponse(acct))
	}
	return out
}

// UpdateRoleDTO carries a role change request.
type UpdateRoleDTO struct {
	Role string `json:"role"`
}
