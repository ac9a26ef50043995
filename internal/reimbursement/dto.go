package reimbursement

import (
	"time"

	"github.com/ddjproj/reimbursement-tracking/internal/core/domain"
)

// CreateDTO carries a new reimbursement request.
type CreateDTO struct {
	Description string `json:"description"`
	Type        string `json:"type"`
}

// UpdateDTO carries content edits to a pending request. Only the owner may
// apply them while the request is PENDING.
type UpdateDTO struct {
	Description string `json:"description"`
	Type        string `json:"type"`
}

// ResolveDTO carries a manager's decision.
type ResolveDTO struct {
	Status string `json:"status"`
}

// ReimbursementResponse is the API shape of a reimbursement request.
type ReimbursementResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toResponse(r *domain.Reimbursement) *ReimbursementResponse {
	return &ReimbursementResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Description: r.Description,
		Type:        string(r.Type),
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toResponses(rs []*domain.Reimbursement) []*ReimbursementResponse {
	out := make([]*ReimbursementResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, toResponse(r))
	}
	return out
}
