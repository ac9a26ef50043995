package domain

import (
	"fmt"
	"time"
)

// ReimbursementStatus is the lifecycle state of a reimbursement request.
type ReimbursementStatus string

const (
	ReimbursementPending  ReimbursementStatus = "PENDING"
	ReimbursementApproved ReimbursementStatus = "APPROVED"
	ReimbursementDenied   ReimbursementStatus = "DENIED"
)

// ParseReimbursementStatus converts a client-provided status name.
func ParseReimbursementStatus(s string) (ReimbursementStatus, error) {
	switch ReimbursementStatus(s) {
	case ReimbursementPending, ReimbursementApproved, ReimbursementDenied:
		return ReimbursementStatus(s), nil
	}
	return "", fmt.Errorf("unknown reimbursement status: %q", s)
}

// ReimbursementType categorizes what the request reimburses.
type ReimbursementType string

const (
	ReimbursementFood     ReimbursementType = "FOOD"
	ReimbursementAirline  ReimbursementType = "AIRLINE"
	ReimbursementGas      ReimbursementType = "GAS"
	ReimbursementHotel    ReimbursementType = "HOTEL"
	ReimbursementSupplies ReimbursementType = "SUPPLIES"
	ReimbursementOther    ReimbursementType = "OTHER"
)

// ReimbursementTypes lists every valid reimbursement type.
func ReimbursementTypes() []ReimbursementType {
	return []ReimbursementType{
		ReimbursementFood,
		ReimbursementAirline,
		ReimbursementGas,
		ReimbursementHotel,
		ReimbursementSupplies,
		ReimbursementOther,
	}
}

// ParseReimbursementType converts a client-provided type name.
func ParseReimbursementType(s string) (ReimbursementType, error) {
	for _, t := range ReimbursementTypes() {
		if ReimbursementType(s) == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown reimbursement type: %q", s)
}

// Reimbursement is an employee reimbursement request. Created PENDING; moves
// to APPROVED or DENIED only from PENDING, only through a manager resolve.
type Reimbursement struct {
	ID          int64               `json:"id"`
	UserID      int64               `json:"user_id"`
	Description string              `json:"description"`
	Type        ReimbursementType   `json:"type"`
	Status      ReimbursementStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// NewReimbursement creates a pending reimbursement owned by userID.
func NewReimbursement(userID int64, description string, typ ReimbursementType) *Reimbursement {
	return &Reimbursement{
		UserID:      userID,
		Description: description,
		Type:        typ,
		Status:      ReimbursementPending,
	}
}

// IsPending reports whether the request can still be edited or resolved.
func (r *Reimbursement) IsPending() bool {
	return r.Status == ReimbursementPending
}

func (r *Reimbursement) ResourceKind() ResourceKind {
	return ResourceKindReimbursement
}
