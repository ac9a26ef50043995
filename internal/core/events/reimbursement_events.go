package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeReimbursementSubmitted = "reimbursement.submitted"
	EventTypeReimbursementResolved  = "reimbursement.resolved"
	EventTypeAccountUpgraded        = "account.upgraded"
)

type ReimbursementSubmittedEvent struct {
	BaseEvent
	ReimbursementID int64  `json:"reimbursement_id"`
	UserID          int64  `json:"user_id"`
	Type            string `json:"type"`
}

func NewReimbursementSubmittedEvent(reimbursementID, userID int64, typ string) *ReimbursementSubmittedEvent {
	return &ReimbursementSubmittedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeReimbursementSubmitted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"reimbursement_id": reimbursementID,
				"user_id":          userID,
				"type":             typ,
			},
		},
		ReimbursementID: reimbursementID,
		UserID:          userID,
		Type:            typ,
	}
}

type ReimbursementResolvedEvent struct {
	BaseEvent
	ReimbursementID int64  `json:"reimbursement_id"`
	UserID          int64  `json:"user_id"`
	Status          string `json:"status"`
	ResolverEmail   string `json:"resolver_email"`
}

func NewReimbursementResolvedEvent(reimbursementID, userID int64, status, resolverEmail string) *ReimbursementResolvedEvent {
	return &ReimbursementResolvedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeReimbursementResolved,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"reimbursement_id": reimbursementID,
				"user_id":          userID,
				"status":           status,
				"resolver_email":   resolverEmail,
			},
		},
		ReimbursementID: reimbursementID,
		UserID:          userID,
		Status:          status,
		ResolverEmail:   resolverEmail,
	}
}

type AccountUpgradedEvent struct {
	BaseEvent
	AccountID int64  `json:"account_id"`
	Email     string `json:"email"`
	NewRole   string `json:"new_role"`
}

func NewAccountUpgradedEvent(accountID int64, email, newRole string) *AccountUpgradedEvent {
	return &AccountUpgradedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeAccountUpgraded,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"account_id": accountID,
				"email":      email,
				"new_role":   newRole,
			},
		},
		AccountID: accountID,
		Email:     email,
		NewRole:   newRole,
	}
}
