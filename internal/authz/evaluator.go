package authz

import (
	"github.com/ddjproj/reimbursement-tracking/internal/core/domain"
)

// Evaluator decides whether an actor may perform a permission-gated action,
// optionally scoped to a concrete resource. It holds no state and is safe
// for concurrent use.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// HasPermission reports whether the actor holds the permission, applying
// resource-scoped rules when a resource is given.
//
// Managers are allowed unconditionally, before any resource rule runs. That
// means the self-delete guard below never applies to a manager; see the
// account service, which rejects self-deletion independently of the
// evaluator.
func (e *Evaluator) HasPermission(actor *domain.UserAccount, permission domain.Permission, resource domain.Resource) bool {
	if actor == nil {
		return false
	}

	if actor.Role == domain.RoleManager {
		return true
	}

	if !actor.HasPermission(permission) {
		return false
	}

	if resource != nil {
		return e.evaluateResourcePermission(actor, permission, resource)
	}
	return true
}

func (e *Evaluator) evaluateResourcePermission(actor *domain.UserAccount, permission domain.Permission, resource domain.Resource) bool {
	switch resource.ResourceKind() {
	case domain.ResourceKindReimbursement:
		r, ok := resource.(*domain.Reimbursement)
		if !ok {
			return false
		}
		return e.evaluateReimbursement(actor, permission, r)

	case domain.ResourceKindUserAccount:
		target, ok := resource.(*domain.UserAccount)
		if !ok {
			return false
		}
		if permission == domain.PermDeleteUser {
			// cannot delete yourself
			return target.ID != actor.ID
		}
	}

	// base permission already confirmed sufficient
	return true
}

func (e *Evaluator) evaluateReimbursement(actor *domain.UserAccount, permission domain.Permission, r *domain.Reimbursement) bool {
	switch permission {
	case domain.PermViewAllReimbursementRequests, domain.PermViewSingleReimbursementRequest:
		// employees only see their own
		if actor.Role == domain.RoleEmployee {
			return r.UserID == actor.ID
		}

	case domain.PermViewSubmittedReimbursements:
		// always scoped to the owner
		return r.UserID == actor.ID

	case domain.PermEditPendingReimbursement:
		return r.UserID == actor.ID && r.Status == domain.ReimbursementPending
	}

	return true
}
