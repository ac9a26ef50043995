package domain

// ResourceKind discriminates the resource variants a permission check can be
// scoped against.
type ResourceKind string

const (
	ResourceKindReimbursement ResourceKind = "reimbursement"
	ResourceKindUserAccount   ResourceKind = "user_account"
)

// Resource is the tagged union of domain objects the permission evaluator
// understands. A nil Resource means the check is not scoped to any object.
type Resource interface {
	ResourceKind() ResourceKind
}
