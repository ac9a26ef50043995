package domain

import "fmt"

// Role is a named, fixed bundle of permissions. The bundles are defined once
// at package load and never mutated at runtime; resource-scoped rules in the
// evaluator may narrow, but never widen, what a role can do.
type Role string

const (
	RoleGuest      Role = "GUEST"
	RoleRestricted Role = "RESTRICTED"
	RoleEmployee   Role = "EMPLOYEE"
	RoleManager    Role = "MANAGER"
)

var rolePermissions = map[Role][]Permission{
	RoleGuest: {
		PermCreateAccount,
		PermLogin,
	},
	RoleRestricted: {
		PermRequestEmployeeAccount,
		PermLogout,
	},
	RoleEmployee: {
		PermCreateReimbursementRequest,
		PermViewSubmittedReimbursements,
		PermViewSingleReimbursementRequest,
		PermEditPendingReimbursement,
		PermLogout,
	},
	RoleManager: {
		PermViewSubmittedReimbursements,
		PermViewAllReimbursementRequests,
		PermViewSingleReimbursementRequest,
		PermViewAllUserAccounts,
		PermEditUserRole,
		PermUpgradeAccountRole,
		PermDeleteUser,
		PermLogout,
	},
}

// Permissions returns a copy of the role's permission bundle. Callers may
// mutate the returned slice without affecting the catalog.
func (r Role) Permissions() []Permission {
	perms := rolePermissions[r]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reports whether the permission is in the role's bundle.
func (r Role) HasPermission(p Permission) bool {
	for _, held := range rolePermissions[r] {
		if held == p {
			return true
		}
	}
	return false
}

// PermissionNames returns the role's permission names as plain strings, the
// shape sent to clients in auth responses.
func (r Role) PermissionNames() []string {
	perms := rolePermissions[r]
	names := make([]string, len(perms))
	for i, p := range perms {
		names[i] = string(p)
	}
	return names
}

func (r Role) String() string {
	return string(r)
}

// ParseRole converts a stored or client-provided role name to a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleGuest, RoleRestricted, RoleEmployee, RoleManager:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}
