package domain

// Permission is an atomic capability tag. The set is fixed at build time and
// permission names are transmitted to clients verbatim, case-sensitive.
type Permission string

const (
	// Guest level
	PermCreateAccount Permission = "CREATE_ACCOUNT"
	PermLogin         Permission = "LOGIN"

	// Restricted level
	PermRequestEmployeeAccount Permission = "REQUEST_EMPLOYEE_ACCOUNT"
	PermLogout                 Permission = "LOGOUT"

	// Employee level
	PermCreateReimbursementRequest     Permission = "CREATE_REIMBURSEMENT_REQUEST"
	PermViewSubmittedReimbursements    Permission = "VIEW_SUBMITTED_REIMBURSEMENT_REQUESTS"
	PermViewSingleReimbursementRequest Permission = "VIEW_SINGLE_REIMBURSEMENT_REQUEST"
	PermEditPendingReimbursement       Permission = "EDIT_PENDING_REIMBURSEMENT"

	// Manager level
	PermViewAllReimbursementRequests Permission = "VIEW_ALL_REIMBURSEMENT_REQUESTS"
	PermViewAllUserAccounts          Permission = "VIEW_ALL_USERACCOUNTS"
	PermEditUserRole                 Permission = "EDIT_USER_ROLE"
	PermUpgradeAccountRole           Permission = "UPGRADE_ACCOUNT_ROLE"
	PermDeleteUser                   Permission = "DELETE_USER"
)

// permissionDescriptions documents what each permission allows. Descriptions
// are informational only and have no effect on evaluation.
var permissionDescriptions = map[Permission]string{
	PermCreateAccount:                  "Creates a new account with the default restricted role and permissions.",
	PermLogin:                          "Authenticates against an existing account.",
	PermRequestEmployeeAccount:         "Requests an upgrade from the restricted role to the employee role.",
	PermLogout:                         "Ends the current session and revokes its token.",
	PermCreateReimbursementRequest:     "Submits a new reimbursement request.",
	PermViewSubmittedReimbursements:    "Lists reimbursement requests submitted by the caller.",
	PermViewSingleReimbursementRequest: "Views a single reimbursement request.",
	PermEditPendingReimbursement:       "Edits an owned reimbursement request while it is still pending.",
	PermViewAllReimbursementRequests:   "Lists reimbursement requests across all accounts.",
	PermViewAllUserAccounts:            "Lists every user account in the system.",
	PermEditUserRole:                   "Edits the role of a user account.",
	PermUpgradeAccountRole:             "Upgrades a restricted account to an employee account.",
	PermDeleteUser:                     "Removes a user account from the system.",
}

// Description returns the human-readable description of the permission.
func (p Permission) Description() string {
	return permissionDescriptions[p]
}

func (p Permission) String() string {
	return string(p)
}

// AllPermissions returns every permission known to the catalog.
func AllPermissions() []Permission {
	perms := make([]Permission, 0, len(permissionDescriptions))
	for p := range permissionDescriptions {
		perms = append(perms, p)
	}
	return perms
}
