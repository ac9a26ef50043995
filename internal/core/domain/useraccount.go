package domain

import "time"

// UserAccount is a stored identity: unique email, password hash and exactly
// one role. Effective permissions are always derived from the role, never
// stored per account.
type UserAccount struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUserAccount creates an account with the default RESTRICTED role.
func NewUserAccount(email, passwordHash string) *UserAccount {
	return &UserAccount{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleRestricted,
	}
}

// Permissions returns the account's effective permission set, derived from
// its role.
func (u *UserAccount) Permissions() []Permission {
	return u.Role.Permissions()
}

// HasPermission reports whether the account's role grants the permission.
func (u *UserAccount) HasPermission(p Permission) bool {
	return u.Role.HasPermission(p)
}

func (u *UserAccount) ResourceKind() ResourceKind {
	return ResourceKindUserAccount
}
