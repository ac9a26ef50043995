package auth

import "github.com/ddjproj/reimbursement-tracking/internal/core/domain"

// RegisterDTO is the transport shape used by the HTTP handler to accept
// registration requests.
type RegisterDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginDTO is the transport shape used by the HTTP handler to accept login
// requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

// Validate checks required fields and returns a ValidationError on failure.
func (d LoginDTO) Validate() error {
	if d.Email == "" {
		return ValidationError{Msg: "email is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}

// Validate for registration DTO. Password strength rules are enforced by
// the service, not here.
func (d RegisterDTO) Validate() error {
	if d.Email == "" {
		return ValidationError{Msg: "email is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}

// SessionResponse is the API shape returned after register or login.
type SessionResponse struct {
	Token       string   `json:"token"`
	UserID      int64    `json:"user_id"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// NewSessionResponse builds the session view for an account and its token.
func NewSessionResponse(account *domain.UserAccount, token string) *SessionResponse {
	return &SessionResponse{
		Token:       token,
		UserID:      account.ID,
		Email:       account.Email,
		Role:        string(account.Role),
		Permissions: account.Role.PermissionNames(),
	}
}
