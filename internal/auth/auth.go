package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ddjproj/reimbursement-tracking/internal/core/domain"
)

// Claims represents JWT token claims. The subject is the account email,
// which is the principal identifier everywhere downstream.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues and validates session tokens.
type TokenService interface {
	Generate(account *domain.UserAccount) (token string, err error)
	Validate(tokenString string) (*Claims, error)
	IsValid(tokenString string, account *domain.UserAccount) bool
}

// TokenBlacklist records revoked tokens until their natural expiry.
// Revoke is idempotent.
type TokenBlacklist interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// UserRepository is the account persistence surface auth needs.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.UserAccount, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, account *domain.UserAccount) error
}

// ServiceAPI is the auth surface exposed to transport.
type ServiceAPI interface {
	Register(ctx context.Context, dto RegisterDTO) (*SessionResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*SessionResponse, error)
	Logout(ctx context.Context, token string) error
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}
