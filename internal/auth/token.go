package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ddjproj/reimbursement-tracking/internal"
	"github.com/ddjproj/reimbursement-tracking/internal/core/domain"
)

// JWTTokenService signs and verifies HS256 session tokens.
type JWTTokenService struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewJWTTokenService(secret string, tokenTTL time.Duration) *JWTTokenService {
	return &JWTTokenService{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Generate issues a token whose subject is the account email.
func (j *JWTTokenService) Generate(account *domain.UserAccount) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token string and returns its claims.
func (j *JWTTokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, internal.ErrInvalidToken
}

// IsValid reports whether the token verifies and belongs to the account.
func (j *JWTTokenService) IsValid(tokenString string, account *domain.UserAccount) bool {
	claims, err := j.Validate(tokenString)
	if err != nil {
		return false
	}
	return claims.Subject == account.Email
}
