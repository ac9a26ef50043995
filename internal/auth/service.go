package auth

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ddjproj/reimbursement-tracking/internal"
	"github.com/ddjproj/reimbursement-tracking/internal/core/common/validation"
	"github.com/ddjproj/reimbursement-tracking/internal/core/domain"
)

// Service is the main auth service with dependencies
type Service struct {
	userRepo   UserRepository
	tokens     TokenService
	blacklist  TokenBlacklist
	bcryptCost int
	tokenTTL   time.Duration
	logger     *slog.Logger
}

// NewService creates a new auth service
func NewService(userRepo UserRepository, tokens TokenService, blacklist TokenBlacklist, bcryptCost int, tokenTTL time.Duration, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:   userRepo,
		tokens:     tokens,
		blacklist:  blacklist,
		bcryptCost: bcryptCost,
		tokenTTL:   tokenTTL,
		logger:     logger,
	}
}

// Register creates a new RESTRICTED account and opens a session for it.
func (s *Service) Register(ctx context.Context, dto RegisterDTO) (*SessionResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}
	if err := validation.ValidateEmail(dto.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(dto.Password); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, dto.Email)
	if err != nil {
		return nil, internal.NewInternalError("failed to check email availability", err)
	}
	if exists {
		return nil, internal.ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	account := domain.NewUserAccount(dto.Email, string(hash))
	if err := s.userRepo.Create(ctx, account); err != nil {
		return nil, internal.NewInternalError("failed to create account", err)
	}

	token, err := s.tokens.Generate(account)
	if err != nil {
		return nil, internal.NewInternalError("failed to issue session token", err)
	}

	s.logger.Info("account registered", "user_id", account.ID, "email", account.Email)
	return NewSessionResponse(account, token), nil
}

// Login authenticates credentials and opens a session.
func (s *Service) Login(ctx context.Context, dto LoginDTO) (*SessionResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	account, err := s.userRepo.FindByEmail(ctx, dto.Email)
	if err != nil {
		return nil, internal.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(account)
	if err != nil {
		return nil, internal.NewInternalError("failed to issue session token", err)
	}

	s.logger.Info("login", "user_id", account.ID, "email", account.Email)
	return NewSessionResponse(account, token), nil
}

// Logout revokes the presented token. It succeeds even for tokens that are
// already invalid or expired, so clients can always clear their session.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	if claims, err := s.tokens.Validate(token); err == nil && claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err := s.blacklist.Revoke(ctx, token, expiresAt); err != nil {
		return internal.NewInternalError("failed to revoke token", err)
	}
	return nil
}

// ValidateToken checks the blacklist before signature verification, so a
// revoked token stays rejected even while its signature is still good.
func (s *Service) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	revoked, err := s.blacklist.IsRevoked(ctx, token)
	if err != nil {
		s.logger.Warn("blacklist lookup failed", "error", err)
		return nil, internal.ErrInvalidToken
	}
	if revoked {
		return nil, internal.ErrTokenRevoked
	}
	return s.tokens.Validate(token)
}
