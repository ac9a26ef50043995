package authz

import (
	"context"
	"log/slog"

	"github.com/ddjproj/reimbursement-tracking/internal"
	"github.com/ddjproj/reimbursement-tracking/internal/core/domain"
)

// AccountDirectory resolves the current actor from the principal stored in
// the request context.
type AccountDirectory interface {
	FindByEmail(ctx context.Context, email string) (*domain.UserAccount, error)
}

// Service resolves the current actor and runs permission checks against the
// evaluator. It is the only entry point request handlers use to make
// allow/deny decisions.
type Service struct {
	accounts  AccountDirectory
	evaluator *Evaluator
	logger    *slog.Logger
}

func NewService(accounts AccountDirectory, evaluator *Evaluator, logger *slog.Logger) *Service {
	return &Service{
		accounts:  accounts,
		evaluator: evaluator,
		logger:    logger,
	}
}

// CurrentUser returns the authenticated actor, or an unauthenticated error
// when the request carries no valid principal.
func (s *Service) CurrentUser(ctx context.Context) (*domain.UserAccount, error) {
	email := internal.PrincipalFromContext(ctx)
	if email == "" {
		return nil, internal.ErrUnauthenticated
	}

	actor, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("principal present but account lookup failed", "email", email, "error", err)
		return nil, internal.ErrUnauthenticated
	}
	return actor, nil
}

// HasPermission evaluates the permission for the current actor.
func (s *Service) HasPermission(ctx context.Context, permission domain.Permission, resource domain.Resource) (bool, error) {
	actor, err := s.CurrentUser(ctx)
	if err != nil {
		return false, err
	}
	return s.evaluator.HasPermission(actor, permission, resource), nil
}

// RequirePermission fails with a forbidden error unless the current actor
// holds the permission for the given resource.
func (s *Service) RequirePermission(ctx context.Context, permission domain.Permission, resource domain.Resource) error {
	actor, err := s.CurrentUser(ctx)
	if err != nil {
		return err
	}

	if !s.evaluator.HasPermission(actor, permission, resource) {
		s.logger.Warn("permission denied",
			"actor_id", actor.ID,
			"role", actor.Role,
			"permission", permission)
		return internal.ErrPermissionDenied
	}
	return nil
}
