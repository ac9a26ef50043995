package account

import (
	"context"
	"log/slog"

	"github.com/ddjproj/reimbursement-tracking/internal"
	"github.com/ddjproj/reimbursement-tracking/internal/authz"
	"github.com/ddjproj/reimbursement-tracking/internal/core/domain"
	"github.com/ddjproj/reimbursement-tracking/internal/core/events"
)

// Service implements account administration. Every operation that needs an
// identity delegates its allow/deny decision to the permission service.
type Service struct {
	repo     Repository
	permSvc  *authz.Service
	eventBus *events.EventBus
	logger   *slog.Logger
}

func NewService(repo Repository, permSvc *authz.Service, eventBus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		permSvc:  permSvc,
		eventBus: eventBus,
		logger:   logger,
	}
}

// GetAll lists every account. Managers only.
func (s *Service) GetAll(ctx context.Context) ([]*AccountResponse, error) {
	if err := s.permSvc.RequirePermission(ctx, domain.PermViewAllUserAccounts, nil); err != nil {
		return nil, err
	}

	accts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, internal.NewInternalError("failed to list accounts", err)
	}
	return toResponses(accts), nil
}

// GetByID returns a single account. Managers only.
func (s *Service) GetByID(ctx context.Context, id int64) (*AccountResponse, error) {
	if err := s.permSvc.RequirePermission(ctx, domain.PermViewAllUserAccounts, nil); err != nil {
		return nil, err
	}

	acct, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(acct), nil
}

// Me returns the authenticated caller's own account.
func (s *Service) Me(ctx context.Context) (*AccountResponse, error) {
	actor, err := s.permSvc.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return toResponse(actor), nil
}

// UpdateRole sets an account's role to any valid value. Managers only.
func (s *Service) UpdateRole(ctx context.Context, id int64, dto UpdateRoleDTO) (*AccountResponse, error) {
	if err := s.permSvc.RequirePermission(ctx, domain.PermEditUserRole, nil); err != nil {
		return nil, err
	}

	role, err := domain.ParseRole(dto.Role)
	if err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	acct, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return nil, internal.NewInternalError("failed to update role", err)
	}

	s.logger.Info("role updated", "account_id", id, "from", acct.Role, "to", role)
	acct.Role = role
	return toResponse(acct), nil
}

// ProcessUpgrade promotes a RESTRICTED account to EMPLOYEE. Any other
// starting role is a validation error. A restricted user may request the
// upgrade for their own account; upgrading anyone else needs the
// administrative permission.
func (s *Service) ProcessUpgrade(ctx context.Context, id int64) (*AccountResponse, error) {
	actor, err := s.permSvc.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	required := domain.PermUpgradeAccountRole
	if actor.ID == id {
		required = domain.PermRequestEmployeeAccount
	}
	if err := s.permSvc.RequirePermission(ctx, required, nil); err != nil {
		return nil, err
	}

	acct, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if acct.Role != domain.RoleRestricted {
		return nil, internal.ErrInvalidRoleChange
	}

	if err := s.repo.UpdateRole(ctx, id, domain.RoleEmployee); err != nil {
		return nil, internal.NewInternalError("failed to upgrade account", err)
	}
	acct.Role = domain.RoleEmployee

	if err := s.eventBus.Publish(ctx, events.NewAccountUpgradedEvent(acct.ID, acct.Email, string(acct.Role))); err != nil {
		s.logger.Warn("failed to publish account upgraded event", "account_id", acct.ID, "error", err)
	}

	s.logger.Info("account upgraded", "account_id", acct.ID, "email", acct.Email)
	return toResponse(acct), nil
}

// Delete removes an account. The target account is passed to the evaluator
// as the resource; self-deletion is rejected here regardless of role, so
// even a manager cannot remove their own account.
func (s *Service) Delete(ctx context.Context, id int64) error {
	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.permSvc.RequirePermission(ctx, domain.PermDeleteUser, target); err != nil {
		return err
	}

	actor, err := s.permSvc.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if actor.ID == target.ID {
		return internal.ErrCannotDeleteSelf
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return internal.NewInternalError("failed to delete account", err)
	}

	s.logger.Info("account deleted", "account_id", id, "deleted_by", actor.ID)
	return nil
}
