package reimbursement

import (
	"context"
	"log/slog"

	"github.com/ddjproj/reimbursement-tracking/internal"
	"github.com/ddjproj/reimbursement-tracking/internal/authz"
	"github.com/ddjproj/reimbursement-tracking/internal/core/common/validation"
	"github.com/ddjproj/reimbursement-tracking/internal/core/domain"
	"github.com/ddjproj/reimbursement-tracking/internal/core/events"
)

// Service implements the reimbursement workflow. Every operation asks the
// permission service first, passing the stored request as the evaluator
// resource wherever ownership or status matters.
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

// Create submits a new PENDING reimbursement owned by the caller.
func (s *Service) Create(ctx context.Context, dto CreateDTO) (*ReimbursementResponse, error) {
	if err := s.permSvc.RequirePermission(ctx, domain.PermCreateReimbursementRequest, nil); err != nil {
		return nil, err
	}

	actor, err := s.permSvc.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateReimbursementDescription(dto.Description); err != nil {
		return nil, err
	}
	typ, err := domain.ParseReimbursementType(dto.Type)
	if err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	req := domain.NewReimbursement(actor.ID, dto.Description, typ)
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, internal.NewInternalError("failed to create reimbursement", err)
	}

	if err := s.eventBus.Publish(ctx, events.NewReimbursementSubmittedEvent(req.ID, req.UserID, string(req.Type))); err != nil {
		s.logger.Warn("failed to publish submitted event", "reimbursement_id", req.ID, "error", err)
	}

	s.logger.Info("reimbursement submitted", "reimbursement_id", req.ID, "user_id", req.UserID, "type", req.Type)
	return toResponse(req), nil
}

// GetByID returns one request. Employees only see their own; managers see
// everything.
func (s *Service) GetByID(ctx context.Context, id int64) (*ReimbursementResponse, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.permSvc.RequirePermission(ctx, domain.PermViewSingleReimbursementRequest, req); err != nil {
		return nil, err
	}
	return toResponse(req), nil
}

// GetMine lists the caller's own requests, optionally filtered by status.
func (s *Service) GetMine(ctx context.Context, status string) ([]*ReimbursementResponse, error) {
	if err := s.permSvc.RequirePermission(ctx, domain.PermViewSubmittedReimbursements, nil); err != nil {
		return nil, err
	}

	actor, err := s.permSvc.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	filter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	reqs, err := s.repo.FindByUserID(ctx, actor.ID, filter)
	if err != nil {
		return nil, internal.NewInternalError("failed to list reimbursements", err)
	}
	return toResponses(reqs), nil
}

// GetAll lists every request, optionally filtered by status. Managers only.
func (s *Service) GetAll(ctx context.Context, status string) ([]*ReimbursementResponse, error) {
	if err := s.permSvc.RequirePermission(ctx, domain.PermViewAllReimbursementRequests, nil); err != nil {
		return nil, err
	}

	filter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	reqs, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, internal.NewInternalError("failed to list reimbursements", err)
	}
	return toResponses(reqs), nil
}

// Update edits a request's content. The evaluator allows it only for the
// owner while the request is still PENDING.
func (s *Service) Update(ctx context.Context, id int64, dto UpdateDTO) (*ReimbursementResponse, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.permSvc.RequirePermission(ctx, domain.PermEditPendingReimbursement, req); err != nil {
		return nil, err
	}
	if !req.IsPending() {
		// Managers reach this through the role bypass; edits to resolved
		// requests stay rejected for them as well.
		return nil, internal.ErrCannotModifyReimbursement
	}

	if err := validation.ValidateReimbursementDescription(dto.Description); err != nil {
		return nil, err
	}
	typ, err := domain.ParseReimbursementType(dto.Type)
	if err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	req.Description = dto.Description
	req.Type = typ
	if err := s.repo.Update(ctx, req); err != nil {
		return nil, internal.NewInternalError("failed to update reimbursement", err)
	}
	return toResponse(req), nil
}

// Resolve moves a PENDING request to APPROVED or DENIED. Managers only.
func (s *Service) Resolve(ctx context.Context, id int64, dto ResolveDTO) (*ReimbursementResponse, error) {
	actor, err := s.permSvc.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleManager {
		return nil, internal.ErrPermissionDenied
	}

	status, err := domain.ParseReimbursementStatus(dto.Status)
	if err != nil || status == domain.ReimbursementPending {
		return nil, internal.NewValidationError("status must be APPROVED or DENIED", internal.ErrCodeValidationFailed)
	}

	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !req.IsPending() {
		return nil, internal.ErrCannotModifyReimbursement
	}

	req.Status = status
	if err := s.repo.Update(ctx, req); err != nil {
		return nil, internal.NewInternalError("failed to resolve reimbursement", err)
	}

	if err := s.eventBus.Publish(ctx, events.NewReimbursementResolvedEvent(req.ID, req.UserID, string(req.Status), actor.Email)); err != nil {
		s.logger.Warn("failed to publish resolved event", "reimbursement_id", req.ID, "error", err)
	}

	s.logger.Info("reimbursement resolved",
		"reimbursement_id", req.ID,
		"status", req.Status,
		"resolved_by", actor.Email)
	return toResponse(req), nil
}

// Types lists the valid reimbursement types. Public, no identity needed.
func (s *Service) Types() []string {
	types := domain.ReimbursementTypes()
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, string(t))
	}
	return out
}

func parseStatusFilter(status string) (*domain.ReimbursementStatus, error) {
	if status == "" {
		return nil, nil
	}
	parsed, err := domain.ParseReimbursementStatus(status)
	if err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}
	return &parsed, nil
}
