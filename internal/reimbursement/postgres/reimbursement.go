package reimbursement

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ddjproj/reimbursement-tracking/internal"
	datamodel "github.com/ddjproj/reimbursement-tracking/internal/core/datamodel/reimbursement"
	"github.com/ddjproj/reimbursement-tracking/internal/core/domain"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, req *domain.Reimbursement) error {
	row := &datamodel.Reimbursement{
		UserID:      req.UserID,
		Description: req.Description,
		Type:        string(req.Type),
		Status:      string(req.Status),
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	req.ID = row.ID
	req.CreatedAt = row.CreatedAt
	req.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Reimbursement, error) {
	var row datamodel.Reimbursement
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrReimbursementNotFound
		}
		return nil, err
	}
	return toDomain(&row), nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int64, status *domain.ReimbursementStatus) ([]*domain.Reimbursement, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	return r.list(query, status)
}

func (r *Repository) FindAll(ctx context.Context, status *domain.ReimbursementStatus) ([]*domain.Reimbursement, error) {
	return r.list(r.db.WithContext(ctx), status)
}

func (r *Repository) Update(ctx context.Context, req *domain.Reimbursement) error {
	result := r.db.WithContext(ctx).Model(&datamodel.Reimbursement{}).Where("id = ?", req.ID).Updates(map[string]interface{}{
		"description": req.Description,
		"type":        string(req.Type),
		"status":      string(req.Status),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrReimbursementNotFound
	}
	return nil
}

func (r *Repository) list(query *gorm.DB, status *domain.ReimbursementStatus) ([]*domain.Reimbursement, error) {
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var rows []datamodel.Reimbursement
	if err := query.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	reqs := make([]*domain.Reimbursement, 0, len(rows))
	for i := range rows {
		reqs = append(reqs, toDomain(&rows[i]))
	}
	return reqs, nil
}

func toDomain(row *datamodel.Reimbursement) *domain.Reimbursement {
	return &domain.Reimbursement{
		ID:          row.ID,
		UserID:      row.UserID,
		Description: row.Description,
		Type:        domain.ReimbursementType(row.Type),
		Status:      domain.ReimbursementStatus(row.Status),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
