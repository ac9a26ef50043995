package account

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ddjproj/reimbursement-tracking/internal"
	datamodel "github.com/ddjproj/reimbursement-tracking/internal/core/datamodel/account"
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

func (r *Repository) FindAll(ctx context.Context) ([]*domain.UserAccount, error) {
	var rows []datamodel.UserAccount
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	accts := make([]*domain.UserAccount, 0, len(rows))
	for i := range rows {
		accts = append(accts, toDomain(&rows[i]))
	}
	return accts, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.UserAccount, error) {
	var row datamodel.UserAccount
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return toDomain(&row), nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.UserAccount, error) {
	var row datamodel.UserAccount
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return toDomain(&row), nil
}

func (r *Repository) UpdateRole(ctx context.Context, id int64, role domain.Role) error {
	result := r.db.WithContext(ctx).Model(&datamodel.UserAccount{}).Where("id = ?", id).Update("role", string(role))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrUserNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&datamodel.UserAccount{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrUserNotFound
	}
	return nil
}

func toDomain(row *datamodel.UserAccount) *domain.UserAccount {
	return &domain.UserAccount{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         domain.Role(row.Role),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
