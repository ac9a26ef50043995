package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ddjproj/reimbursement-tracking/internal"
	datamodel "github.com/ddjproj/reimbursement-tracking/internal/core/datamodel/account"
	"github.com/ddjproj/reimbursement-tracking/internal/core/domain"
)

// Repository is the account persistence surface used during registration,
// login, and principal resolution.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
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

func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&datamodel.UserAccount{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) Create(ctx context.Context, account *domain.UserAccount) error {
	row := &datamodel.UserAccount{
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Role:         string(account.Role),
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	account.ID = row.ID
	account.CreatedAt = row.CreatedAt
	account.UpdatedAt = row.UpdatedAt
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
