package reimbursement

import "time"

// Reimbursement is the persistence shape of a reimbursement row.
type Reimbursement struct {
	ID          int64     `gorm:"primaryKey"`
	UserID      int64     `gorm:"column:user_id;not null;index"`
	Description string    `gorm:"column:description;not null"`
	Type        string    `gorm:"column:type;not null"`
	Status      string    `gorm:"column:status;not null;default:PENDING"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Reimbursement) TableName() string {
	return "reimbursements"
}
