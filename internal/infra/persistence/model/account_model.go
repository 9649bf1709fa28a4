package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel is the GORM-specific struct for the 'accounts' table.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(320);not null"`
	PasswordHash string    `gorm:"type:text;not null"`
	Role         string    `gorm:"type:varchar(32);not null"`
	Lifecycle
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// AccountSummaryRow is the scan target for account listings with claim counts.
type AccountSummaryRow struct {
	AccountModel
	ActiveClaims int64
	TotalClaims  int64
}
