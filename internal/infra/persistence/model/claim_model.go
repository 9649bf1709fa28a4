package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationClaimModel is the GORM-specific struct for the 'location_claims' table.
// A partial unique index on lower(location) WHERE is_active backs the
// one-active-claim-per-location rule.
type LocationClaimModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index:idx_location_claims_owner"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Location      string    `gorm:"type:varchar(255);not null"`
	ContactNumber *string   `gorm:"type:varchar(64)"`
	Description   *string   `gorm:"type:text"`
	Lifecycle
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationClaimModel) TableName() string {
	return "location_claims"
}

// ClaimSummaryRow is the scan target for claim listings with rating stats.
type ClaimSummaryRow struct {
	LocationClaimModel
	OwnerName   string
	RatingCount int64
	ScoreSum    int64
}
