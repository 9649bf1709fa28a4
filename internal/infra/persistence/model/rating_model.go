package model

import (
	"time"

	"github.com/google/uuid"
)

// RatingModel is the GORM-specific struct for the 'ratings' table.
type RatingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RaterID     uuid.UUID `gorm:"type:uuid;not null"`
	ClaimID     uuid.UUID `gorm:"type:uuid;not null"`
	EventCodeID uuid.UUID `gorm:"type:uuid;not null"`
	Score       int       `gorm:"type:smallint;not null"`
	Comment     *string   `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}

// RatingStatsRow is the scan target for rating aggregates.
type RatingStatsRow struct {
	RatingCount int64
	ScoreSum    int64
}
