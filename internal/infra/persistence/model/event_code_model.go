package model

import (
	"time"

	"github.com/google/uuid"
)

// EventCodeModel is the GORM-specific struct for the 'event_codes' table.
type EventCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClaimID   uuid.UUID `gorm:"type:uuid;not null"`
	Code      string    `gorm:"type:varchar(16);not null"`
	IssuedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Lifecycle
}

// TableName explicitly sets the table name for GORM.
func (EventCodeModel) TableName() string {
	return "event_codes"
}
