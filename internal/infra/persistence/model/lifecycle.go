// Package model holds the GORM table structs.
package model

import (
	"time"

	"ledger/internal/domain/lifecycle"
)

// Lifecycle is embedded by every table that soft-deletes.
type Lifecycle struct {
	IsActive      bool `gorm:"not null"`
	DeactivatedAt *time.Time
}

// ToState converts the columns into the domain lifecycle state.
func (l Lifecycle) ToState() lifecycle.State {
	return lifecycle.State{IsActive: l.IsActive, DeactivatedAt: l.DeactivatedAt}
}

// FromState converts a domain lifecycle state into columns.
func FromState(s lifecycle.State) Lifecycle {
	return Lifecycle{IsActive: s.IsActive, DeactivatedAt: s.DeactivatedAt}
}
