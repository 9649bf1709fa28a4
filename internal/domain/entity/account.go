package entity

import (
	"time"

	"ledger/internal/domain/lifecycle"

	"github.com/google/uuid"
)

// Account is a registered identity.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	lifecycle.State
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountSummary is an account with the number of claims it holds, for
// administration views.
type AccountSummary struct {
	*Account
	ActiveClaims int64 `json:"active_claims"`
	TotalClaims  int64 `json:"total_claims"`
}
