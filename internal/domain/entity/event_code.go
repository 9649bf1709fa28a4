package entity

import (
	"time"

	"ledger/internal/domain/lifecycle"

	"github.com/google/uuid"
)

// EventCodeStatus is the redemption state of an event code.
type EventCodeStatus string

const (
	EventCodeActive     EventCodeStatus = "active"
	EventCodeSuperseded EventCodeStatus = "superseded"
	EventCodeExpired    EventCodeStatus = "expired"
)

// EventCode is a short-lived, single-use verification code bound to one
// location claim.
type EventCode struct {
	ID       uuid.UUID `json:"id"`
	ClaimID  uuid.UUID `json:"claim_id"`
	Code     string    `json:"code"`
	IssuedAt time.Time `json:"issued_at"`
	// ExpiresAt is checked at redemption; expired codes are not swept.
	ExpiresAt time.Time `json:"expires_at"`
	lifecycle.State
}

// Status derives the state at the given instant. Deactivation wins over
// expiry.
func (c *EventCode) Status(now time.Time) EventCodeStatus {
	switch {
	case !c.Active():
		return EventCodeSuperseded
	case !now.Before(c.ExpiresAt):
		return EventCodeExpired
	default:
		return EventCodeActive
	}
}

// Redeemable reports whether a rating may be submitted with the code now.
// An active flag past expiry counts as inactive.
func (c *EventCode) Redeemable(now time.Time) bool {
	return c.Status(now) == EventCodeActive
}
