package entity

import (
	"strings"
	"time"

	"ledger/internal/domain/lifecycle"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LocationClaim is one organization's exclusive hold over a location string.
// At most one active claim exists per location.
type LocationClaim struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Name          string    `json:"name"`     // display name of the claiming organization
	Location      string    `json:"location"` // unique among active claims, case-insensitive
	ContactNumber *string   `json:"contact_number,omitempty"`
	Description   *string   `json:"description,omitempty"`
	lifecycle.State
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeLocation trims the location and collapses inner whitespace.
// Case is preserved for display; comparisons are case-insensitive.
func NormalizeLocation(location string) string {
	return strings.Join(strings.Fields(location), " ")
}

// LocationKey is the comparison key for a location string.
func LocationKey(location string) string {
	return strings.ToLower(NormalizeLocation(location))
}

// RatingStats aggregates the ratings of a claim.
type RatingStats struct {
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}

// NewRatingStats computes the mean score rounded to one decimal.
func NewRatingStats(count, scoreSum int64) RatingStats {
	if count == 0 {
		return RatingStats{}
	}

	avg := decimal.NewFromInt(scoreSum).
		DivRound(decimal.NewFromInt(count), 4).
		Round(1)

	return RatingStats{Count: count, Average: avg.InexactFloat64()}
}

// ClaimSummary is a claim joined with its rating statistics.
type ClaimSummary struct {
	*LocationClaim
	OwnerName string      `json:"owner_name,omitempty"`
	Ratings   RatingStats `json:"ratings"`
}

// ClaimFilter narrows ListActiveClaims.
type ClaimFilter struct {
	OwnerID *uuid.UUID
	ClaimID *uuid.UUID
}
