package usecase

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// RedeemCodeInput is a rating submitted against an event code.
type RedeemCodeInput struct {
	Code    string  `json:"code"`
	Score   int     `json:"score"`
	Comment *string `json:"comment,omitempty"`
}

// RedeemCodeOutput describes the stored rating.
type RedeemCodeOutput struct {
	RatingID  uuid.UUID `json:"rating_id"`
	Score     int       `json:"score"`
	ClaimName string    `json:"claim_name"`
	Location  string    `json:"location"`
}

// ClaimRatings lists a claim's ratings with their aggregate.
type ClaimRatings struct {
	ClaimID uuid.UUID          `json:"claim_id"`
	Stats   entity.RatingStats `json:"stats"`
	Ratings []*entity.Rating   `json:"ratings"`
}

// RatingUsecase verifies event codes and records ratings.
type RatingUsecase interface {
	// RedeemCode records one rating per (code, rater).
	RedeemCode(ctx context.Context, identity entity.Identity, input *RedeemCodeInput) (*RedeemCodeOutput, error)

	ListClaimRatings(ctx context.Context, claimID uuid.UUID) (*ClaimRatings, error)
}
