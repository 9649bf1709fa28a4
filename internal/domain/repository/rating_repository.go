package repository

import (
	"context"

	"ledger/internal/domain/entity"
	"ledger/internal/errors"

	"github.com/google/uuid"
)

// ErrDuplicateRating is returned when the rater already rated the event code.
var ErrDuplicateRating = errors.New("rating already exists for event code and rater")

// RatingRepository persists ratings.
type RatingRepository interface {
	// CreateRating inserts a rating. The store enforces uniqueness on
	// (event code, rater) and reports a violation as ErrDuplicateRating.
	CreateRating(ctx context.Context, rating *entity.Rating) error

	RatingExists(ctx context.Context, eventCodeID, raterID uuid.UUID) (bool, error)

	// ListRatingsByClaim returns the claim's ratings, newest first.
	ListRatingsByClaim(ctx context.Context, claimID uuid.UUID) ([]*entity.Rating, error)

	RatingStatsByClaim(ctx context.Context, claimID uuid.UUID) (entity.RatingStats, error)
}
