package memory

import (
	"context"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"

	"github.com/google/uuid"
)

type ratingRepository struct {
	scope scope
}

// NewRatingRepository returns a RatingRepository over the live dataset.
func NewRatingRepository(store *Store) repository.RatingRepository {
	return &ratingRepository{scope: scope{store: store}}
}

func (r *ratingRepository) CreateRating(ctx context.Context, rating *entity.Rating) error {
	return r.scope.run(ctx, func(d *dataset) error {
		if _, ok := d.codes[rating.EventCodeID]; !ok {
			return repository.ErrEventCodeNotFound
		}
		if ratingExists(d, rating.EventCodeID, rating.RaterID) {
			return repository.ErrDuplicateRating
		}

		if rating.ID == uuid.Nil {
			rating.ID = uuid.New()
		}
		rating.CreatedAt = r.scope.store.now()
		d.ratings[rating.ID] = *rating

		return nil
	})
}

func ratingExists(d *dataset, eventCodeID, raterID uuid.UUID) bool {
	for _, rating := range d.ratings {
		if rating.EventCodeID == eventCodeID && rating.RaterID == raterID {
			return true
		}
	}

	return false
}

func (r *ratingRepository) RatingExists(ctx context.Context, eventCodeID, raterID uuid.UUID) (bool, error) {
	var exists bool
	err := r.scope.run(ctx, func(d *dataset) error {
		exists = ratingExists(d, eventCodeID, raterID)

		return nil
	})

	return exists, err
}

func (r *ratingRepository) ListRatingsByClaim(ctx context.Context, claimID uuid.UUID) ([]*entity.Rating, error) {
	var ratings []*entity.Rating
	err := r.scope.run(ctx, func(d *dataset) error {
		for _, rating := range d.ratings {
			if rating.ClaimID == claimID {
				ratings = append(ratings, &rating)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	newestFirst(ratings,
		func(r *entity.Rating) time.Time { return r.CreatedAt },
		func(r *entity.Rating) uuid.UUID { return r.ID })

	return ratings, nil
}

func (r *ratingRepository) RatingStatsByClaim(ctx context.Context, claimID uuid.UUID) (entity.RatingStats, error) {
	var stats entity.RatingStats
	err := r.scope.run(ctx, func(d *dataset) error {
		stats = ratingStats(d, claimID)

		return nil
	})

	return stats, err
}

func ratingStats(d *dataset, claimID uuid.UUID) entity.RatingStats {
	var count, sum int64
	for _, rating := range d.ratings {
		if rating.ClaimID == claimID {
			count++
			sum += int64(rating.Score)
		}
	}

	return entity.NewRatingStats(count, sum)
}
