package postgres

import (
	"context"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"
	"ledger/internal/errors"
	"ledger/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

func (repo *ratingRepository) CreateRating(ctx context.Context, rating *entity.Rating) error {
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isUniqueConstraintViolation(err, constraintRatingPerRater) {
			return repository.ErrDuplicateRating
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEventCodeNotFound
		}

		return errors.Wrap(err, "failed to create rating")
	}
	rating.CreatedAt = ratingM.CreatedAt

	return nil
}

func (repo *ratingRepository) RatingExists(ctx context.Context, eventCodeID, raterID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Where("event_code_id = ? AND rater_id = ?", eventCodeID, raterID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check rating")
	}

	return count > 0, nil
}

func (repo *ratingRepository) ListRatingsByClaim(ctx context.Context, claimID uuid.UUID) ([]*entity.Rating, error) {
	var ratingModels []model.RatingModel
	err := repo.db.WithContext(ctx).
		Where("claim_id = ?", claimID).
		Order("created_at DESC").
		Find(&ratingModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	ratings := make([]*entity.Rating, 0, len(ratingModels))
	for i := range ratingModels {
		ratings = append(ratings, toRatingDomain(&ratingModels[i]))
	}

	return ratings, nil
}

func (repo *ratingRepository) RatingStatsByClaim(ctx context.Context, claimID uuid.UUID) (entity.RatingStats, error) {
	var row model.RatingStatsRow
	err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("COUNT(id) AS rating_count, COALESCE(SUM(score), 0) AS score_sum").
		Where("claim_id = ?", claimID).
		Scan(&row).Error
	if err != nil {
		return entity.RatingStats{}, errors.Wrap(err, "failed to aggregate ratings")
	}

	return entity.NewRatingStats(row.RatingCount, row.ScoreSum), nil
}

func toRatingDomain(data *model.RatingModel) *entity.Rating {
	if data == nil {
		return nil
	}

	return &entity.Rating{
		ID:          data.ID,
		RaterID:     data.RaterID,
		ClaimID:     data.ClaimID,
		EventCodeID: data.EventCodeID,
		Score:       data.Score,
		Comment:     data.Comment,
		CreatedAt:   data.CreatedAt,
	}
}

func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	if data == nil {
		return nil
	}

	return &model.RatingModel{
		ID:          data.ID,
		RaterID:     data.RaterID,
		ClaimID:     data.ClaimID,
		EventCodeID: data.EventCodeID,
		Score:       data.Score,
		Comment:     data.Comment,
		CreatedAt:   data.CreatedAt,
	}
}
