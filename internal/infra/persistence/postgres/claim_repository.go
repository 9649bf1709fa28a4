package postgres

import (
	"context"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"
	"ledger/internal/errors"
	"ledger/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type claimRepository struct {
	db *gorm.DB
}

// NewClaimRepository is the constructor for claimRepository.
func NewClaimRepository(db *gorm.DB) repository.ClaimRepository {
	return &claimRepository{db: db}
}

// CreateClaim relies on uq_location_claims_active_location for exclusivity.
func (repo *claimRepository) CreateClaim(ctx context.Context, claim *entity.LocationClaim) error {
	if claim.ID == uuid.Nil {
		claim.ID = uuid.New()
	}
	claimM := fromClaimDomain(claim)

	if err := repo.db.WithContext(ctx).Create(claimM).Error; err != nil {
		if isUniqueConstraintViolation(err, constraintActiveLocation) {
			return repository.ErrActiveLocationConflict
		}

		return errors.Wrap(err, "failed to create location claim")
	}

	claim.CreatedAt = claimM.CreatedAt
	claim.UpdatedAt = claimM.UpdatedAt

	return nil
}

func (repo *claimRepository) FindClaimByID(ctx context.Context, id uuid.UUID) (*entity.LocationClaim, error) {
	return repo.findClaim(repo.db.WithContext(ctx).Where("id = ?", id), "failed to find claim by ID")
}

func (repo *claimRepository) LockClaimByID(ctx context.Context, id uuid.UUID) (*entity.LocationClaim, error) {
	query := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id)

	return repo.findClaim(query, "failed to lock claim")
}

func (repo *claimRepository) FindActiveClaimByLocation(ctx context.Context, location string) (*entity.LocationClaim, error) {
	query := repo.db.WithContext(ctx).
		Where("lower(location) = ? AND is_active", entity.LocationKey(location))

	return repo.findClaim(query, "failed to find claim by location")
}

func (repo *claimRepository) findClaim(query *gorm.DB, msg string) (*entity.LocationClaim, error) {
	var claimM model.LocationClaimModel
	if err := query.First(&claimM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClaimNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toClaimDomain(&claimM), nil
}

func (repo *claimRepository) UpdateClaimDetails(ctx context.Context, claim *entity.LocationClaim) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.LocationClaimModel{}).
		Where("id = ? AND is_active", claim.ID).
		Updates(map[string]any{
			"contact_number": claim.ContactNumber,
			"description":    claim.Description,
			"updated_at":     now,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update claim details")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClaimNotFound
	}
	claim.UpdatedAt = now

	return nil
}

func (repo *claimRepository) DeactivateClaim(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationClaimModel{}).
		Where("id = ? AND is_active", id).
		Updates(map[string]any{"is_active": false, "deactivated_at": at, "updated_at": at})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate claim")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClaimNotFound
	}

	return nil
}

func (repo *claimRepository) ListActiveClaims(ctx context.Context, filter entity.ClaimFilter) ([]*entity.ClaimSummary, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.LocationClaimModel{}).
		Select("location_claims.*, accounts.name AS owner_name, " +
			"COUNT(ratings.id) AS rating_count, COALESCE(SUM(ratings.score), 0) AS score_sum").
		Joins("JOIN accounts ON accounts.id = location_claims.owner_id").
		Joins("LEFT JOIN ratings ON ratings.claim_id = location_claims.id").
		Where("location_claims.is_active")

	if filter.OwnerID != nil {
		query = query.Where("location_claims.owner_id = ?", *filter.OwnerID)
	}
	if filter.ClaimID != nil {
		query = query.Where("location_claims.id = ?", *filter.ClaimID)
	}

	var rows []model.ClaimSummaryRow
	err := query.
		Group("location_claims.id, accounts.name").
		Order("location_claims.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active claims")
	}

	summaries := make([]*entity.ClaimSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, &entity.ClaimSummary{
			LocationClaim: toClaimDomain(&rows[i].LocationClaimModel),
			OwnerName:     rows[i].OwnerName,
			Ratings:       entity.NewRatingStats(rows[i].RatingCount, rows[i].ScoreSum),
		})
	}

	return summaries, nil
}

func toClaimDomain(data *model.LocationClaimModel) *entity.LocationClaim {
	if data == nil {
		return nil
	}

	return &entity.LocationClaim{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		Name:          data.Name,
		Location:      data.Location,
		ContactNumber: data.ContactNumber,
		Description:   data.Description,
		State:         data.Lifecycle.ToState(),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromClaimDomain(data *entity.LocationClaim) *model.LocationClaimModel {
	if data == nil {
		return nil
	}

	return &model.LocationClaimModel{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		Name:          data.Name,
		Location:      data.Location,
		ContactNumber: data.ContactNumber,
		Description:   data.Description,
		Lifecycle:     model.FromState(data.State),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
