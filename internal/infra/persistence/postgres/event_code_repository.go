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

type eventCodeRepository struct {
	db *gorm.DB
}

// NewEventCodeRepository is the constructor for eventCodeRepository.
func NewEventCodeRepository(db *gorm.DB) repository.EventCodeRepository {
	return &eventCodeRepository{db: db}
}

func (repo *eventCodeRepository) CreateEventCode(ctx context.Context, code *entity.EventCode) error {
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(fromEventCodeDomain(code)).Error; err != nil {
		if isUniqueConstraintViolation(err, constraintActiveCodePerClaim, constraintActiveCodeValue) {
			return repository.ErrActiveCodeConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrClaimNotFound
		}

		return errors.Wrap(err, "failed to create event code")
	}

	return nil
}

func (repo *eventCodeRepository) FindEventCodeByID(ctx context.Context, id uuid.UUID) (*entity.EventCode, error) {
	return repo.findCode(repo.db.WithContext(ctx).Where("id = ?", id), "failed to find event code by ID")
}

func (repo *eventCodeRepository) FindLatestByCode(ctx context.Context, value string) (*entity.EventCode, error) {
	query := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Where("code = ?", value).
		Order("is_active DESC, issued_at DESC")

	return repo.findCode(query, "failed to find event code by value")
}

func (repo *eventCodeRepository) FindActiveByClaim(ctx context.Context, claimID uuid.UUID) (*entity.EventCode, error) {
	query := repo.db.WithContext(ctx).Where("claim_id = ? AND is_active", claimID)

	return repo.findCode(query, "failed to find active event code")
}

func (repo *eventCodeRepository) FindActiveByCode(ctx context.Context, value string) (*entity.EventCode, error) {
	query := repo.db.WithContext(ctx).Where("code = ? AND is_active", value)

	return repo.findCode(query, "failed to find active event code by value")
}

func (repo *eventCodeRepository) findCode(query *gorm.DB, msg string) (*entity.EventCode, error) {
	var codeM model.EventCodeModel
	if err := query.First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventCodeNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toEventCodeDomain(&codeM), nil
}

func (repo *eventCodeRepository) DeactivateCodesByClaim(ctx context.Context, claimID uuid.UUID, at time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.EventCodeModel{}).
		Where("claim_id = ? AND is_active", claimID).
		Updates(map[string]any{"is_active": false, "deactivated_at": at})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate event codes")
	}

	return result.RowsAffected, nil
}

func (repo *eventCodeRepository) DeactivateEventCode(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EventCodeModel{}).
		Where("id = ? AND is_active", id).
		Updates(map[string]any{"is_active": false, "deactivated_at": at})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate event code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventCodeNotFound
	}

	return nil
}

func (repo *eventCodeRepository) ListCodesByClaim(ctx context.Context, claimID uuid.UUID) ([]*entity.EventCode, error) {
	var codeModels []model.EventCodeModel
	err := repo.db.WithContext(ctx).
		Where("claim_id = ?", claimID).
		Order("issued_at DESC").
		Find(&codeModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list event codes")
	}

	codes := make([]*entity.EventCode, 0, len(codeModels))
	for i := range codeModels {
		codes = append(codes, toEventCodeDomain(&codeModels[i]))
	}

	return codes, nil
}

func toEventCodeDomain(data *model.EventCodeModel) *entity.EventCode {
	if data == nil {
		return nil
	}

	return &entity.EventCode{
		ID:        data.ID,
		ClaimID:   data.ClaimID,
		Code:      data.Code,
		IssuedAt:  data.IssuedAt,
		ExpiresAt: data.ExpiresAt,
		State:     data.Lifecycle.ToState(),
	}
}

func fromEventCodeDomain(data *entity.EventCode) *model.EventCodeModel {
	if data == nil {
		return nil
	}

	return &model.EventCodeModel{
		ID:        data.ID,
		ClaimID:   data.ClaimID,
		Code:      data.Code,
		IssuedAt:  data.IssuedAt,
		ExpiresAt: data.ExpiresAt,
		Lifecycle: model.FromState(data.State),
	}
}
