package postgres

import (
	"context"
	"strings"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"
	"ledger/internal/errors"
	"ledger/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (repo *accountRepository) CreateAccount(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err, constraintAccountEmail) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

func (repo *accountRepository) FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by ID")
	}

	return toAccountDomain(&accountM), nil
}

func (repo *accountRepository) FindAccountByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

func (repo *accountRepository) ListAccounts(ctx context.Context) ([]*entity.AccountSummary, error) {
	var rows []model.AccountSummaryRow
	err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Select("accounts.*, " +
			"COUNT(location_claims.id) FILTER (WHERE location_claims.is_active) AS active_claims, " +
			"COUNT(location_claims.id) AS total_claims").
		Joins("LEFT JOIN location_claims ON location_claims.owner_id = accounts.id").
		Group("accounts.id").
		Order("accounts.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	summaries := make([]*entity.AccountSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, &entity.AccountSummary{
			Account:      toAccountDomain(&rows[i].AccountModel),
			ActiveClaims: rows[i].ActiveClaims,
			TotalClaims:  rows[i].TotalClaims,
		})
	}

	return summaries, nil
}

func (repo *accountRepository) UpdateAccountRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"role": string(role), "updated_at": time.Now()})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update account role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func (repo *accountRepository) DeactivateAccount(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ? AND is_active", id).
		Updates(map[string]any{"is_active": false, "deactivated_at": at, "updated_at": at})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		State:        data.Lifecycle.ToState(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         string(data.Role),
		Lifecycle:    model.FromState(data.State),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
