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
)

type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository is the constructor for templateRepository.
func NewTemplateRepository(db *gorm.DB) repository.TemplateRepository {
	return &templateRepository{db: db}
}

func (repo *templateRepository) CreateTemplate(ctx context.Context, template *entity.TaskTemplate) error {
	if template.ID == uuid.Nil {
		template.ID = uuid.New()
	}
	templateM := fromTemplateDomain(template)

	if err := repo.db.WithContext(ctx).Create(templateM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrClaimNotFound
		}

		return errors.Wrap(err, "failed to create task template")
	}

	template.CreatedAt = templateM.CreatedAt
	template.UpdatedAt = templateM.UpdatedAt

	return nil
}

func (repo *templateRepository) FindTemplateByID(ctx context.Context, id uuid.UUID) (*entity.TaskTemplate, error) {
	var templateM model.TaskTemplateModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&templateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find task template by ID")
	}

	return toTemplateDomain(&templateM), nil
}

func (repo *templateRepository) UpdateTemplate(ctx context.Context, template *entity.TaskTemplate) error {
	template.UpdatedAt = time.Now()
	templateM := fromTemplateDomain(template)

	result := repo.db.WithContext(ctx).
		Model(&model.TaskTemplateModel{ID: template.ID}).
		Select("claim_id", "title", "description", "template_url", "status", "priority",
			"is_active", "deactivated_at", "updated_at").
		Updates(templateM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrClaimNotFound
		}

		return errors.Wrap(result.Error, "failed to update task template")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTemplateNotFound
	}

	return nil
}

func (repo *templateRepository) ListTemplates(ctx context.Context, filter entity.TemplateFilter) ([]*entity.TaskTemplate, error) {
	query := repo.db.WithContext(ctx).Where("is_active")
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.ClaimID != nil {
		query = query.Where("claim_id = ?", *filter.ClaimID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var templateModels []model.TaskTemplateModel
	if err := query.Order("created_at DESC").Find(&templateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list task templates")
	}

	templates := make([]*entity.TaskTemplate, 0, len(templateModels))
	for i := range templateModels {
		templates = append(templates, toTemplateDomain(&templateModels[i]))
	}

	return templates, nil
}

func toTemplateDomain(data *model.TaskTemplateModel) *entity.TaskTemplate {
	if data == nil {
		return nil
	}

	return &entity.TaskTemplate{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		ClaimID:     data.ClaimID,
		Title:       data.Title,
		Description: data.Description,
		TemplateURL: data.TemplateURL,
		Status:      entity.TaskStatus(data.Status),
		Priority:    entity.TaskPriority(data.Priority),
		State:       data.Lifecycle.ToState(),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTemplateDomain(data *entity.TaskTemplate) *model.TaskTemplateModel {
	if data == nil {
		return nil
	}

	return &model.TaskTemplateModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		ClaimID:     data.ClaimID,
		Title:       data.Title,
		Description: data.Description,
		TemplateURL: data.TemplateURL,
		Status:      string(data.Status),
		Priority:    string(data.Priority),
		Lifecycle:   model.FromState(data.State),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
