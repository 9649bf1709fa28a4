package usecase

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// TemplateInput carries the fields of a task template. Nil fields keep their
// current value on update and take defaults on create.
type TemplateInput struct {
	ClaimID     *uuid.UUID
	Title       *string
	Description *string
	TemplateURL *string
	Status      *entity.TaskStatus
	Priority    *entity.TaskPriority
}

// TemplateUsecase manages an organization's task templates.
type TemplateUsecase interface {
	CreateTemplate(ctx context.Context, identity entity.Identity, input *TemplateInput) (*entity.TaskTemplate, error)

	ListTemplates(ctx context.Context, filter entity.TemplateFilter) ([]*entity.TaskTemplate, error)

	UpdateTemplate(ctx context.Context, identity entity.Identity, templateID uuid.UUID, input *TemplateInput) (*entity.TaskTemplate, error)

	// ArchiveTemplate deactivates the template.
	ArchiveTemplate(ctx context.Context, identity entity.Identity, templateID uuid.UUID) error
}
