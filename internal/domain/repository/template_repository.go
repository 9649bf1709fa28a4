package repository

import (
	"context"

	"ledger/internal/domain/entity"
	"ledger/internal/errors"

	"github.com/google/uuid"
)

// ErrTemplateNotFound is returned when a task template is not found.
var ErrTemplateNotFound = errors.New("task template not found")

// TemplateRepository persists task templates.
type TemplateRepository interface {
	CreateTemplate(ctx context.Context, template *entity.TaskTemplate) error

	FindTemplateByID(ctx context.Context, id uuid.UUID) (*entity.TaskTemplate, error)

	// UpdateTemplate writes every mutable column, including lifecycle state.
	UpdateTemplate(ctx context.Context, template *entity.TaskTemplate) error

	// ListTemplates returns active templates matching the filter, newest first.
	ListTemplates(ctx context.Context, filter entity.TemplateFilter) ([]*entity.TaskTemplate, error)
}
