package memory

import (
	"context"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"

	"github.com/google/uuid"
)

type templateRepository struct {
	scope scope
}

// NewTemplateRepository returns a TemplateRepository over the live dataset.
func NewTemplateRepository(store *Store) repository.TemplateRepository {
	return &templateRepository{scope: scope{store: store}}
}

func (r *templateRepository) CreateTemplate(ctx context.Context, template *entity.TaskTemplate) error {
	return r.scope.run(ctx, func(d *dataset) error {
		if template.ClaimID != nil {
			if _, ok := d.claims[*template.ClaimID]; !ok {
				return repository.ErrClaimNotFound
			}
		}

		if template.ID == uuid.Nil {
			template.ID = uuid.New()
		}
		now := r.scope.store.now()
		template.CreatedAt, template.UpdatedAt = now, now
		d.templates[template.ID] = *template

		return nil
	})
}

func (r *templateRepository) FindTemplateByID(ctx context.Context, id uuid.UUID) (*entity.TaskTemplate, error) {
	var found *entity.TaskTemplate
	err := r.scope.run(ctx, func(d *dataset) error {
		template, ok := d.templates[id]
		if !ok {
			return repository.ErrTemplateNotFound
		}
		found = &template

		return nil
	})

	return found, err
}

func (r *templateRepository) UpdateTemplate(ctx context.Context, template *entity.TaskTemplate) error {
	return r.scope.run(ctx, func(d *dataset) error {
		stored, ok := d.templates[template.ID]
		if !ok {
			return repository.ErrTemplateNotFound
		}
		if template.ClaimID != nil {
			if _, ok := d.claims[*template.ClaimID]; !ok {
				return repository.ErrClaimNotFound
			}
		}

		template.OwnerID = stored.OwnerID
		template.CreatedAt = stored.CreatedAt
		template.UpdatedAt = r.scope.store.now()
		d.templates[template.ID] = *template

		return nil
	})
}

func (r *templateRepository) ListTemplates(ctx context.Context, filter entity.TemplateFilter) ([]*entity.TaskTemplate, error) {
	var templates []*entity.TaskTemplate
	err := r.scope.run(ctx, func(d *dataset) error {
		for _, template := range d.templates {
			if !template.Active() {
				continue
			}
			if filter.OwnerID != nil && template.OwnerID != *filter.OwnerID {
				continue
			}
			if filter.ClaimID != nil && (template.ClaimID == nil || *template.ClaimID != *filter.ClaimID) {
				continue
			}
			if filter.Status != nil && template.Status != *filter.Status {
				continue
			}
			templates = append(templates, &template)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	newestFirst(templates,
		func(t *entity.TaskTemplate) time.Time { return t.CreatedAt },
		func(t *entity.TaskTemplate) uuid.UUID { return t.ID })

	return templates, nil
}
