package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/lifecycle"
	"ledger/internal/domain/repository"
	"ledger/internal/errors"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const minTemplateTitle = 3

// TemplateServiceParams holds dependencies for TemplateService, injected by Fx.
type TemplateServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TemplateRepo repository.TemplateRepository
	Logger       *slog.Logger
}

type templateService struct {
	txManager    repository.TransactionManager
	templateRepo repository.TemplateRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewTemplateService is the constructor for templateService.
func NewTemplateService(params TemplateServiceParams) usecase.TemplateUsecase {
	return &templateService{
		txManager:    params.TxManager,
		templateRepo: params.TemplateRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *templateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *templateService) CreateTemplate(ctx context.Context, identity entity.Identity, input *usecase.TemplateInput) (*entity.TaskTemplate, error) {
	if identity.Role != entity.RoleOrganization {
		return nil, domainerrors.ErrForbidden.WithDetails("only organizations can publish templates")
	}
	if input == nil {
		input = &usecase.TemplateInput{}
	}

	template := &entity.TaskTemplate{
		ID:       uuid.New(),
		OwnerID:  identity.AccountID,
		Status:   entity.TaskPending,
		Priority: entity.PriorityMedium,
		State:    lifecycle.Active(),
	}
	if input.Title == nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "title", Message: "is required"})
	}
	if err := applyTemplateInput(template, input); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := checkTemplateClaim(ctx, factory.NewClaimRepository(), identity, template.ClaimID); err != nil {
			return err
		}

		if err := factory.NewTemplateRepository().CreateTemplate(ctx, template); err != nil {
			if errors.Is(err, repository.ErrClaimNotFound) {
				return domainerrors.ErrClaimNotFound
			}

			return errors.Wrap(err, "failed to create task template")
		}

		return nil
	})
	if err != nil {
		return nil, storeError(err, "create task template")
	}

	srv.log(ctx).Info("Task template created", slog.String("template_id", template.ID.String()))

	return template, nil
}

func (srv *templateService) ListTemplates(ctx context.Context, filter entity.TemplateFilter) ([]*entity.TaskTemplate, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "status", Message: "is not a known status"})
	}

	templates, err := srv.templateRepo.ListTemplates(ctx, filter)
	if err != nil {
		return nil, storeError(err, "list task templates")
	}

	return templates, nil
}

func (srv *templateService) UpdateTemplate(ctx context.Context, identity entity.Identity, templateID uuid.UUID, input *usecase.TemplateInput) (*entity.TaskTemplate, error) {
	if input == nil {
		input = &usecase.TemplateInput{}
	}

	var template *entity.TaskTemplate
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		templates := factory.NewTemplateRepository()
		current, err := findEditableTemplate(ctx, templates, identity, templateID)
		if err != nil {
			return err
		}

		previousClaim := current.ClaimID
		if err := applyTemplateInput(current, input); err != nil {
			return err
		}
		if input.ClaimID != nil && !sameClaim(previousClaim, current.ClaimID) {
			if err := checkTemplateClaim(ctx, factory.NewClaimRepository(), identity, current.ClaimID); err != nil {
				return err
			}
		}

		if err := templates.UpdateTemplate(ctx, current); err != nil {
			if errors.Is(err, repository.ErrClaimNotFound) {
				return domainerrors.ErrClaimNotFound
			}

			return errors.Wrap(err, "failed to update task template")
		}
		template = current

		return nil
	})
	if err != nil {
		return nil, storeError(err, "update task template")
	}

	return template, nil
}

func (srv *templateService) ArchiveTemplate(ctx context.Context, identity entity.Identity, templateID uuid.UUID) error {
	now := srv.now()

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		templates := factory.NewTemplateRepository()
		current, err := findEditableTemplate(ctx, templates, identity, templateID)
		if err != nil {
			return err
		}

		current.Deactivate(now)
		if err := templates.UpdateTemplate(ctx, current); err != nil {
			return errors.Wrap(err, "failed to archive task template")
		}

		return nil
	})
	if err != nil {
		return storeError(err, "archive task template")
	}

	srv.log(ctx).Info("Task template archived", slog.String("template_id", templateID.String()))

	return nil
}

// findEditableTemplate loads an active template the caller owns, or any
// active template for an administrator.
func findEditableTemplate(ctx context.Context, templates repository.TemplateRepository, identity entity.Identity, templateID uuid.UUID) (*entity.TaskTemplate, error) {
	template, err := templates.FindTemplateByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return nil, domainerrors.ErrTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find task template")
	}
	if !template.Active() {
		return nil, domainerrors.ErrTemplateNotFound
	}
	if !identity.Owns(template.OwnerID) && !identity.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WithDetails("template belongs to another account")
	}

	return template, nil
}

// checkTemplateClaim requires the scoping claim, when set, to be active and
// held by the caller.
func checkTemplateClaim(ctx context.Context, claims repository.ClaimRepository, identity entity.Identity, claimID *uuid.UUID) error {
	if claimID == nil {
		return nil
	}

	claim, err := claims.FindClaimByID(ctx, *claimID)
	if err != nil {
		if errors.Is(err, repository.ErrClaimNotFound) {
			return domainerrors.ErrClaimNotFound
		}

		return errors.Wrap(err, "failed to find claim")
	}
	if !claim.Active() {
		return errClaimInactive
	}

	return ownerOrAdmin(identity)(claim)
}

// applyTemplateInput copies the set fields onto the template and validates
// the result.
func applyTemplateInput(template *entity.TaskTemplate, input *usecase.TemplateInput) error {
	var fields []domainerrors.FieldError

	if input.ClaimID != nil {
		if *input.ClaimID == uuid.Nil {
			template.ClaimID = nil
		} else {
			claimID := *input.ClaimID
			template.ClaimID = &claimID
		}
	}
	if input.Title != nil {
		template.Title = strings.TrimSpace(*input.Title)
		if utf8.RuneCountInString(template.Title) < minTemplateTitle {
			fields = append(fields, domainerrors.FieldError{Field: "title", Message: "must be at least 3 characters"})
		}
	}
	if input.Description != nil {
		template.Description = optionalText(input.Description)
	}
	if input.TemplateURL != nil {
		template.TemplateURL = optionalText(input.TemplateURL)
		if template.TemplateURL != nil && !isWebURL(*template.TemplateURL) {
			fields = append(fields, domainerrors.FieldError{Field: "template_url", Message: "must be a valid URL"})
		}
	}
	if input.Status != nil {
		template.Status = *input.Status
		if !template.Status.IsValid() {
			fields = append(fields, domainerrors.FieldError{Field: "status", Message: "must be one of pending, in-progress, completed, blocked"})
		}
	}
	if input.Priority != nil {
		template.Priority = *input.Priority
		if !template.Priority.IsValid() {
			fields = append(fields, domainerrors.FieldError{Field: "priority", Message: "must be one of low, medium, high, urgent"})
		}
	}

	if len(fields) == 0 && !template.CompletionDocumented() {
		fields = append(fields, domainerrors.FieldError{Field: "description", Message: "a completed template needs a description or a template url"})
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}

func isWebURL(raw string) bool {
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}

	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func sameClaim(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
