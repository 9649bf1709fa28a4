package handler

import (
	"log/slog"
	"net/http"

	"ledger/internal/delivery/api/middleware"
	"ledger/internal/delivery/api/response"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TemplateHandlerParams holds dependencies for TemplateHandler, injected by Fx.
type TemplateHandlerParams struct {
	fx.In

	TemplateUC usecase.TemplateUsecase
	Logger     *slog.Logger
}

// TemplateHandler serves task templates.
type TemplateHandler struct {
	templateUC usecase.TemplateUsecase
	logger     *slog.Logger
}

// NewTemplateHandler is the constructor for TemplateHandler
func NewTemplateHandler(params TemplateHandlerParams) *TemplateHandler {
	return &TemplateHandler{
		templateUC: params.TemplateUC,
		logger:     params.Logger,
	}
}

// TemplateRequest represents the body for creating or editing a template.
// An empty claim_id removes the claim scope.
type TemplateRequest struct {
	ClaimID     *string `json:"claim_id"`
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=4000"`
	TemplateURL *string `json:"template_url" validate:"omitempty,max=2048"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending in-progress completed blocked"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}

func (r *TemplateRequest) toInput() (*usecase.TemplateInput, error) {
	input := &usecase.TemplateInput{
		Title:       r.Title,
		Description: r.Description,
		TemplateURL: r.TemplateURL,
	}

	if r.ClaimID != nil {
		claimID := uuid.Nil
		if *r.ClaimID != "" {
			parsed, err := uuid.Parse(*r.ClaimID)
			if err != nil {
				return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "claim_id", Message: "must be a valid id"})
			}
			claimID = parsed
		}
		input.ClaimID = &claimID
	}
	if r.Status != nil {
		status := entity.TaskStatus(*r.Status)
		input.Status = &status
	}
	if r.Priority != nil {
		priority := entity.TaskPriority(*r.Priority)
		input.Priority = &priority
	}

	return input, nil
}

// CreateTemplate publishes a template for the calling organization.
func (h *TemplateHandler) CreateTemplate(c echo.Context) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	req, err := bind[TemplateRequest](c)
	if err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	template, err := h.templateUC.CreateTemplate(c.Request().Context(), identity, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, template)
}

// ListTemplates lists active templates, filtered by owner_id, claim_id and
// status query parameters.
func (h *TemplateHandler) ListTemplates(c echo.Context) error {
	ownerID, err := queryID(c, "owner_id")
	if err != nil {
		return err
	}
	claimID, err := queryID(c, "claim_id")
	if err != nil {
		return err
	}

	filter := entity.TemplateFilter{OwnerID: ownerID, ClaimID: claimID}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.TaskStatus(raw)
		filter.Status = &status
	}

	templates, err := h.templateUC.ListTemplates(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, templates)
}

// UpdateTemplate edits a template.
func (h *TemplateHandler) UpdateTemplate(c echo.Context) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	templateID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	req, err := bind[TemplateRequest](c)
	if err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	template, err := h.templateUC.UpdateTemplate(c.Request().Context(), identity, templateID, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, template)
}

// ArchiveTemplate archives a template.
func (h *TemplateHandler) ArchiveTemplate(c echo.Context) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	templateID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.templateUC.ArchiveTemplate(c.Request().Context(), identity, templateID); err != nil {
		return err
	}

	return response.NoContent(c)
}
