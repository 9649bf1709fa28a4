package handler

import (
	"log/slog"
	"net/http"

	"ledger/internal/delivery/api/middleware"
	"ledger/internal/delivery/api/response"
	"ledger/internal/domain/entity"
	"ledger/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves account administration.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// UpdateRoleRequest represents the request body for changing a role
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=viewer organization admin"`
}

// ListAccounts lists every account with claim counts.
func (h *AdminHandler) ListAccounts(c echo.Context) error {
	listing, err := h.adminUC.ListAccounts(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, listing)
}

// UpdateRole changes the role of another account.
func (h *AdminHandler) UpdateRole(c echo.Context) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	accountID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	req, err := bind[UpdateRoleRequest](c)
	if err != nil {
		return err
	}

	account, err := h.adminUC.UpdateRole(c.Request().Context(), identity, accountID, entity.Role(req.Role))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, account)
}

// DeactivateAccount deactivates another account.
func (h *AdminHandler) DeactivateAccount(c echo.Context) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	accountID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.adminUC.DeactivateAccount(c.Request().Context(), identity, accountID); err != nil {
		return err
	}

	return response.NoContent(c)
}
