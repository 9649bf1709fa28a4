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

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves registration, login and the caller's profile.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Name     string        `json:"name" validate:"required,notblank,max=120"`
	Email    string        `json:"email" validate:"required,email,max=254"`
	Password string        `json:"password" validate:"required,max=72"`
	Role     string        `json:"role" validate:"omitempty,max=32"`
	Claim    *ClaimRequest `json:"claim"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates an account and signs it in.
func (h *AccountHandler) Register(c echo.Context) error {
	req, err := bind[RegisterRequest](c)
	if err != nil {
		return err
	}

	input := &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	}
	if req.Claim != nil {
		input.Claim = req.Claim.toInput()
	}

	output, err := h.accountUC.Register(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, output)
}

// Login exchanges credentials for an access token.
func (h *AccountHandler) Login(c echo.Context) error {
	req, err := bind[LoginRequest](c)
	if err != nil {
		return err
	}

	output, err := h.accountUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, output)
}

// Profile returns the caller's account and active claims.
func (h *AccountHandler) Profile(c echo.Context) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	profile, err := h.accountUC.Profile(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, profile)
}
