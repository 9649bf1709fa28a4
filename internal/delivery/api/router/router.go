// Package router maps the API routes onto their handlers.
package router

import (
	"ledger/internal/delivery/api/middleware"
	"ledger/internal/delivery/api/router/handler"
	"ledger/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler   *handler.AccountHandler
	ClaimHandler     *handler.ClaimHandler
	EventCodeHandler *handler.EventCodeHandler
	RatingHandler    *handler.RatingHandler
	TemplateHandler  *handler.TemplateHandler
	AdminHandler     *handler.AdminHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler   *handler.AccountHandler
	claimHandler     *handler.ClaimHandler
	eventCodeHandler *handler.EventCodeHandler
	ratingHandler    *handler.RatingHandler
	templateHandler  *handler.TemplateHandler
	adminHandler     *handler.AdminHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:   params.AccountHandler,
		claimHandler:     params.ClaimHandler,
		eventCodeHandler: params.EventCodeHandler,
		ratingHandler:    params.RatingHandler,
		templateHandler:  params.TemplateHandler,
		adminHandler:     params.AdminHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	apiV1 := e.Group("/api/v1")

	authenticated := r.authMiddleware.Authenticate
	organization := r.authMiddleware.RequireRole(entity.RoleOrganization)
	editor := r.authMiddleware.RequireRole(entity.RoleOrganization, entity.RoleAdmin)

	// Claims; reads are public
	apiV1.GET("/claims", r.claimHandler.ListActiveClaims)
	apiV1.GET("/claims/mine", r.claimHandler.ListMyClaims, authenticated, organization)
	apiV1.GET("/claims/:id", r.claimHandler.GetClaim)
	apiV1.GET("/claims/:id/ratings", r.claimHandler.ListClaimRatings)
	apiV1.POST("/claims", r.claimHandler.ClaimLocation, authenticated, organization)
	apiV1.PATCH("/claims/:id", r.claimHandler.UpdateClaim, authenticated, editor)
	apiV1.DELETE("/claims/:id", r.claimHandler.ReleaseLocation, authenticated, editor)

	// Event codes
	apiV1.POST("/claims/:id/codes", r.eventCodeHandler.IssueCode, authenticated, organization)
	apiV1.GET("/claims/:id/codes/active", r.eventCodeHandler.ActiveCode, authenticated, organization)
	apiV1.GET("/claims/:id/codes/active/qr", r.eventCodeHandler.ActiveCodeQR, authenticated, organization)
	apiV1.DELETE("/codes/:id", r.eventCodeHandler.EndCode, authenticated, organization)

	apiV1.GET("/me", r.accountHandler.Profile, authenticated)
	apiV1.POST("/ratings", r.ratingHandler.RedeemCode, authenticated)

	// Task templates
	apiV1.GET("/templates", r.templateHandler.ListTemplates, authenticated)
	apiV1.POST("/templates", r.templateHandler.CreateTemplate, authenticated, organization)
	apiV1.PATCH("/templates/:id", r.templateHandler.UpdateTemplate, authenticated, editor)
	apiV1.DELETE("/templates/:id", r.templateHandler.ArchiveTemplate, authenticated, editor)

	// Administration
	adminGroup := apiV1.Group("/admin", r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/accounts", r.adminHandler.ListAccounts)
		adminGroup.PATCH("/accounts/:id/role", r.adminHandler.UpdateRole)
		adminGroup.DELETE("/accounts/:id", r.adminHandler.DeactivateAccount)
	}
}
