package handler

import (
	"log/slog"
	"net/http"

	"ledger/internal/delivery/api/middleware"
	"ledger/internal/delivery/api/response"
	"ledger/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ClaimHandlerParams holds dependencies for ClaimHandler, injected by Fx.
type ClaimHandlerParams struct {
	fx.In

	ClaimUC  usecase.ClaimUsecase
	RatingUC usecase.RatingUsecase
	Logger   *slog.Logger
}

// ClaimHandler serves location claims and their ratings.
type ClaimHandler struct {
	claimUC  usecase.ClaimUsecase
	ratingUC usecase.RatingUsecase
	logger   *slog.Logger
}

// NewClaimHandler is the constructor for ClaimHandler
func NewClaimHandler(params ClaimHandlerParams) *ClaimHandler {
	return &ClaimHandler{
		claimUC:  params.ClaimUC,
		ratingUC: params.RatingUC,
		logger:   params.Logger,
	}
}

// ClaimRequest represents the request body for claiming a location
type ClaimRequest struct {
	Name          string  `json:"name" validate:"required,notblank,max=200"`
	Location      string  `json:"location" validate:"required,notblank,max=200"`
	ContactNumber *string `json:"contact_number" validate:"omitempty,max=40"`
	Description   *string `json:"description" validate:"omitempty,max=2000"`
}

func (r *ClaimRequest) toInput() *usecase.ClaimLocationInput {
	return &usecase.ClaimLocationInput{
		Name:          r.Name,
		Location:      r.Location,
		ContactNumber: r.ContactNumber,
		Description:   r.Description,
	}
}

// UpdateClaimRequest represents the request body for editing a claim.
// Omitted fields keep their value; blank fields clear it.
type UpdateClaimRequest struct {
	ContactNumber *string `json:"contact_number" validate:"omitempty,max=40"`
	Description   *string `json:"description" validate:"omitempty,max=2000"`
}

// ClaimLocation claims a location for the calling organization.
func (h *ClaimHandler) ClaimLocation(c echo.Context) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	req, err := bind[ClaimRequest](c)
	if err != nil {
		return err
	}

	claim, err := h.claimUC.ClaimLocation(c.Request().Context(), identity, req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, claim)
}

// ListActiveClaims lists active claims, best fuzzy match first when q is set.
func (h *ClaimHandler) ListActiveClaims(c echo.Context) error {
	claims, err := h.claimUC.ListActiveClaims(c.Request().Context(), &usecase.ListClaimsInput{
		Query: c.QueryParam("q"),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, claims)
}

// ListMyClaims lists the caller's active claims.
func (h *ClaimHandler) ListMyClaims(c echo.Context) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	claims, err := h.claimUC.ListMyClaims(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, claims)
}

// GetClaim returns one claim with its owner and rating summary.
func (h *ClaimHandler) GetClaim(c echo.Context) error {
	claimID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	claim, err := h.claimUC.GetClaim(c.Request().Context(), claimID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, claim)
}

// UpdateClaim edits the optional details of a claim.
func (h *ClaimHandler) UpdateClaim(c echo.Context) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	claimID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	req, err := bind[UpdateClaimRequest](c)
	if err != nil {
		return err
	}

	claim, err := h.claimUC.UpdateClaim(c.Request().Context(), identity, claimID, &usecase.UpdateClaimInput{
		ContactNumber: req.ContactNumber,
		Description:   req.Description,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, claim)
}

// ReleaseLocation ends the claim and its codes.
func (h *ClaimHandler) ReleaseLocation(c echo.Context) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	claimID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.claimUC.ReleaseLocation(c.Request().Context(), identity, claimID); err != nil {
		return err
	}

	return response.NoContent(c)
}

// ListClaimRatings returns the ratings of a claim with their aggregate.
func (h *ClaimHandler) ListClaimRatings(c echo.Context) error {
	claimID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ratings, err := h.ratingUC.ListClaimRatings(c.Request().Context(), claimID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, ratings)
}
