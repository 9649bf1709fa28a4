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

// RatingHandlerParams holds dependencies for RatingHandler, injected by Fx.
type RatingHandlerParams struct {
	fx.In

	RatingUC usecase.RatingUsecase
	Logger   *slog.Logger
}

// RatingHandler redeems event codes.
type RatingHandler struct {
	ratingUC usecase.RatingUsecase
	logger   *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler
func NewRatingHandler(params RatingHandlerParams) *RatingHandler {
	return &RatingHandler{
		ratingUC: params.RatingUC,
		logger:   params.Logger,
	}
}

// RedeemCodeRequest represents the request body for submitting a rating.
// The score range is checked by the rating service.
type RedeemCodeRequest struct {
	Code    string  `json:"code" validate:"required,notblank,max=32"`
	Score   *int    `json:"score" validate:"required"`
	Comment *string `json:"comment" validate:"omitempty,max=1000"`
}

// RedeemCode records the caller's rating against an event code.
func (h *RatingHandler) RedeemCode(c echo.Context) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	req, err := bind[RedeemCodeRequest](c)
	if err != nil {
		return err
	}

	output, err := h.ratingUC.RedeemCode(c.Request().Context(), identity, &usecase.RedeemCodeInput{
		Code:    req.Code,
		Score:   *req.Score,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, output)
}
