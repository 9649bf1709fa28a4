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

// EventCodeHandlerParams holds dependencies for EventCodeHandler, injected by Fx.
type EventCodeHandlerParams struct {
	fx.In

	EventCodeUC usecase.EventCodeUsecase
	Logger      *slog.Logger
}

// EventCodeHandler serves the event codes of a claim to its owner.
type EventCodeHandler struct {
	eventCodeUC usecase.EventCodeUsecase
	logger      *slog.Logger
}

// NewEventCodeHandler is the constructor for EventCodeHandler
func NewEventCodeHandler(params EventCodeHandlerParams) *EventCodeHandler {
	return &EventCodeHandler{
		eventCodeUC: params.EventCodeUC,
		logger:      params.Logger,
	}
}

// IssueCode issues a fresh code, superseding the active one.
func (h *EventCodeHandler) IssueCode(c echo.Context) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	claimID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	code, err := h.eventCodeUC.IssueCode(c.Request().Context(), identity, claimID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, code)
}

// ActiveCode returns the claim's live code.
func (h *EventCodeHandler) ActiveCode(c echo.Context) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	claimID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	code, err := h.eventCodeUC.ActiveCode(c.Request().Context(), identity, claimID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, code)
}

// ActiveCodeQR renders the claim's live code as a PNG.
func (h *EventCodeHandler) ActiveCodeQR(c echo.Context) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	claimID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.eventCodeUC.ActiveCodeQR(c.Request().Context(), identity, claimID)
	if err != nil {
		return err
	}

	return response.PNG(c, png)
}

// EndCode deactivates a code early.
func (h *EventCodeHandler) EndCode(c echo.Context) error {
	identity, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	codeID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.eventCodeUC.EndCode(c.Request().Context(), identity, codeID); err != nil {
		return err
	}

	return response.NoContent(c)
}
