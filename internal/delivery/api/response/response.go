// Package response writes the API envelope.
package response

import (
	"net/http"

	deliverycontext "ledger/internal/delivery/context"
	domainerrors "ledger/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// AppError renders a domain error. Validation errors carry their fields as
// details; other errors carry their details string when it is set.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if validationErr, ok := appErr.(*domainerrors.ValidationError); ok {
		details = validationErr.Fields()
	} else if appErr.Details() != "" {
		details = appErr.Details()
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// PNG writes an image body.
func PNG(c echo.Context, body []byte) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", body)
}

// NoContent acknowledges a state change that has nothing to return.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func meta(c echo.Context) *domainerrors.MetaInfo {
	return &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
