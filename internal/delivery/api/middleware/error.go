package middleware

import (
	"log/slog"
	"net/http"

	"ledger/internal/delivery/api/response"
	deliverycontext "ledger/internal/delivery/context"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders handler errors in the API envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is the echo HTTPErrorHandler. Domain errors keep their
// status and code; echo errors (404 route, 413 body) become HTTP_ERROR;
// anything else is logged and answered with an opaque 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	req := c.Request()
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).With(
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	var writeErr error
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}
		writeErr = response.AppError(c, appErr)
	} else if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message, isText := httpErr.Message.(string)
		if !isText {
			message = http.StatusText(httpErr.Code)
		}
		writeErr = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)
	} else {
		logger.Error("Unhandled error", slog.Any("error", err))
		writeErr = response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later", nil)
	}

	if writeErr != nil {
		logger.Warn("Failed to write error response", slog.Any("error", writeErr))
	}
}
