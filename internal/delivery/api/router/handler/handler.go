// Package handler holds the echo handlers of the API.
package handler

import (
	"net/http"

	"ledger/internal/delivery/api/response"
	"ledger/internal/delivery/api/validator"
	domainerrors "ledger/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bind decodes and validates the body of c into T.
func bind[T any](c echo.Context) (T, error) {
	result, err := validator.Bind[T](c)
	if err != nil {
		return result.Value, err
	}

	return result.Value, result.Err()
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: name, Message: "must be a valid id"})
	}

	return id, nil
}

// queryID parses an optional id from the query string.
func queryID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: name, Message: "must be a valid id"})
	}

	return &id, nil
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
