// Package validator decodes and validates request bodies for the API.
package validator

import (
	"reflect"
	"strings"

	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator adapts go-playground/validator to echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports json field names and knows the
// ledger specific tags.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	// notblank rejects whitespace-only strings.
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator. Failures come back as a
// *domainerrors.ValidationError.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.WithStack(err)
	}

	fields := make([]domainerrors.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, domainerrors.FieldError{
			Field:   fieldPath(fieldErr.Namespace()),
			Message: describe(fieldErr),
		})
	}

	return domainerrors.NewValidationError(fields...)
}

// Result is the outcome of decoding a request: a value, or the reasons the
// body was rejected.
type Result[T any] struct {
	Value  T
	Fields []domainerrors.FieldError
}

// OK reports whether the body decoded and validated cleanly.
func (r Result[T]) OK() bool {
	return len(r.Fields) == 0
}

// Err returns the rejection as a ValidationError, or nil.
func (r Result[T]) Err() error {
	if r.OK() {
		return nil
	}

	return domainerrors.NewValidationError(r.Fields...)
}

// Bind decodes the request into T and validates it. Malformed bodies are
// reported as a single "body" field; any other failure is returned as err.
func Bind[T any](c echo.Context) (Result[T], error) {
	var result Result[T]

	if err := c.Bind(&result.Value); err != nil {
		if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok && httpErr.Code < 500 {
			result.Fields = []domainerrors.FieldError{{Field: "body", Message: "is not valid JSON for this request"}}

			return result, nil
		}

		return result, errors.WithStack(err)
	}

	if err := c.Validate(&result.Value); err != nil {
		validationErr, ok := errors.AsType[*domainerrors.ValidationError](err)
		if !ok {
			return result, err
		}
		result.Fields = validationErr.Fields()
	}

	return result, nil
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// fieldPath drops the struct name from a validator namespace.
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return path
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required", "notblank":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fieldErr.Kind() == reflect.String {
			return "must be at least " + fieldErr.Param() + " characters"
		}

		return "must be at least " + fieldErr.Param()
	case "max":
		if fieldErr.Kind() == reflect.String {
			return "must be at most " + fieldErr.Param() + " characters"
		}

		return "must be at most " + fieldErr.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fieldErr.Param(), " ", ", ")
	case "url", "http_url":
		return "must be a valid URL"
	case "uuid", "uuid4":
		return "must be a valid id"
	default:
		return "is invalid"
	}
}
