package errors

import (
	"net/http"
	"strings"

	"ledger/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details. The copy still matches the
// original under errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same error code.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return other.errorCode == e.errorCode
}

// Claim and event code errors
var (
	ErrLocationAlreadyClaimed = NewBaseError(
		http.StatusConflict,
		"LOCATION_ALREADY_CLAIMED",
		"location is already claimed by an active organization",
		"",
	)

	ErrClaimNotFound = NewBaseError(
		http.StatusNotFound,
		"CLAIM_NOT_FOUND",
		"claim not found",
		"",
	)

	ErrNotClaimOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_CLAIM_OWNER",
		"claim belongs to another account",
		"",
	)

	ErrInvalidOrExpiredCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OR_EXPIRED_CODE",
		"invalid or expired event code",
		"",
	)

	ErrSelfRatingForbidden = NewBaseError(
		http.StatusForbidden,
		"SELF_RATING_FORBIDDEN",
		"organizations cannot rate their own claim",
		"",
	)

	ErrDuplicateRating = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_RATING",
		"this event code has already been rated by the account",
		"",
	)

	ErrScoreOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"SCORE_OUT_OF_RANGE",
		"score must be an integer between 1 and 5",
		"",
	)

	ErrCodeCollision = NewBaseError(
		http.StatusConflict,
		"CODE_COLLISION",
		"could not allocate a unique event code, try again",
		"",
	)

	ErrTemplateNotFound = NewBaseError(
		http.StatusNotFound,
		"TEMPLATE_NOT_FOUND",
		"task template not found",
		"",
	)
)

// Account errors
var (
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"account not found",
		"",
	)

	ErrAccountAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_ALREADY_EXISTS",
		"email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"role is not valid",
		"",
	)
)

// General errors
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is ErrValidationFailed carrying per-field errors.
type ValidationError struct {
	fields []FieldError
}

// NewValidationError creates a validation failure for the given fields.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{fields: fields}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return ErrValidationFailed.Message() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) HTTPCode() int     { return ErrValidationFailed.HTTPCode() }
func (e *ValidationError) ErrorCode() string { return ErrValidationFailed.ErrorCode() }
func (e *ValidationError) Message() string   { return ErrValidationFailed.Message() }
func (e *ValidationError) Details() string   { return "" }

// Fields returns the rejected fields.
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}

// Is lets callers match ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// StoreUnavailableError wraps any persistence failure. The cause is kept
// for logging and never shown to callers.
type StoreUnavailableError struct {
	err       error
	operation string
}

// NewStoreUnavailableError creates a store failure for the named operation.
func NewStoreUnavailableError(err error, operation string) AppError {
	return &StoreUnavailableError{
		err:       err,
		operation: operation,
	}
}

// Error implements the error interface
func (e *StoreUnavailableError) Error() string {
	return errors.Wrapf(e.err, "store unavailable during %s", e.operation).Error()
}

// Unwrap returns the underlying persistence error.
func (e *StoreUnavailableError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StoreUnavailableError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *StoreUnavailableError) ErrorCode() string {
	return "STORE_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *StoreUnavailableError) Message() string {
	return "service temporarily unavailable"
}

// Details returns the failed operation name
func (e *StoreUnavailableError) Details() string {
	return e.operation
}
