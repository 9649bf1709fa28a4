package repository

import (
	"context"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrEventCodeNotFound is returned when no event code matches.
	ErrEventCodeNotFound = errors.New("event code not found")
	// ErrActiveCodeConflict is returned when an active code already uses the value
	// or the claim already has an active code.
	ErrActiveCodeConflict = errors.New("active event code conflict")
)

// EventCodeRepository persists event codes.
type EventCodeRepository interface {
	CreateEventCode(ctx context.Context, code *entity.EventCode) error

	FindEventCodeByID(ctx context.Context, id uuid.UUID) (*entity.EventCode, error)

	// FindLatestByCode returns the code with the given value, preferring an
	// active one and then the most recently issued. The row stays share-locked
	// until the transaction ends.
	FindLatestByCode(ctx context.Context, value string) (*entity.EventCode, error)

	// FindActiveByClaim returns the active code of a claim, expired or not.
	FindActiveByClaim(ctx context.Context, claimID uuid.UUID) (*entity.EventCode, error)

	// FindActiveByCode returns the active code using the value, expired or not.
	// At most one active code holds a value.
	FindActiveByCode(ctx context.Context, value string) (*entity.EventCode, error)

	// DeactivateCodesByClaim deactivates every active code of the claim and
	// returns how many changed.
	DeactivateCodesByClaim(ctx context.Context, claimID uuid.UUID, at time.Time) (int64, error)

	DeactivateEventCode(ctx context.Context, id uuid.UUID, at time.Time) error

	// ListCodesByClaim returns every code of the claim, newest first.
	ListCodesByClaim(ctx context.Context, claimID uuid.UUID) ([]*entity.EventCode, error)
}
