package repository

import (
	"context"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrClaimNotFound is returned when a claim is not found.
	ErrClaimNotFound = errors.New("claim not found")
	// ErrActiveLocationConflict is returned when another active claim holds the location.
	ErrActiveLocationConflict = errors.New("location has an active claim")
)

// ClaimRepository persists location claims.
type ClaimRepository interface {
	// CreateClaim inserts an active claim. The store rejects a second active
	// claim on the same location with ErrActiveLocationConflict.
	CreateClaim(ctx context.Context, claim *entity.LocationClaim) error

	FindClaimByID(ctx context.Context, id uuid.UUID) (*entity.LocationClaim, error)

	// LockClaimByID reads the claim and holds a row lock until the
	// transaction ends.
	LockClaimByID(ctx context.Context, id uuid.UUID) (*entity.LocationClaim, error)

	// FindActiveClaimByLocation matches the location case-insensitively.
	FindActiveClaimByLocation(ctx context.Context, location string) (*entity.LocationClaim, error)

	// UpdateClaimDetails writes contact number and description.
	UpdateClaimDetails(ctx context.Context, claim *entity.LocationClaim) error

	DeactivateClaim(ctx context.Context, id uuid.UUID, at time.Time) error

	// ListActiveClaims returns active claims with rating statistics, newest first.
	ListActiveClaims(ctx context.Context, filter entity.ClaimFilter) ([]*entity.ClaimSummary, error)
}
