package usecase

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// ClaimLocationInput carries the details of a new location claim.
type ClaimLocationInput struct {
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	ContactNumber *string `json:"contact_number,omitempty"`
	Description   *string `json:"description,omitempty"`
}

// UpdateClaimInput replaces the optional details of a claim.
type UpdateClaimInput struct {
	ContactNumber *string `json:"contact_number,omitempty"`
	Description   *string `json:"description,omitempty"`
}

// ListClaimsInput narrows ListActiveClaims. Query is matched fuzzily against
// the claim name and location.
type ListClaimsInput struct {
	Query   string
	OwnerID *uuid.UUID
}

// ClaimUsecase manages exclusive location claims.
type ClaimUsecase interface {
	// ClaimLocation creates an active claim for the caller. At most one active
	// claim exists per location.
	ClaimLocation(ctx context.Context, identity entity.Identity, input *ClaimLocationInput) (*entity.LocationClaim, error)

	// ReleaseLocation deactivates the claim and every event code issued for it.
	ReleaseLocation(ctx context.Context, identity entity.Identity, claimID uuid.UUID) error

	ListActiveClaims(ctx context.Context, input *ListClaimsInput) ([]*entity.ClaimSummary, error)

	GetClaim(ctx context.Context, claimID uuid.UUID) (*entity.ClaimSummary, error)

	UpdateClaim(ctx context.Context, identity entity.Identity, claimID uuid.UUID, input *UpdateClaimInput) (*entity.LocationClaim, error)

	ListMyClaims(ctx context.Context, identity entity.Identity) ([]*entity.ClaimSummary, error)
}
