package usecase

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// EventCodeUsecase issues and manages the one-time codes of a claim.
type EventCodeUsecase interface {
	// IssueCode supersedes the claim's active code with a fresh one.
	IssueCode(ctx context.Context, identity entity.Identity, claimID uuid.UUID) (*entity.EventCode, error)

	// EndCode deactivates a single code before it expires.
	EndCode(ctx context.Context, identity entity.Identity, codeID uuid.UUID) error

	// ActiveCode returns the claim's active, unexpired code.
	ActiveCode(ctx context.Context, identity entity.Identity, claimID uuid.UUID) (*entity.EventCode, error)

	// ActiveCodeQR renders the active code as a PNG QR image.
	ActiveCodeQR(ctx context.Context, identity entity.Identity, claimID uuid.UUID) ([]byte, error)
}
