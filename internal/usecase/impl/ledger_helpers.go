package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/lifecycle"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"
	"ledger/internal/errors"
	"ledger/internal/usecase"

	"github.com/google/uuid"
)

// storeError passes domain errors through and hides everything else behind
// StoreUnavailable.
func storeError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	return domainerrors.NewStoreUnavailableError(err, operation)
}

// optionalText trims s and maps blank to nil.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

// claimCheck authorizes an operation on a claim.
type claimCheck func(claim *entity.LocationClaim) error

// ownerOrAdmin admits the owner and any administrator.
func ownerOrAdmin(identity entity.Identity) claimCheck {
	return func(claim *entity.LocationClaim) error {
		if identity.Owns(claim.OwnerID) || identity.IsAdmin() {
			return nil
		}

		return domainerrors.ErrNotClaimOwner
	}
}

// ownerOnly admits the owner alone. Event codes are the owner's business.
func ownerOnly(identity entity.Identity) claimCheck {
	return func(claim *entity.LocationClaim) error {
		if identity.Owns(claim.OwnerID) {
			return nil
		}

		return domainerrors.ErrNotClaimOwner
	}
}

var errClaimInactive = domainerrors.ErrClaimNotFound.WithDetails("claim is not active")

// normalizeClaimInput trims the input and reports blank required fields.
func normalizeClaimInput(input *usecase.ClaimLocationInput) (*usecase.ClaimLocationInput, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError(
			domainerrors.FieldError{Field: "name", Message: "is required"},
			domainerrors.FieldError{Field: "location", Message: "is required"},
		)
	}

	normalized := &usecase.ClaimLocationInput{
		Name:          strings.TrimSpace(input.Name),
		Location:      entity.NormalizeLocation(input.Location),
		ContactNumber: optionalText(input.ContactNumber),
		Description:   optionalText(input.Description),
	}

	var fields []domainerrors.FieldError
	if normalized.Name == "" {
		fields = append(fields, domainerrors.FieldError{Field: "name", Message: "is required"})
	}
	if normalized.Location == "" {
		fields = append(fields, domainerrors.FieldError{Field: "location", Message: "is required"})
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields...)
	}

	return normalized, nil
}

// createClaim inserts an active claim unless the location is held. It runs
// inside the caller's transaction.
func createClaim(ctx context.Context, claims repository.ClaimRepository, ownerID uuid.UUID, input *usecase.ClaimLocationInput) (*entity.LocationClaim, error) {
	_, err := claims.FindActiveClaimByLocation(ctx, input.Location)
	switch {
	case err == nil:
		return nil, domainerrors.ErrLocationAlreadyClaimed.WithDetails(input.Location)
	case !errors.Is(err, repository.ErrClaimNotFound):
		return nil, errors.Wrap(err, "failed to look up active claim")
	}

	claim := &entity.LocationClaim{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Name:          input.Name,
		Location:      input.Location,
		ContactNumber: input.ContactNumber,
		Description:   input.Description,
		State:         lifecycle.Active(),
	}
	if err := claims.CreateClaim(ctx, claim); err != nil {
		if errors.Is(err, repository.ErrActiveLocationConflict) {
			return nil, domainerrors.ErrLocationAlreadyClaimed.WithDetails(input.Location)
		}

		return nil, errors.Wrap(err, "failed to create claim")
	}

	return claim, nil
}

// releaseClaim deactivates a locked, active claim and its codes inside the
// caller's transaction.
func releaseClaim(ctx context.Context, factory repository.RepositoryFactory, claimID uuid.UUID, at time.Time) (int64, error) {
	if err := factory.NewClaimRepository().DeactivateClaim(ctx, claimID, at); err != nil {
		if errors.Is(err, repository.ErrClaimNotFound) {
			return 0, errClaimInactive
		}

		return 0, errors.Wrap(err, "failed to deactivate claim")
	}

	deactivated, err := factory.NewEventCodeRepository().DeactivateCodesByClaim(ctx, claimID, at)
	if err != nil {
		return 0, errors.Wrap(err, "failed to deactivate event codes")
	}

	return deactivated, nil
}

// eventFeed publishes audit events after commit. Publish failures are logged
// and never fail the operation.
type eventFeed struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (f eventFeed) publish(ctx context.Context, event *service.LedgerEvent) {
	if f.publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	if err := f.publisher.Publish(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, f.logger).Warn("Failed to publish ledger event",
			slog.String("type", string(event.Type)),
			slog.String("claim_id", event.ClaimID),
			slog.Any("error", err),
		)
	}
}

func claimEvent(eventType service.LedgerEventType, accountID uuid.UUID, claim *entity.LocationClaim, at time.Time) *service.LedgerEvent {
	return &service.LedgerEvent{
		Type:       eventType,
		AccountID:  accountID.String(),
		ClaimID:    claim.ID.String(),
		Location:   claim.Location,
		OccurredAt: at.UTC(),
	}
}
