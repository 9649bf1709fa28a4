package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"
	"ledger/internal/errors"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"
	"go.uber.org/fx"
)

// ClaimServiceParams holds dependencies for ClaimService, injected by Fx.
type ClaimServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ClaimRepo repository.ClaimRepository
	Publisher service.EventPublisher `optional:"true"`
	Logger    *slog.Logger
}

type claimService struct {
	txManager repository.TransactionManager
	claimRepo repository.ClaimRepository
	events    eventFeed
	logger    *slog.Logger
	now       func() time.Time
}

// NewClaimService is the constructor for claimService.
func NewClaimService(params ClaimServiceParams) usecase.ClaimUsecase {
	return &claimService{
		txManager: params.TxManager,
		claimRepo: params.ClaimRepo,
		events:    eventFeed{publisher: params.Publisher, logger: params.Logger},
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *claimService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *claimService) ClaimLocation(ctx context.Context, identity entity.Identity, input *usecase.ClaimLocationInput) (*entity.LocationClaim, error) {
	if identity.Role != entity.RoleOrganization {
		return nil, domainerrors.ErrForbidden.WithDetails("only organizations can claim locations")
	}

	normalized, err := normalizeClaimInput(input)
	if err != nil {
		return nil, err
	}

	var claim *entity.LocationClaim
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		created, err := createClaim(ctx, factory.NewClaimRepository(), identity.AccountID, normalized)
		if err != nil {
			return err
		}
		claim = created

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrLocationAlreadyClaimed) {
			srv.log(ctx).Info("Location already claimed", slog.String("location", normalized.Location))
		}

		return nil, storeError(err, "claim location")
	}

	srv.log(ctx).Info("Location claimed",
		slog.String("claim_id", claim.ID.String()),
		slog.String("location", claim.Location),
	)
	srv.events.publish(ctx, claimEvent(service.EventClaimCreated, identity.AccountID, claim, claim.CreatedAt))

	return claim, nil
}

func (srv *claimService) ReleaseLocation(ctx context.Context, identity entity.Identity, claimID uuid.UUID) error {
	now := srv.now()

	var (
		claim       *entity.LocationClaim
		deactivated int64
	)
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		locked, err := lockActiveClaim(ctx, factory.NewClaimRepository(), claimID, ownerOrAdmin(identity))
		if err != nil {
			return err
		}

		deactivated, err = releaseClaim(ctx, factory, locked.ID, now)
		if err != nil {
			return err
		}
		claim = locked

		return nil
	})
	if err != nil {
		return storeError(err, "release location")
	}

	srv.log(ctx).Info("Location released",
		slog.String("claim_id", claimID.String()),
		slog.Int64("codes_deactivated", deactivated),
	)
	event := claimEvent(service.EventClaimReleased, identity.AccountID, claim, now)
	event.Attributes = map[string]string{"codes_deactivated": strconv.FormatInt(deactivated, 10)}
	srv.events.publish(ctx, event)

	return nil
}

// lockActiveClaim locks the claim row, then checks that the caller may modify
// it and that it is still active.
func lockActiveClaim(ctx context.Context, claims repository.ClaimRepository, claimID uuid.UUID, authorize claimCheck) (*entity.LocationClaim, error) {
	claim, err := claims.LockClaimByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, repository.ErrClaimNotFound) {
			return nil, domainerrors.ErrClaimNotFound
		}

		return nil, errors.Wrap(err, "failed to lock claim")
	}

	if err := authorize(claim); err != nil {
		return nil, err
	}
	if !claim.Active() {
		return nil, errClaimInactive
	}

	return claim, nil
}

func (srv *claimService) ListActiveClaims(ctx context.Context, input *usecase.ListClaimsInput) ([]*entity.ClaimSummary, error) {
	filter := entity.ClaimFilter{}
	query := ""
	if input != nil {
		filter.OwnerID = input.OwnerID
		query = strings.TrimSpace(input.Query)
	}

	claims, err := srv.claimRepo.ListActiveClaims(ctx, filter)
	if err != nil {
		return nil, storeError(err, "list active claims")
	}

	if query == "" {
		return claims, nil
	}

	return matchClaims(claims, query), nil
}

// claimSource exposes claims to the fuzzy matcher.
type claimSource []*entity.ClaimSummary

func (s claimSource) String(i int) string {
	return strings.ToLower(s[i].Name + " " + s[i].Location)
}

func (s claimSource) Len() int {
	return len(s)
}

// matchClaims keeps the claims whose name or location fuzzily matches the
// query, best match first.
func matchClaims(claims []*entity.ClaimSummary, query string) []*entity.ClaimSummary {
	matches := fuzzy.FindFrom(strings.ToLower(query), claimSource(claims))

	out := make([]*entity.ClaimSummary, 0, len(matches))
	for _, match := range matches {
		out = append(out, claims[match.Index])
	}

	return out
}

func (srv *claimService) GetClaim(ctx context.Context, claimID uuid.UUID) (*entity.ClaimSummary, error) {
	claims, err := srv.claimRepo.ListActiveClaims(ctx, entity.ClaimFilter{ClaimID: &claimID})
	if err != nil {
		return nil, storeError(err, "get claim")
	}
	if len(claims) == 0 {
		return nil, domainerrors.ErrClaimNotFound
	}

	return claims[0], nil
}

// UpdateClaim changes the contact number and description. A nil field keeps
// its value; a blank one clears it.
func (srv *claimService) UpdateClaim(ctx context.Context, identity entity.Identity, claimID uuid.UUID, input *usecase.UpdateClaimInput) (*entity.LocationClaim, error) {
	if input == nil {
		input = &usecase.UpdateClaimInput{}
	}

	var claim *entity.LocationClaim
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		claims := factory.NewClaimRepository()
		locked, err := lockActiveClaim(ctx, claims, claimID, ownerOrAdmin(identity))
		if err != nil {
			return err
		}

		if input.ContactNumber != nil {
			locked.ContactNumber = optionalText(input.ContactNumber)
		}
		if input.Description != nil {
			locked.Description = optionalText(input.Description)
		}

		if err := claims.UpdateClaimDetails(ctx, locked); err != nil {
			return errors.Wrap(err, "failed to update claim")
		}
		claim = locked

		return nil
	})
	if err != nil {
		return nil, storeError(err, "update claim")
	}

	return claim, nil
}

func (srv *claimService) ListMyClaims(ctx context.Context, identity entity.Identity) ([]*entity.ClaimSummary, error) {
	return srv.ListActiveClaims(ctx, &usecase.ListClaimsInput{OwnerID: &identity.AccountID})
}
