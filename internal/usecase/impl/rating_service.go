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
	"go.uber.org/fx"
)

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ClaimRepo  repository.ClaimRepository
	RatingRepo repository.RatingRepository
	Publisher  service.EventPublisher `optional:"true"`
	Logger     *slog.Logger
}

type ratingService struct {
	txManager  repository.TransactionManager
	claimRepo  repository.ClaimRepository
	ratingRepo repository.RatingRepository
	events     eventFeed
	logger     *slog.Logger
	now        func() time.Time
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager:  params.TxManager,
		claimRepo:  params.ClaimRepo,
		ratingRepo: params.RatingRepo,
		events:     eventFeed{publisher: params.Publisher, logger: params.Logger},
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RedeemCode verifies the code and stores the rating in one transaction. The
// code row is share-locked so a concurrent issue or release cannot interleave.
func (srv *ratingService) RedeemCode(ctx context.Context, identity entity.Identity, input *usecase.RedeemCodeInput) (*usecase.RedeemCodeOutput, error) {
	if input == nil || !entity.ScoreInRange(input.Score) {
		return nil, domainerrors.ErrScoreOutOfRange
	}

	value := strings.TrimSpace(input.Code)
	if value == "" {
		return nil, domainerrors.ErrInvalidOrExpiredCode
	}

	now := srv.now()

	var (
		rating *entity.Rating
		claim  *entity.LocationClaim
	)
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		code, err := factory.NewEventCodeRepository().FindLatestByCode(ctx, value)
		if err != nil {
			if errors.Is(err, repository.ErrEventCodeNotFound) {
				return domainerrors.ErrInvalidOrExpiredCode
			}

			return errors.Wrap(err, "failed to find event code")
		}

		owner, err := factory.NewClaimRepository().FindClaimByID(ctx, code.ClaimID)
		if err != nil {
			if errors.Is(err, repository.ErrClaimNotFound) {
				return domainerrors.ErrInvalidOrExpiredCode
			}

			return errors.Wrap(err, "failed to find claim")
		}

		if identity.Owns(owner.OwnerID) {
			return domainerrors.ErrSelfRatingForbidden
		}
		if !code.Redeemable(now) || !owner.Active() {
			return domainerrors.ErrInvalidOrExpiredCode
		}

		ratings := factory.NewRatingRepository()
		exists, err := ratings.RatingExists(ctx, code.ID, identity.AccountID)
		if err != nil {
			return errors.Wrap(err, "failed to check rating")
		}
		if exists {
			return domainerrors.ErrDuplicateRating
		}

		created := &entity.Rating{
			ID:          uuid.New(),
			RaterID:     identity.AccountID,
			ClaimID:     owner.ID,
			EventCodeID: code.ID,
			Score:       input.Score,
			Comment:     optionalText(input.Comment),
			CreatedAt:   now,
		}
		if err := ratings.CreateRating(ctx, created); err != nil {
			if errors.Is(err, repository.ErrDuplicateRating) {
				return domainerrors.ErrDuplicateRating
			}

			return errors.Wrap(err, "failed to create rating")
		}
		rating, claim = created, owner

		return nil
	})
	if err != nil {
		return nil, storeError(err, "redeem event code")
	}

	srv.log(ctx).Info("Rating submitted",
		slog.String("rating_id", rating.ID.String()),
		slog.String("claim_id", claim.ID.String()),
		slog.Int("score", rating.Score),
	)
	event := claimEvent(service.EventRatingSubmitted, identity.AccountID, claim, now)
	event.Attributes = map[string]string{
		"rating_id": rating.ID.String(),
		"score":     strconv.Itoa(rating.Score),
	}
	srv.events.publish(ctx, event)

	return &usecase.RedeemCodeOutput{
		RatingID:  rating.ID,
		Score:     rating.Score,
		ClaimName: claim.Name,
		Location:  claim.Location,
	}, nil
}

func (srv *ratingService) ListClaimRatings(ctx context.Context, claimID uuid.UUID) (*usecase.ClaimRatings, error) {
	if _, err := srv.claimRepo.FindClaimByID(ctx, claimID); err != nil {
		if errors.Is(err, repository.ErrClaimNotFound) {
			return nil, domainerrors.ErrClaimNotFound
		}

		return nil, storeError(err, "find claim")
	}

	ratings, err := srv.ratingRepo.ListRatingsByClaim(ctx, claimID)
	if err != nil {
		return nil, storeError(err, "list ratings")
	}

	stats, err := srv.ratingRepo.RatingStatsByClaim(ctx, claimID)
	if err != nil {
		return nil, storeError(err, "rating stats")
	}

	return &usecase.ClaimRatings{
		ClaimID: claimID,
		Stats:   stats,
		Ratings: ratings,
	}, nil
}
