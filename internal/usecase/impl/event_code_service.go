package impl

import (
	"context"
	"log/slog"
	"time"

	"ledger/config"
	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/lifecycle"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"
	"ledger/internal/errors"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var errNoActiveCode = domainerrors.ErrNotFound.WithDetails("claim has no active event code")

// EventCodeServiceParams holds dependencies for EventCodeService, injected by Fx.
type EventCodeServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ClaimRepo     repository.ClaimRepository
	EventCodeRepo repository.EventCodeRepository
	Generator     service.CodeGenerator
	QRCode        service.QRCodeService
	Publisher     service.EventPublisher `optional:"true"`
	Config        *config.Config
	Logger        *slog.Logger
}

type eventCodeService struct {
	txManager     repository.TransactionManager
	claimRepo     repository.ClaimRepository
	eventCodeRepo repository.EventCodeRepository
	generator     service.CodeGenerator
	qrcode        service.QRCodeService
	events        eventFeed
	codeTTL       time.Duration
	attempts      int
	logger        *slog.Logger
	now           func() time.Time
}

// NewEventCodeService is the constructor for eventCodeService.
func NewEventCodeService(params EventCodeServiceParams) usecase.EventCodeUsecase {
	return &eventCodeService{
		txManager:     params.TxManager,
		claimRepo:     params.ClaimRepo,
		eventCodeRepo: params.EventCodeRepo,
		generator:     params.Generator,
		qrcode:        params.QRCode,
		events:        eventFeed{publisher: params.Publisher, logger: params.Logger},
		codeTTL:       params.Config.Ledger.CodeTTL,
		attempts:      params.Config.Ledger.CodeIssueAttempts,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *eventCodeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueCode runs with the claim row locked: the previous code is superseded
// and the new one inserted in the same transaction.
func (srv *eventCodeService) IssueCode(ctx context.Context, identity entity.Identity, claimID uuid.UUID) (*entity.EventCode, error) {
	now := srv.now()

	var (
		code  *entity.EventCode
		claim *entity.LocationClaim
	)
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		locked, err := lockActiveClaim(ctx, factory.NewClaimRepository(), claimID, ownerOnly(identity))
		if err != nil {
			return err
		}

		codes := factory.NewEventCodeRepository()
		if _, err := codes.DeactivateCodesByClaim(ctx, locked.ID, now); err != nil {
			return errors.Wrap(err, "failed to supersede event codes")
		}

		value, err := srv.allocateCode(ctx, codes, now)
		if err != nil {
			return err
		}

		issued := &entity.EventCode{
			ID:        uuid.New(),
			ClaimID:   locked.ID,
			Code:      value,
			IssuedAt:  now,
			ExpiresAt: now.Add(srv.codeTTL),
			State:     lifecycle.Active(),
		}
		if err := codes.CreateEventCode(ctx, issued); err != nil {
			if errors.Is(err, repository.ErrActiveCodeConflict) {
				return domainerrors.ErrCodeCollision
			}

			return errors.Wrap(err, "failed to create event code")
		}
		code, claim = issued, locked

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrCodeCollision) {
			srv.log(ctx).Warn("Event code collision", slog.String("claim_id", claimID.String()))
		}

		return nil, storeError(err, "issue event code")
	}

	srv.log(ctx).Info("Event code issued",
		slog.String("claim_id", claim.ID.String()),
		slog.String("code_id", code.ID.String()),
		slog.Time("expires_at", code.ExpiresAt),
	)
	event := claimEvent(service.EventCodeIssued, identity.AccountID, claim, now)
	event.Attributes = map[string]string{
		"code_id":    code.ID.String(),
		"expires_at": code.ExpiresAt.UTC().Format(time.RFC3339),
	}
	srv.events.publish(ctx, event)

	return code, nil
}

// allocateCode draws values until one is free among active codes. An active
// code that already expired gives up its value.
func (srv *eventCodeService) allocateCode(ctx context.Context, codes repository.EventCodeRepository, now time.Time) (string, error) {
	for range srv.attempts {
		value, err := srv.generator.Generate()
		if err != nil {
			return "", errors.Wrap(err, "failed to generate event code")
		}

		holder, err := codes.FindActiveByCode(ctx, value)
		if errors.Is(err, repository.ErrEventCodeNotFound) {
			return value, nil
		}
		if err != nil {
			return "", errors.Wrap(err, "failed to check event code")
		}

		if !holder.Redeemable(now) {
			if err := codes.DeactivateEventCode(ctx, holder.ID, now); err != nil {
				return "", errors.Wrap(err, "failed to retire expired event code")
			}

			return value, nil
		}
	}

	return "", domainerrors.ErrCodeCollision
}

func (srv *eventCodeService) EndCode(ctx context.Context, identity entity.Identity, codeID uuid.UUID) error {
	now := srv.now()

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		codes := factory.NewEventCodeRepository()
		code, err := codes.FindEventCodeByID(ctx, codeID)
		if err != nil {
			if errors.Is(err, repository.ErrEventCodeNotFound) {
				return domainerrors.ErrNotFound.WithDetails("event code not found")
			}

			return errors.Wrap(err, "failed to find event code")
		}

		claim, err := factory.NewClaimRepository().LockClaimByID(ctx, code.ClaimID)
		if err != nil {
			return errors.Wrap(err, "failed to lock claim")
		}
		if err := ownerOnly(identity)(claim); err != nil {
			return err
		}

		if err := codes.DeactivateEventCode(ctx, code.ID, now); err != nil {
			if errors.Is(err, repository.ErrEventCodeNotFound) {
				return domainerrors.ErrInvalidOrExpiredCode.WithDetails("event code is not active")
			}

			return errors.Wrap(err, "failed to end event code")
		}

		return nil
	})
	if err != nil {
		return storeError(err, "end event code")
	}

	srv.log(ctx).Info("Event code ended", slog.String("code_id", codeID.String()))

	return nil
}

func (srv *eventCodeService) ActiveCode(ctx context.Context, identity entity.Identity, claimID uuid.UUID) (*entity.EventCode, error) {
	code, _, err := srv.activeCode(ctx, identity, claimID)
	if err != nil {
		return nil, err
	}

	return code, nil
}

func (srv *eventCodeService) ActiveCodeQR(ctx context.Context, identity entity.Identity, claimID uuid.UUID) ([]byte, error) {
	code, claim, err := srv.activeCode(ctx, identity, claimID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.EventCodePNG(code, claim)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render event code QR")
	}

	return png, nil
}

func (srv *eventCodeService) activeCode(ctx context.Context, identity entity.Identity, claimID uuid.UUID) (*entity.EventCode, *entity.LocationClaim, error) {
	claim, err := srv.claimRepo.FindClaimByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, repository.ErrClaimNotFound) {
			return nil, nil, domainerrors.ErrClaimNotFound
		}

		return nil, nil, storeError(err, "find claim")
	}
	if err := ownerOnly(identity)(claim); err != nil {
		return nil, nil, err
	}
	if !claim.Active() {
		return nil, nil, errClaimInactive
	}

	code, err := srv.eventCodeRepo.FindActiveByClaim(ctx, claim.ID)
	if err != nil {
		if errors.Is(err, repository.ErrEventCodeNotFound) {
			return nil, nil, errNoActiveCode
		}

		return nil, nil, storeError(err, "find active event code")
	}
	if !code.Redeemable(srv.now()) {
		return nil, nil, errNoActiveCode
	}

	return code, claim, nil
}
