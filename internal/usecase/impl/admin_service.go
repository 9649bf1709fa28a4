package impl

import (
	"context"
	"log/slog"
	"strconv"
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

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Publisher   service.EventPublisher `optional:"true"`
	Logger      *slog.Logger
}

type adminService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	events      eventFeed
	logger      *slog.Logger
	now         func() time.Time
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		events:      eventFeed{publisher: params.Publisher, logger: params.Logger},
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) ListAccounts(ctx context.Context) (*usecase.AccountListing, error) {
	accounts, err := srv.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, storeError(err, "list accounts")
	}

	byRole := make(map[entity.Role]int, len(entity.AllRoles()))
	for _, role := range entity.AllRoles() {
		byRole[role] = 0
	}
	for _, account := range accounts {
		byRole[account.Role]++
	}

	return &usecase.AccountListing{
		Accounts: accounts,
		Total:    len(accounts),
		ByRole:   byRole,
	}, nil
}

// UpdateRole assigns any known role. Administrators cannot change their own.
func (srv *adminService) UpdateRole(ctx context.Context, identity entity.Identity, accountID uuid.UUID, role entity.Role) (*entity.Account, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole.WithDetails(role.String())
	}
	if identity.Owns(accountID) {
		return nil, domainerrors.ErrForbidden.WithDetails("cannot change your own role")
	}

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		accounts := factory.NewAccountRepository()
		if err := accounts.UpdateAccountRole(ctx, accountID, role); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to update role")
		}

		updated, err := accounts.FindAccountByID(ctx, accountID)
		if err != nil {
			return errors.Wrap(err, "failed to reload account")
		}
		account = updated

		return nil
	})
	if err != nil {
		return nil, storeError(err, "update role")
	}

	srv.log(ctx).Info("Account role updated",
		slog.String("account_id", accountID.String()),
		slog.String("role", role.String()),
		slog.String("by", identity.AccountID.String()),
	)

	return account, nil
}

// DeactivateAccount deactivates the account and releases every active claim
// it holds, codes included, in one transaction.
func (srv *adminService) DeactivateAccount(ctx context.Context, identity entity.Identity, accountID uuid.UUID) error {
	if identity.Owns(accountID) {
		return domainerrors.ErrForbidden.WithDetails("cannot deactivate your own account")
	}

	now := srv.now()

	type released struct {
		claim *entity.LocationClaim
		codes int64
	}
	var releases []released

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewAccountRepository().DeactivateAccount(ctx, accountID, now); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to deactivate account")
		}

		claims := factory.NewClaimRepository()
		owned, err := claims.ListActiveClaims(ctx, entity.ClaimFilter{OwnerID: &accountID})
		if err != nil {
			return errors.Wrap(err, "failed to list owned claims")
		}

		for _, summary := range owned {
			locked, err := claims.LockClaimByID(ctx, summary.ID)
			if err != nil {
				return errors.Wrap(err, "failed to lock claim")
			}
			if !locked.Active() {
				continue
			}

			codes, err := releaseClaim(ctx, factory, locked.ID, now)
			if err != nil {
				return err
			}
			releases = append(releases, released{claim: locked, codes: codes})
		}

		return nil
	})
	if err != nil {
		return storeError(err, "deactivate account")
	}

	srv.log(ctx).Info("Account deactivated",
		slog.String("account_id", accountID.String()),
		slog.Int("claims_released", len(releases)),
	)
	for _, r := range releases {
		event := claimEvent(service.EventClaimReleased, identity.AccountID, r.claim, now)
		event.Attributes = map[string]string{"codes_deactivated": strconv.FormatInt(r.codes, 10)}
		srv.events.publish(ctx, event)
	}

	return nil
}
