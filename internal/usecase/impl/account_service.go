// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

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

const defaultMinPassword = 8

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	claimRepo    repository.ClaimRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	events       eventFeed
	minPassword  int
	logger       *slog.Logger
	now          func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	ClaimRepo    repository.ClaimRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	minPassword := defaultMinPassword
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPassword > 0 {
		minPassword = params.Config.Auth.MinPassword
	}

	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		claimRepo:    params.ClaimRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		events:       eventFeed{publisher: params.Publisher, logger: params.Logger},
		minPassword:  minPassword,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and, for an organization that asks for one,
// its first claim. Both land in one transaction.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if input == nil {
		input = &usecase.RegisterInput{}
	}

	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	role := input.Role
	if role == "" {
		role = entity.RoleViewer
	}

	var fields []domainerrors.FieldError
	if name == "" {
		fields = append(fields, domainerrors.FieldError{Field: "name", Message: "is required"})
	}
	if email == "" {
		fields = append(fields, domainerrors.FieldError{Field: "email", Message: "is required"})
	}
	if utf8.RuneCountInString(input.Password) < srv.minPassword {
		fields = append(fields, domainerrors.FieldError{
			Field:   "password",
			Message: "must be at least " + strconv.Itoa(srv.minPassword) + " characters",
		})
	}
	if input.Claim != nil && role != entity.RoleOrganization {
		fields = append(fields, domainerrors.FieldError{Field: "claim", Message: "only organizations can claim a location"})
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields...)
	}

	if !role.SelfAssignable() {
		return nil, domainerrors.ErrInvalidRole.WithDetails(role.String())
	}

	var claimInput *usecase.ClaimLocationInput
	if input.Claim != nil {
		normalized, err := normalizeClaimInput(input.Claim)
		if err != nil {
			return nil, err
		}
		claimInput = normalized
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	now := srv.now()
	account := &entity.Account{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		State:        lifecycle.Active(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var claim *entity.LocationClaim
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewAccountRepository().CreateAccount(ctx, account); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrAccountAlreadyExists
			}

			return errors.Wrap(err, "failed to create account")
		}

		if claimInput == nil {
			return nil
		}

		created, err := createClaim(ctx, factory.NewClaimRepository(), account.ID, claimInput)
		if err != nil {
			return err
		}
		claim = created

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, storeError(err, "register account")
	}

	srv.log(ctx).Info("Account registered",
		slog.String("account_id", account.ID.String()),
		slog.String("role", role.String()),
	)
	if claim != nil {
		srv.events.publish(ctx, claimEvent(service.EventClaimCreated, account.ID, claim, claim.CreatedAt))
	}

	return srv.authenticate(ctx, account)
}

// Login verifies the password. Unknown emails, inactive accounts and wrong
// passwords are indistinguishable to the caller.
func (srv *accountService) Login(ctx context.Context, email, password string) (*usecase.AuthOutput, error) {
	account, err := srv.accountRepo.FindAccountByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, storeError(err, "find account")
	}

	if !account.Active() || !srv.hasher.Check(password, account.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.String("account_id", account.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.authenticate(ctx, account)
}

func (srv *accountService) authenticate(ctx context.Context, account *entity.Account) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.GenerateAccessToken(account.ID, account.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	claims, err := srv.ownedClaims(ctx, account)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{
		Account:     account,
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Claims:      claims,
	}, nil
}

func (srv *accountService) Profile(ctx context.Context, identity entity.Identity) (*usecase.ProfileOutput, error) {
	account, err := srv.accountRepo.FindAccountByID(ctx, identity.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, storeError(err, "find account")
	}
	if !account.Active() {
		return nil, domainerrors.ErrUnauthorized.WithDetails("account is deactivated")
	}

	claims, err := srv.ownedClaims(ctx, account)
	if err != nil {
		return nil, err
	}

	return &usecase.ProfileOutput{Account: account, Claims: claims}, nil
}

func (srv *accountService) ownedClaims(ctx context.Context, account *entity.Account) ([]*entity.ClaimSummary, error) {
	claims, err := srv.claimRepo.ListActiveClaims(ctx, entity.ClaimFilter{OwnerID: &account.ID})
	if err != nil {
		return nil, storeError(err, "list owned claims")
	}

	return claims, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
