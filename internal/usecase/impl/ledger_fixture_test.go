package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"ledger/config"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/service"
	"ledger/internal/errors"
	"ledger/internal/infra/auth"
	"ledger/internal/infra/otp"
	"ledger/internal/infra/persistence/memory"
	"ledger/internal/infra/qrcode"
	mockSvc "ledger/internal/mocks/service"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth:   &config.AuthConfig{BcryptCost: 4, AccessTokenTTL: time.Hour, MinPassword: 8},
		Ledger: &config.LedgerConfig{CodeLength: 6, CodeTTL: 24 * time.Hour, CodeIssueAttempts: 5},
		QRCode: &config.QRCodeConfig{Size: 128, CacheSize: 8},
	}
	cfg.SecretKey.Access = "test-secret"

	return cfg
}

// eventRecorder collects published ledger events.
type eventRecorder struct {
	mu     sync.Mutex
	events []*service.LedgerEvent
}

func (r *eventRecorder) types() []service.LedgerEventType {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]service.LedgerEventType, 0, len(r.events))
	for _, event := range r.events {
		out = append(out, event.Type)
	}

	return out
}

// ledgerFixture wires every service over one in-memory store.
type ledgerFixture struct {
	cfg      *config.Config
	store    *memory.Store
	events   *eventRecorder
	claims   *claimService
	codes    *eventCodeService
	ratings  *ratingService
	accounts *accountService
	admin    *adminService
	tasks    *templateService
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	cfg := newTestConfig()
	logger := newDiscardLogger()
	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	claimRepo := memory.NewClaimRepository(store)

	recorder := &eventRecorder{}
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().
		Publish(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.LedgerEvent) error {
			recorder.mu.Lock()
			defer recorder.mu.Unlock()
			recorder.events = append(recorder.events, event)

			return nil
		}).
		Maybe()

	qr, err := qrcode.NewQRCodeService(cfg)
	require.NoError(t, err)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return &ledgerFixture{
		cfg:    cfg,
		store:  store,
		events: recorder,
		claims: NewClaimService(ClaimServiceParams{
			TxManager: txManager,
			ClaimRepo: claimRepo,
			Publisher: publisher,
			Logger:    logger,
		}).(*claimService),
		codes: NewEventCodeService(EventCodeServiceParams{
			TxManager:     txManager,
			ClaimRepo:     claimRepo,
			EventCodeRepo: memory.NewEventCodeRepository(store),
			Generator:     otp.NewGenerator(cfg),
			QRCode:        qr,
			Publisher:     publisher,
			Config:        cfg,
			Logger:        logger,
		}).(*eventCodeService),
		ratings: NewRatingService(RatingServiceParams{
			TxManager:  txManager,
			ClaimRepo:  claimRepo,
			RatingRepo: memory.NewRatingRepository(store),
			Publisher:  publisher,
			Logger:     logger,
		}).(*ratingService),
		accounts: NewAccountService(AccountServiceParams{
			TxManager:    txManager,
			AccountRepo:  memory.NewAccountRepository(store),
			ClaimRepo:    claimRepo,
			Hasher:       auth.NewBcryptHasher(cfg),
			TokenService: tokens,
			Publisher:    publisher,
			Config:       cfg,
			Logger:       logger,
		}).(*accountService),
		admin: NewAdminService(AdminServiceParams{
			TxManager:   txManager,
			AccountRepo: memory.NewAccountRepository(store),
			Publisher:   publisher,
			Logger:      logger,
		}).(*adminService),
		tasks: NewTemplateService(TemplateServiceParams{
			TxManager:    txManager,
			TemplateRepo: memory.NewTemplateRepository(store),
			Logger:       logger,
		}).(*templateService),
	}
}

// register creates an account with the given role and returns its identity.
// Admins cannot self-register, so they are promoted through the store.
func (f *ledgerFixture) register(t *testing.T, email string, role entity.Role) entity.Identity {
	t.Helper()

	registerRole := role
	if role == entity.RoleAdmin {
		registerRole = entity.RoleViewer
	}

	out, err := f.accounts.Register(context.Background(), &usecase.RegisterInput{
		Name:     email,
		Email:    email,
		Password: "correct-horse",
		Role:     registerRole,
	})
	require.NoError(t, err)

	if role == entity.RoleAdmin {
		require.NoError(t, memory.NewAccountRepository(f.store).UpdateAccountRole(context.Background(), out.Account.ID, role))
	}

	return entity.Identity{AccountID: out.Account.ID, Role: role}
}

func (f *ledgerFixture) claim(t *testing.T, owner entity.Identity, name, location string) *entity.LocationClaim {
	t.Helper()

	claim, err := f.claims.ClaimLocation(context.Background(), owner, &usecase.ClaimLocationInput{Name: name, Location: location})
	require.NoError(t, err)

	return claim
}

func (f *ledgerFixture) issue(t *testing.T, owner entity.Identity, claimID uuid.UUID) *entity.EventCode {
	t.Helper()

	code, err := f.codes.IssueCode(context.Background(), owner, claimID)
	require.NoError(t, err)

	return code
}

// setNow pins the clock of every service.
func (f *ledgerFixture) setNow(now time.Time) {
	clock := func() time.Time { return now }
	f.claims.now = clock
	f.codes.now = clock
	f.ratings.now = clock
	f.accounts.now = clock
	f.admin.now = clock
	f.tasks.now = clock
}

func requireStoreUnavailable(t *testing.T, err error) {
	t.Helper()

	_, ok := errors.AsType[*domainerrors.StoreUnavailableError](err)
	require.True(t, ok, "expected StoreUnavailable, got %v", err)
}

func ptr[T any](v T) *T {
	return &v
}
