package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/lifecycle"
	"ledger/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAccount(t *testing.T, store *Store, email string) *entity.Account {
	t.Helper()

	account := &entity.Account{Name: email, Email: email, Role: entity.RoleOrganization, State: lifecycle.Active()}
	require.NoError(t, NewAccountRepository(store).CreateAccount(context.Background(), account))

	return account
}

func seedClaim(t *testing.T, store *Store, owner uuid.UUID, location string) *entity.LocationClaim {
	t.Helper()

	claim := &entity.LocationClaim{OwnerID: owner, Name: "Org", Location: location, State: lifecycle.Active()}
	require.NoError(t, NewClaimRepository(store).CreateClaim(context.Background(), claim))

	return claim
}

func TestTransactionManager_RollbackDiscardsWrites(t *testing.T) {
	store := NewStore()
	owner := seedAccount(t, store, "org@example.com")
	tm := NewTransactionManager(store)

	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		claim := &entity.LocationClaim{OwnerID: owner.ID, Name: "Org", Location: "Springfield", State: lifecycle.Active()}
		require.NoError(t, f.NewClaimRepository().CreateClaim(context.Background(), claim))

		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	_, err = NewClaimRepository(store).FindActiveClaimByLocation(context.Background(), "springfield")
	require.ErrorIs(t, err, repository.ErrClaimNotFound)
}

func TestTransactionManager_CommitPublishesWrites(t *testing.T) {
	store := NewStore()
	owner := seedAccount(t, store, "org@example.com")
	tm := NewTransactionManager(store)

	var claimID uuid.UUID
	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		claim := &entity.LocationClaim{OwnerID: owner.ID, Name: "Org", Location: "Springfield", State: lifecycle.Active()}
		if err := f.NewClaimRepository().CreateClaim(context.Background(), claim); err != nil {
			return err
		}
		claimID = claim.ID

		return nil
	})
	require.NoError(t, err)

	claim, err := NewClaimRepository(store).FindClaimByID(context.Background(), claimID)
	require.NoError(t, err)
	assert.Equal(t, "Springfield", claim.Location)
}

func TestTransactionManager_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewTransactionManager(NewStore()).Execute(ctx, func(repository.RepositoryFactory) error {
		t.Fatal("fn must not run")

		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestClaimRepository_ActiveLocationIsCaseInsensitive(t *testing.T) {
	store := NewStore()
	owner := seedAccount(t, store, "org@example.com")
	first := seedClaim(t, store, owner.ID, "Springfield")
	repo := NewClaimRepository(store)

	err := repo.CreateClaim(context.Background(), &entity.LocationClaim{
		OwnerID: owner.ID, Name: "Other", Location: "  SPRINGFIELD ", State: lifecycle.Active(),
	})
	require.ErrorIs(t, err, repository.ErrActiveLocationConflict)

	require.NoError(t, repo.DeactivateClaim(context.Background(), first.ID, time.Now()))
	require.ErrorIs(t, repo.DeactivateClaim(context.Background(), first.ID, time.Now()), repository.ErrClaimNotFound)

	seedClaim(t, store, owner.ID, "springfield")
}

func TestClaimRepository_ListActiveClaimsWithStats(t *testing.T) {
	store := NewStore()
	owner := seedAccount(t, store, "org@example.com")
	rater := seedAccount(t, store, "rater@example.com")
	claim := seedClaim(t, store, owner.ID, "Springfield")
	released := seedClaim(t, store, owner.ID, "Shelbyville")
	require.NoError(t, NewClaimRepository(store).DeactivateClaim(context.Background(), released.ID, time.Now()))

	code := &entity.EventCode{ClaimID: claim.ID, Code: "123456", IssuedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour), State: lifecycle.Active()}
	require.NoError(t, NewEventCodeRepository(store).CreateEventCode(context.Background(), code))
	require.NoError(t, NewRatingRepository(store).CreateRating(context.Background(), &entity.Rating{
		RaterID: rater.ID, ClaimID: claim.ID, EventCodeID: code.ID, Score: 4,
	}))

	summaries, err := NewClaimRepository(store).ListActiveClaims(context.Background(), entity.ClaimFilter{OwnerID: &owner.ID})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, claim.ID, summaries[0].ID)
	assert.Equal(t, owner.Name, summaries[0].OwnerName)
	assert.Equal(t, entity.RatingStats{Count: 1, Average: 4}, summaries[0].Ratings)

	accounts, err := NewAccountRepository(store).ListAccounts(context.Background())
	require.NoError(t, err)
	for _, summary := range accounts {
		if summary.ID == owner.ID {
			assert.Equal(t, int64(1), summary.ActiveClaims)
			assert.Equal(t, int64(2), summary.TotalClaims)
		}
	}
}

func TestEventCodeRepository_ActiveUniqueness(t *testing.T) {
	store := NewStore()
	owner := seedAccount(t, store, "org@example.com")
	a := seedClaim(t, store, owner.ID, "A")
	b := seedClaim(t, store, owner.ID, "B")
	repo := NewEventCodeRepository(store)
	now := time.Now()

	first := &entity.EventCode{ClaimID: a.ID, Code: "111111", IssuedAt: now, ExpiresAt: now.Add(time.Hour), State: lifecycle.Active()}
	require.NoError(t, repo.CreateEventCode(context.Background(), first))

	err := repo.CreateEventCode(context.Background(), &entity.EventCode{ClaimID: a.ID, Code: "222222", IssuedAt: now, ExpiresAt: now.Add(time.Hour), State: lifecycle.Active()})
	require.ErrorIs(t, err, repository.ErrActiveCodeConflict)

	err = repo.CreateEventCode(context.Background(), &entity.EventCode{ClaimID: b.ID, Code: "111111", IssuedAt: now, ExpiresAt: now.Add(time.Hour), State: lifecycle.Active()})
	require.ErrorIs(t, err, repository.ErrActiveCodeConflict)

	n, err := repo.DeactivateCodesByClaim(context.Background(), a.ID, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	second := &entity.EventCode{ClaimID: b.ID, Code: "111111", IssuedAt: now.Add(time.Minute), ExpiresAt: now.Add(time.Hour), State: lifecycle.Active()}
	require.NoError(t, repo.CreateEventCode(context.Background(), second))

	latest, err := repo.FindLatestByCode(context.Background(), "111111")
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
}

func TestEventCodeRepository_FindLatestPrefersActive(t *testing.T) {
	store := NewStore()
	owner := seedAccount(t, store, "org@example.com")
	a := seedClaim(t, store, owner.ID, "A")
	b := seedClaim(t, store, owner.ID, "B")
	repo := NewEventCodeRepository(store)
	now := time.Now()

	active := &entity.EventCode{ClaimID: a.ID, Code: "333333", IssuedAt: now, ExpiresAt: now.Add(time.Hour), State: lifecycle.Active()}
	require.NoError(t, repo.CreateEventCode(context.Background(), active))
	newerInactive := &entity.EventCode{ClaimID: b.ID, Code: "333333", IssuedAt: now.Add(time.Minute), ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, repo.CreateEventCode(context.Background(), newerInactive))

	latest, err := repo.FindLatestByCode(context.Background(), "333333")
	require.NoError(t, err)
	assert.Equal(t, active.ID, latest.ID)

	_, err = repo.FindLatestByCode(context.Background(), "999999")
	require.ErrorIs(t, err, repository.ErrEventCodeNotFound)
}

func TestRatingRepository_DuplicateRating(t *testing.T) {
	store := NewStore()
	owner := seedAccount(t, store, "org@example.com")
	claim := seedClaim(t, store, owner.ID, "A")
	now := time.Now()
	code := &entity.EventCode{ClaimID: claim.ID, Code: "444444", IssuedAt: now, ExpiresAt: now.Add(time.Hour), State: lifecycle.Active()}
	require.NoError(t, NewEventCodeRepository(store).CreateEventCode(context.Background(), code))

	repo := NewRatingRepository(store)
	rater := uuid.New()
	require.NoError(t, repo.CreateRating(context.Background(), &entity.Rating{RaterID: rater, ClaimID: claim.ID, EventCodeID: code.ID, Score: 5}))
	err := repo.CreateRating(context.Background(), &entity.Rating{RaterID: rater, ClaimID: claim.ID, EventCodeID: code.ID, Score: 1})
	require.ErrorIs(t, err, repository.ErrDuplicateRating)

	exists, err := repo.RatingExists(context.Background(), code.ID, rater)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	store := NewStore()
	seedAccount(t, store, "Org@Example.com")

	err := NewAccountRepository(store).CreateAccount(context.Background(), &entity.Account{Email: "org@example.com", State: lifecycle.Active()})
	require.ErrorIs(t, err, repository.ErrDuplicateEmail)

	found, err := NewAccountRepository(store).FindAccountByEmail(context.Background(), " ORG@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Org@Example.com", found.Email)
}

func TestTemplateRepository_ListFilters(t *testing.T) {
	store := NewStore()
	owner := seedAccount(t, store, "org@example.com")
	claim := seedClaim(t, store, owner.ID, "A")
	repo := NewTemplateRepository(store)

	scoped := &entity.TaskTemplate{OwnerID: owner.ID, ClaimID: &claim.ID, Title: "Sweep", Status: entity.TaskPending, Priority: entity.PriorityLow, State: lifecycle.Active()}
	require.NoError(t, repo.CreateTemplate(context.Background(), scoped))
	archived := &entity.TaskTemplate{OwnerID: owner.ID, Title: "Paint", Status: entity.TaskPending, Priority: entity.PriorityLow, State: lifecycle.Active()}
	require.NoError(t, repo.CreateTemplate(context.Background(), archived))
	archived.Deactivate(time.Now())
	require.NoError(t, repo.UpdateTemplate(context.Background(), archived))

	all, err := repo.ListTemplates(context.Background(), entity.TemplateFilter{OwnerID: &owner.ID})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, scoped.ID, all[0].ID)

	byClaim, err := repo.ListTemplates(context.Background(), entity.TemplateFilter{ClaimID: &claim.ID})
	require.NoError(t, err)
	assert.Len(t, byClaim, 1)

	bad := uuid.New()
	err = repo.CreateTemplate(context.Background(), &entity.TaskTemplate{OwnerID: owner.ID, ClaimID: &bad, Title: "X", State: lifecycle.Active()})
	require.ErrorIs(t, err, repository.ErrClaimNotFound)
}

func TestStore_ConcurrentClaimsOnOneLocation(t *testing.T) {
	store := NewStore()
	owner := seedAccount(t, store, "org@example.com")
	tm := NewTransactionManager(store)

	const attempts = 32
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
				return f.NewClaimRepository().CreateClaim(context.Background(), &entity.LocationClaim{
					OwnerID: owner.ID, Name: "Org", Location: "Springfield", State: lifecycle.Active(),
				})
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if assert.ErrorIs(t, err, repository.ErrActiveLocationConflict) {
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
}
