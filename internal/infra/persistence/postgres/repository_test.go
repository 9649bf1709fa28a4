package postgres

import (
	"context"
	"testing"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/lifecycle"
	"ledger/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

var claimColumns = []string{
	"id", "owner_id", "name", "location", "contact_number", "description",
	"is_active", "deactivated_at", "created_at", "updated_at",
}

func TestClaimRepository_CreateClaim(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClaimRepository(db)

	mock.ExpectExec(`INSERT INTO "location_claims"`).WillReturnResult(sqlmock.NewResult(0, 1))

	claim := &entity.LocationClaim{
		OwnerID:  uuid.New(),
		Name:     "Acme",
		Location: "Springfield",
		State:    lifecycle.Active(),
	}
	require.NoError(t, repo.CreateClaim(context.Background(), claim))
	assert.NotEqual(t, uuid.Nil, claim.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimRepository_CreateClaim_ActiveLocationConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClaimRepository(db)

	mock.ExpectExec(`INSERT INTO "location_claims"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintActiveLocation})

	err := repo.CreateClaim(context.Background(), &entity.LocationClaim{
		OwnerID: uuid.New(), Name: "Acme", Location: "Springfield", State: lifecycle.Active(),
	})
	require.ErrorIs(t, err, repository.ErrActiveLocationConflict)
}

func TestClaimRepository_FindClaimByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClaimRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "location_claims" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(claimColumns))

	_, err := repo.FindClaimByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, repository.ErrClaimNotFound)
}

func TestClaimRepository_LockClaimByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClaimRepository(db)

	id, owner := uuid.New(), uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "location_claims" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(claimColumns).
			AddRow(id.String(), owner.String(), "Acme", "Springfield", nil, nil, true, nil, now, now))

	claim, err := repo.LockClaimByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, claim.ID)
	assert.Equal(t, owner, claim.OwnerID)
	assert.True(t, claim.Active())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimRepository_DeactivateClaim_NoActiveRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClaimRepository(db)

	mock.ExpectExec(`UPDATE "location_claims" SET .* WHERE id = \$\d+ AND is_active`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeactivateClaim(context.Background(), uuid.New(), time.Now())
	require.ErrorIs(t, err, repository.ErrClaimNotFound)
}

func TestClaimRepository_ListActiveClaims(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClaimRepository(db)

	owner := uuid.New()
	now := time.Now()
	cols := append(append([]string{}, claimColumns...), "owner_name", "rating_count", "score_sum")
	mock.ExpectQuery(`SELECT location_claims\.\*, accounts\.name AS owner_name.*` +
		`JOIN accounts.*LEFT JOIN ratings.*location_claims\.owner_id = \$1.*GROUP BY`).
		WithArgs(owner).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(uuid.NewString(), owner.String(), "Acme", "Springfield", nil, nil, true, nil, now, now, "Acme Org", 3, 13))

	summaries, err := repo.ListActiveClaims(context.Background(), entity.ClaimFilter{OwnerID: &owner})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Acme Org", summaries[0].OwnerName)
	assert.Equal(t, int64(3), summaries[0].Ratings.Count)
	assert.InDelta(t, 4.3, summaries[0].Ratings.Average, 0.0001)
}

func TestEventCodeRepository_FindLatestByCode_SharesLock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventCodeRepository(db)

	id, claimID := uuid.New(), uuid.New()
	issued := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "event_codes" WHERE code = \$1 ORDER BY is_active DESC, issued_at DESC.*FOR SHARE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "claim_id", "code", "issued_at", "expires_at", "is_active", "deactivated_at"}).
			AddRow(id.String(), claimID.String(), "123456", issued, issued.Add(time.Hour), true, nil))

	code, err := repo.FindLatestByCode(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, claimID, code.ClaimID)
	assert.True(t, code.Redeemable(issued))
}

func TestEventCodeRepository_CreateEventCode_Conflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventCodeRepository(db)

	mock.ExpectExec(`INSERT INTO "event_codes"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintActiveCodeValue})

	err := repo.CreateEventCode(context.Background(), &entity.EventCode{
		ClaimID: uuid.New(), Code: "123456", IssuedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour), State: lifecycle.Active(),
	})
	require.ErrorIs(t, err, repository.ErrActiveCodeConflict)
}

func TestEventCodeRepository_DeactivateCodesByClaim(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventCodeRepository(db)

	mock.ExpectExec(`UPDATE "event_codes" SET .* WHERE claim_id = \$\d+ AND is_active`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.DeactivateCodesByClaim(context.Background(), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestRatingRepository_CreateRating_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingRepository(db)

	mock.ExpectExec(`INSERT INTO "ratings"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintRatingPerRater})

	err := repo.CreateRating(context.Background(), &entity.Rating{
		RaterID: uuid.New(), ClaimID: uuid.New(), EventCodeID: uuid.New(), Score: 4,
	})
	require.ErrorIs(t, err, repository.ErrDuplicateRating)
}

func TestRatingRepository_RatingStatsByClaim(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(id\) AS rating_count, COALESCE\(SUM\(score\), 0\) AS score_sum FROM "ratings"`).
		WillReturnRows(sqlmock.NewRows([]string{"rating_count", "score_sum"}).AddRow(2, 9))

	stats, err := repo.RatingStatsByClaim(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Count)
	assert.InDelta(t, 4.5, stats.Average, 0.0001)
}

func TestAccountRepository_CreateAccount_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectExec(`INSERT INTO "accounts"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintAccountEmail})

	err := repo.CreateAccount(context.Background(), &entity.Account{
		Name: "Ann", Email: "ann@example.com", PasswordHash: "x", Role: entity.RoleViewer, State: lifecycle.Active(),
	})
	require.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestAccountRepository_FindAccountByEmail_Lowercases(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE lower\(email\) = \$1`).
		WithArgs("ann@example.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

	_, err := repo.FindAccountByEmail(context.Background(), "  Ann@Example.com ")
	require.ErrorIs(t, err, repository.ErrAccountNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTemplateRepository_UpdateTemplate_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTemplateRepository(db)

	mock.ExpectExec(`UPDATE "task_templates" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateTemplate(context.Background(), &entity.TaskTemplate{
		ID: uuid.New(), Title: "Sweep", Status: entity.TaskPending, Priority: entity.PriorityLow, State: lifecycle.Active(),
	})
	require.ErrorIs(t, err, repository.ErrTemplateNotFound)
}

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	db, mock := newMockDB(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "location_claims"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.Execute(context.Background(), func(f repository.RepositoryFactory) error {
		return f.NewClaimRepository().DeactivateClaim(context.Background(), uuid.New(), time.Now())
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err = tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)
	require.NoError(t, mock.ExpectationsWereMet())
}
