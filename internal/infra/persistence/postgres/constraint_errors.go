package postgres

import (
	"ledger/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Partial and composite unique indexes created by the migrations.
const (
	constraintAccountEmail       = "uq_accounts_email"
	constraintActiveLocation     = "uq_location_claims_active_location"
	constraintActiveCodePerClaim = "uq_event_codes_active_claim"
	constraintActiveCodeValue    = "uq_event_codes_active_code"
	constraintRatingPerRater     = "uq_ratings_event_code_rater"
)

// uniqueViolation reports whether err is a unique violation and, when the
// driver exposes it, the name of the violated index.
func uniqueViolation(err error) (constraint string, ok bool) {
	if pgErr, isPg := errors.AsType[*pgconn.PgError](err); isPg {
		return pgErr.ConstraintName, pgErr.Code == pgUniqueViolation
	}

	return "", errors.Is(err, gorm.ErrDuplicatedKey)
}

func isUniqueConstraintViolation(err error, constraints ...string) bool {
	name, ok := uniqueViolation(err)
	if !ok {
		return false
	}
	if len(constraints) == 0 || name == "" {
		return true
	}
	for _, c := range constraints {
		if c == name {
			return true
		}
	}

	return false
}

func isForeignKeyConstraintViolation(err error) bool {
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return pgErr.Code == pgForeignKeyViolation
	}

	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
