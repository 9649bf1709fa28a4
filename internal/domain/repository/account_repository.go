// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// AccountRepository persists accounts.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account *entity.Account) error

	FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindAccountByEmail matches the email case-insensitively.
	FindAccountByEmail(ctx context.Context, email string) (*entity.Account, error)

	// ListAccounts returns every account, newest first, with claim counts.
	ListAccounts(ctx context.Context) ([]*entity.AccountSummary, error)

	UpdateAccountRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	DeactivateAccount(ctx context.Context, id uuid.UUID, at time.Time) error
}
