package memory

import (
	"context"
	"strings"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"

	"github.com/google/uuid"
)

type accountRepository struct {
	scope scope
}

// NewAccountRepository returns an AccountRepository over the live dataset.
func NewAccountRepository(store *Store) repository.AccountRepository {
	return &accountRepository{scope: scope{store: store}}
}

func (r *accountRepository) CreateAccount(ctx context.Context, account *entity.Account) error {
	return r.scope.run(ctx, func(d *dataset) error {
		key := strings.ToLower(strings.TrimSpace(account.Email))
		for _, existing := range d.accounts {
			if strings.ToLower(existing.Email) == key {
				return repository.ErrDuplicateEmail
			}
		}

		if account.ID == uuid.Nil {
			account.ID = uuid.New()
		}
		now := r.scope.store.now()
		account.CreatedAt, account.UpdatedAt = now, now
		d.accounts[account.ID] = *account

		return nil
	})
}

func (r *accountRepository) FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var found *entity.Account
	err := r.scope.run(ctx, func(d *dataset) error {
		account, ok := d.accounts[id]
		if !ok {
			return repository.ErrAccountNotFound
		}
		found = &account

		return nil
	})

	return found, err
}

func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var found *entity.Account
	err := r.scope.run(ctx, func(d *dataset) error {
		key := strings.ToLower(strings.TrimSpace(email))
		for _, account := range d.accounts {
			if strings.ToLower(account.Email) == key {
				found = &account

				return nil
			}
		}

		return repository.ErrAccountNotFound
	})

	return found, err
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]*entity.AccountSummary, error) {
	var summaries []*entity.AccountSummary
	err := r.scope.run(ctx, func(d *dataset) error {
		summaries = make([]*entity.AccountSummary, 0, len(d.accounts))
		for _, account := range d.accounts {
			summary := &entity.AccountSummary{Account: &account}
			for _, claim := range d.claims {
				if claim.OwnerID != account.ID {
					continue
				}
				summary.TotalClaims++
				if claim.Active() {
					summary.ActiveClaims++
				}
			}
			summaries = append(summaries, summary)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	newestFirst(summaries,
		func(s *entity.AccountSummary) time.Time { return s.CreatedAt },
		func(s *entity.AccountSummary) uuid.UUID { return s.ID })

	return summaries, nil
}

func (r *accountRepository) UpdateAccountRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	return r.scope.run(ctx, func(d *dataset) error {
		account, ok := d.accounts[id]
		if !ok {
			return repository.ErrAccountNotFound
		}
		account.Role = role
		account.UpdatedAt = r.scope.store.now()
		d.accounts[id] = account

		return nil
	})
}

func (r *accountRepository) DeactivateAccount(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.scope.run(ctx, func(d *dataset) error {
		account, ok := d.accounts[id]
		if !ok || !account.Deactivate(at) {
			return repository.ErrAccountNotFound
		}
		account.UpdatedAt = at
		d.accounts[id] = account

		return nil
	})
}
