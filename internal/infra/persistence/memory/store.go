// Package memory is an in-process store with the same uniqueness and
// transaction semantics as the PostgreSQL store. Transactions are serialized
// and run against a copy of the data that replaces the live set on commit.
package memory

import (
	"bytes"
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"
	"ledger/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Module provides the in-memory store
var Module = fx.Options(
	fx.Provide(
		NewStore,
		NewTransactionManager,
		NewAccountRepository,
		NewClaimRepository,
		NewEventCodeRepository,
		NewRatingRepository,
		NewTemplateRepository,
	),
)

type dataset struct {
	accounts  map[uuid.UUID]entity.Account
	claims    map[uuid.UUID]entity.LocationClaim
	codes     map[uuid.UUID]entity.EventCode
	ratings   map[uuid.UUID]entity.Rating
	templates map[uuid.UUID]entity.TaskTemplate
}

func newDataset() *dataset {
	return &dataset{
		accounts:  make(map[uuid.UUID]entity.Account),
		claims:    make(map[uuid.UUID]entity.LocationClaim),
		codes:     make(map[uuid.UUID]entity.EventCode),
		ratings:   make(map[uuid.UUID]entity.Rating),
		templates: make(map[uuid.UUID]entity.TaskTemplate),
	}
}

// clone copies the maps. Entities are stored by value and replaced whole on
// update, so a shallow copy of each map is enough.
func (d *dataset) clone() *dataset {
	return &dataset{
		accounts:  maps.Clone(d.accounts),
		claims:    maps.Clone(d.claims),
		codes:     maps.Clone(d.codes),
		ratings:   maps.Clone(d.ratings),
		templates: maps.Clone(d.templates),
	}
}

// Store holds the live dataset.
type Store struct {
	mu   sync.Mutex
	data *dataset
	now  func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: newDataset(), now: time.Now}
}

// scope runs fn against the transaction dataset when one is bound, otherwise
// against the live dataset under the store lock.
type scope struct {
	store *Store
	tx    *dataset
}

func (s scope) run(ctx context.Context, fn func(d *dataset) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if s.tx != nil {
		return fn(s.tx)
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	return fn(s.store.data)
}

type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a TransactionManager over the store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute serializes with every other store access. Changes made by fn become
// visible only when it returns nil.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	tx := tm.store.data.clone()
	if err := fn(&repositoryFactory{scope: scope{store: tm.store, tx: tx}}); err != nil {
		return err
	}
	tm.store.data = tx

	return nil
}

type repositoryFactory struct {
	scope scope
}

func (f *repositoryFactory) NewAccountRepository() repository.AccountRepository {
	return &accountRepository{scope: f.scope}
}

func (f *repositoryFactory) NewClaimRepository() repository.ClaimRepository {
	return &claimRepository{scope: f.scope}
}

func (f *repositoryFactory) NewEventCodeRepository() repository.EventCodeRepository {
	return &eventCodeRepository{scope: f.scope}
}

func (f *repositoryFactory) NewRatingRepository() repository.RatingRepository {
	return &ratingRepository{scope: f.scope}
}

func (f *repositoryFactory) NewTemplateRepository() repository.TemplateRepository {
	return &templateRepository{scope: f.scope}
}

// newestFirst sorts by the time key descending, then by id for a stable order.
func newestFirst[T any](items []T, at func(T) time.Time, id func(T) uuid.UUID) {
	slices.SortFunc(items, func(a, b T) int {
		if c := at(b).Compare(at(a)); c != 0 {
			return c
		}

		ia, ib := id(a), id(b)

		return bytes.Compare(ia[:], ib[:])
	})
}
