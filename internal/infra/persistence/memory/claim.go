package memory

import (
	"context"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"

	"github.com/google/uuid"
)

type claimRepository struct {
	scope scope
}

// NewClaimRepository returns a ClaimRepository over the live dataset.
func NewClaimRepository(store *Store) repository.ClaimRepository {
	return &claimRepository{scope: scope{store: store}}
}

func (r *claimRepository) CreateClaim(ctx context.Context, claim *entity.LocationClaim) error {
	return r.scope.run(ctx, func(d *dataset) error {
		if claim.Active() {
			if _, taken := activeClaimAt(d, claim.Location); taken {
				return repository.ErrActiveLocationConflict
			}
		}

		if claim.ID == uuid.Nil {
			claim.ID = uuid.New()
		}
		now := r.scope.store.now()
		claim.CreatedAt, claim.UpdatedAt = now, now
		d.claims[claim.ID] = *claim

		return nil
	})
}

func activeClaimAt(d *dataset, location string) (entity.LocationClaim, bool) {
	key := entity.LocationKey(location)
	for _, claim := range d.claims {
		if claim.Active() && entity.LocationKey(claim.Location) == key {
			return claim, true
		}
	}

	return entity.LocationClaim{}, false
}

func (r *claimRepository) FindClaimByID(ctx context.Context, id uuid.UUID) (*entity.LocationClaim, error) {
	var found *entity.LocationClaim
	err := r.scope.run(ctx, func(d *dataset) error {
		claim, ok := d.claims[id]
		if !ok {
			return repository.ErrClaimNotFound
		}
		found = &claim

		return nil
	})

	return found, err
}

// LockClaimByID is FindClaimByID: transactions already run one at a time.
func (r *claimRepository) LockClaimByID(ctx context.Context, id uuid.UUID) (*entity.LocationClaim, error) {
	return r.FindClaimByID(ctx, id)
}

func (r *claimRepository) FindActiveClaimByLocation(ctx context.Context, location string) (*entity.LocationClaim, error) {
	var found *entity.LocationClaim
	err := r.scope.run(ctx, func(d *dataset) error {
		claim, ok := activeClaimAt(d, location)
		if !ok {
			return repository.ErrClaimNotFound
		}
		found = &claim

		return nil
	})

	return found, err
}

func (r *claimRepository) UpdateClaimDetails(ctx context.Context, claim *entity.LocationClaim) error {
	return r.scope.run(ctx, func(d *dataset) error {
		stored, ok := d.claims[claim.ID]
		if !ok || !stored.Active() {
			return repository.ErrClaimNotFound
		}
		stored.ContactNumber = claim.ContactNumber
		stored.Description = claim.Description
		stored.UpdatedAt = r.scope.store.now()
		d.claims[claim.ID] = stored
		claim.UpdatedAt = stored.UpdatedAt

		return nil
	})
}

func (r *claimRepository) DeactivateClaim(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.scope.run(ctx, func(d *dataset) error {
		claim, ok := d.claims[id]
		if !ok || !claim.Deactivate(at) {
			return repository.ErrClaimNotFound
		}
		claim.UpdatedAt = at
		d.claims[id] = claim

		return nil
	})
}

func (r *claimRepository) ListActiveClaims(ctx context.Context, filter entity.ClaimFilter) ([]*entity.ClaimSummary, error) {
	var summaries []*entity.ClaimSummary
	err := r.scope.run(ctx, func(d *dataset) error {
		for _, claim := range d.claims {
			if !claim.Active() {
				continue
			}
			if filter.OwnerID != nil && claim.OwnerID != *filter.OwnerID {
				continue
			}
			if filter.ClaimID != nil && claim.ID != *filter.ClaimID {
				continue
			}
			summaries = append(summaries, &entity.ClaimSummary{
				LocationClaim: &claim,
				OwnerName:     d.accounts[claim.OwnerID].Name,
				Ratings:       ratingStats(d, claim.ID),
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	newestFirst(summaries,
		func(s *entity.ClaimSummary) time.Time { return s.CreatedAt },
		func(s *entity.ClaimSummary) uuid.UUID { return s.ID })

	return summaries, nil
}
