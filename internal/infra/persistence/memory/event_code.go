package memory

import (
	"context"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"

	"github.com/google/uuid"
)

type eventCodeRepository struct {
	scope scope
}

// NewEventCodeRepository returns an EventCodeRepository over the live dataset.
func NewEventCodeRepository(store *Store) repository.EventCodeRepository {
	return &eventCodeRepository{scope: scope{store: store}}
}

func (r *eventCodeRepository) CreateEventCode(ctx context.Context, code *entity.EventCode) error {
	return r.scope.run(ctx, func(d *dataset) error {
		if _, ok := d.claims[code.ClaimID]; !ok {
			return repository.ErrClaimNotFound
		}
		if code.Active() {
			for _, existing := range d.codes {
				if !existing.Active() {
					continue
				}
				if existing.ClaimID == code.ClaimID || existing.Code == code.Code {
					return repository.ErrActiveCodeConflict
				}
			}
		}

		if code.ID == uuid.Nil {
			code.ID = uuid.New()
		}
		d.codes[code.ID] = *code

		return nil
	})
}

func (r *eventCodeRepository) FindEventCodeByID(ctx context.Context, id uuid.UUID) (*entity.EventCode, error) {
	return r.find(ctx, func(c entity.EventCode) bool { return c.ID == id })
}

func (r *eventCodeRepository) FindLatestByCode(ctx context.Context, value string) (*entity.EventCode, error) {
	var found *entity.EventCode
	err := r.scope.run(ctx, func(d *dataset) error {
		for _, code := range d.codes {
			if code.Code != value {
				continue
			}
			if found == nil || preferCode(code, *found) {
				found = &code
			}
		}
		if found == nil {
			return repository.ErrEventCodeNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// preferCode orders active before inactive, then newer issue first.
func preferCode(a, b entity.EventCode) bool {
	if a.Active() != b.Active() {
		return a.Active()
	}

	return a.IssuedAt.After(b.IssuedAt)
}

func (r *eventCodeRepository) FindActiveByClaim(ctx context.Context, claimID uuid.UUID) (*entity.EventCode, error) {
	return r.find(ctx, func(c entity.EventCode) bool { return c.Active() && c.ClaimID == claimID })
}

func (r *eventCodeRepository) FindActiveByCode(ctx context.Context, value string) (*entity.EventCode, error) {
	return r.find(ctx, func(c entity.EventCode) bool { return c.Active() && c.Code == value })
}

func (r *eventCodeRepository) find(ctx context.Context, match func(entity.EventCode) bool) (*entity.EventCode, error) {
	var found *entity.EventCode
	err := r.scope.run(ctx, func(d *dataset) error {
		for _, code := range d.codes {
			if match(code) {
				found = &code

				return nil
			}
		}

		return repository.ErrEventCodeNotFound
	})

	return found, err
}

func (r *eventCodeRepository) DeactivateCodesByClaim(ctx context.Context, claimID uuid.UUID, at time.Time) (int64, error) {
	var changed int64
	err := r.scope.run(ctx, func(d *dataset) error {
		for id, code := range d.codes {
			if code.ClaimID != claimID || !code.Deactivate(at) {
				continue
			}
			d.codes[id] = code
			changed++
		}

		return nil
	})

	return changed, err
}

func (r *eventCodeRepository) DeactivateEventCode(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.scope.run(ctx, func(d *dataset) error {
		code, ok := d.codes[id]
		if !ok || !code.Deactivate(at) {
			return repository.ErrEventCodeNotFound
		}
		d.codes[id] = code

		return nil
	})
}

func (r *eventCodeRepository) ListCodesByClaim(ctx context.Context, claimID uuid.UUID) ([]*entity.EventCode, error) {
	var codes []*entity.EventCode
	err := r.scope.run(ctx, func(d *dataset) error {
		for _, code := range d.codes {
			if code.ClaimID == claimID {
				codes = append(codes, &code)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	newestFirst(codes,
		func(c *entity.EventCode) time.Time { return c.IssuedAt },
		func(c *entity.EventCode) uuid.UUID { return c.ID })

	return codes, nil
}
