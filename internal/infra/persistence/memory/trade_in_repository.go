package memory

import (
	"context"

	"deliwer/internal/domain/entity"
	"deliwer/internal/domain/repository"

	"github.com/google/uuid"
)

type tradeInRepository struct {
	store *Store
}

// NewTradeInRepository creates a trade-in repository over store.
func NewTradeInRepository(store *Store) repository.TradeInRepository {
	return &tradeInRepository{store: store}
}

func (r *tradeInRepository) Create(_ context.Context, tradeIn *entity.TradeIn) error {
	return r.store.write(func(t *tables) error {
		ensureID(&tradeIn.ID)
		if tradeIn.CreatedAt.IsZero() {
			tradeIn.CreatedAt = now()
		}
		tradeIn.UpdatedAt = tradeIn.CreatedAt
		t.tradeIns[tradeIn.ID] = row[*entity.TradeIn]{seq: t.nextSeq(), value: copyPtr(tradeIn)}

		return nil
	})
}

func (r *tradeInRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.TradeIn, error) {
	var found *entity.TradeIn
	err := r.store.read(func(t *tables) error {
		ti, ok := t.tradeIns[id]
		if !ok {
			return repository.ErrTradeInNotFound
		}
		found = copyPtr(ti.value)

		return nil
	})

	return found, err
}

func (r *tradeInRepository) UpdateStatus(_ context.Context, id uuid.UUID, from, to entity.TradeInStatus) (*entity.TradeIn, error) {
	var updated *entity.TradeIn
	err := r.store.write(func(t *tables) error {
		ti, ok := t.tradeIns[id]
		if !ok {
			return repository.ErrTradeInNotFound
		}
		if ti.value.Status != from {
			return repository.ErrTradeInStatusChanged
		}
		ti.value.Status = to
		ti.value.UpdatedAt = now()
		updated = copyPtr(ti.value)

		return nil
	})

	return updated, err
}
