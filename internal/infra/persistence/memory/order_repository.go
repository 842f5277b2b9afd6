package memory

import (
	"context"
	"slices"

	"deliwer/internal/domain/entity"
	"deliwer/internal/domain/repository"

	"github.com/google/uuid"
)

type orderRepository struct {
	store *Store
}

// NewOrderRepository creates an AquaCafe order repository over store.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) Create(_ context.Context, order *entity.AquacafeOrder) error {
	return r.store.write(func(t *tables) error {
		ensureID(&order.ID)
		if order.CreatedAt.IsZero() {
			order.CreatedAt = now()
		}
		t.orders[order.ID] = row[*entity.AquacafeOrder]{seq: t.nextSeq(), value: order.Clone()}

		return nil
	})
}

func (r *orderRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.AquacafeOrder, error) {
	var found *entity.AquacafeOrder
	err := r.store.read(func(t *tables) error {
		o, ok := t.orders[id]
		if !ok {
			return repository.ErrOrderNotFound
		}
		found = o.value.Clone()

		return nil
	})

	return found, err
}

func (r *orderRepository) FindAll(_ context.Context) ([]*entity.AquacafeOrder, error) {
	var orders []*entity.AquacafeOrder
	err := r.store.read(func(t *tables) error {
		rows := t.orders.sorted()
		slices.Reverse(rows)
		orders = make([]*entity.AquacafeOrder, 0, len(rows))
		for _, o := range rows {
			orders = append(orders, o.value.Clone())
		}

		return nil
	})

	return orders, err
}
