package repository

import (
	"context"

	"deliwer/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an AquaCafe order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines AquaCafe order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.AquacafeOrder) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.AquacafeOrder, error)

	// FindAll returns orders newest first.
	FindAll(ctx context.Context) ([]*entity.AquacafeOrder, error)
}
