package repository

import (
	"context"

	"deliwer/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrTradeInNotFound is returned when a trade-in is not found.
	ErrTradeInNotFound = errors.New("trade-in not found")
	// ErrTradeInStatusChanged is returned when the stored status no longer
	// matches the expected one.
	ErrTradeInStatusChanged = errors.New("trade-in status changed concurrently")
)

// TradeInRepository defines trade-in persistence.
type TradeInRepository interface {
	Create(ctx context.Context, tradeIn *entity.TradeIn) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.TradeIn, error)

	// UpdateStatus moves a trade-in from one status to another only if it is
	// still in the expected status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.TradeInStatus) (*entity.TradeIn, error)
}
