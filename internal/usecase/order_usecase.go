package usecase

import (
	"context"

	"deliwer/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput carries an AquaCafe order form.
type PlaceOrderInput struct {
	UserID          *uuid.UUID
	TradeInID       *uuid.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
}

// OrderUsecase defines the interface for AquaCafe orders
type OrderUsecase interface {
	// PlaceOrder stores the order with its instant rewards and adds the fixed
	// bottle count to the current community challenge.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.AquacafeOrder, error)

	// GetOrder retrieves an order by id
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.AquacafeOrder, error)

	// ListOrders returns every order, newest first
	ListOrders(ctx context.Context) ([]*entity.AquacafeOrder, error)
}
