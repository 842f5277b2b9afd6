package usecase

import (
	"context"

	"deliwer/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTradeInInput carries a submitted device.
type CreateTradeInInput struct {
	UserID          *uuid.UUID
	DeviceModel     string
	DeviceCondition string
	CampaignType    string
}

// TradeInUsecase defines the interface for device trade-ins
type TradeInUsecase interface {
	// CreateTradeIn prices the device and stores the trade-in. When a hero is
	// referenced, their points and leaderboard entry are credited as well.
	CreateTradeIn(ctx context.Context, input *CreateTradeInInput) (*entity.TradeIn, error)

	// GetTradeIn retrieves a trade-in by id
	GetTradeIn(ctx context.Context, tradeInID uuid.UUID) (*entity.TradeIn, error)

	// UpdateTradeInStatus moves the trade-in one step forward
	UpdateTradeInStatus(ctx context.Context, tradeInID uuid.UUID, status entity.TradeInStatus) (*entity.TradeIn, error)
}
