package impl

import (
	"context"
	"testing"

	"deliwer/internal/domain/entity"
	domainerrors "deliwer/internal/domain/errors"
	"deliwer/internal/domain/service"
	"deliwer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTradeInService(store *testStore) usecase.TradeInUsecase {
	return NewTradeInService(TradeInServiceParams{
		TxManager:   store.txManager,
		TradeInRepo: store.repos.NewTradeInRepository(),
		Metrics:     service.NoopMetrics{},
		Logger:      newDiscardLogger(),
	})
}

func TestTradeInService_CreateTradeIn_Anonymous(t *testing.T) {
	store := newTestStore()
	svc := createTestTradeInService(store)
	ctx := context.Background()

	tradeIn, err := svc.CreateTradeIn(ctx, &usecase.CreateTradeInInput{
		DeviceModel:     "iPhone 17",
		DeviceCondition: " Excellent ",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, tradeIn.ID)
	assert.Equal(t, 2400, tradeIn.TradeValue)
	assert.Equal(t, 3200, tradeIn.ImpactPoints)
	assert.Equal(t, " Excellent ", tradeIn.DeviceCondition)
	assert.Equal(t, entity.CampaignRegular, tradeIn.CampaignType)
	assert.Equal(t, entity.TradeInStatusPending, tradeIn.Status)

	found, err := svc.GetTradeIn(ctx, tradeIn.ID)
	require.NoError(t, err)
	assert.Equal(t, tradeIn.DeviceModel, found.DeviceModel)
	assert.Equal(t, " Excellent ", found.DeviceCondition)
	assert.Equal(t, tradeIn.TradeValue, found.TradeValue)
}

func TestTradeInService_CreateTradeIn_ModelMatchesExactly(t *testing.T) {
	svc := createTestTradeInService(newTestStore())

	tradeIn, err := svc.CreateTradeIn(context.Background(), &usecase.CreateTradeInInput{
		DeviceModel:     " iPhone 15 ",
		DeviceCondition: "excellent",
	})
	require.NoError(t, err)

	assert.Equal(t, " iPhone 15 ", tradeIn.DeviceModel)
	assert.Equal(t, 500, tradeIn.TradeValue)
	assert.Equal(t, 1500, tradeIn.ImpactPoints)
}

func TestTradeInService_CreateTradeIn_UnknownModelFallsBack(t *testing.T) {
	svc := createTestTradeInService(newTestStore())

	tradeIn, err := svc.CreateTradeIn(context.Background(), &usecase.CreateTradeInInput{
		DeviceModel:     "Nokia 3310",
		DeviceCondition: "cracked",
		CampaignType:    entity.CampaignIPhone17Launch,
	})
	require.NoError(t, err)

	assert.Equal(t, 250, tradeIn.TradeValue)
	assert.Equal(t, 1500, tradeIn.ImpactPoints)
	assert.Equal(t, entity.CampaignIPhone17Launch, tradeIn.CampaignType)
}

func TestTradeInService_CreateTradeIn_CreditsHero(t *testing.T) {
	store := newTestStore()
	svc := createTestTradeInService(store)
	ctx := context.Background()
	user := store.createUser(t, "hero", "UAE")

	tradeIn, err := svc.CreateTradeIn(ctx, &usecase.CreateTradeInInput{
		UserID:          &user.ID,
		DeviceModel:     "iPhone 15",
		DeviceCondition: "good",
	})
	require.NoError(t, err)
	assert.Equal(t, 1440, tradeIn.TradeValue)

	updated, err := store.repos.NewUserRepository().FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2800, updated.HeroPoints)

	entries, err := store.repos.NewLeaderboardRepository().List(ctx, 10, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hero", entries[0].FamilyName)
	assert.Equal(t, 2800, entries[0].Points)
}

func TestTradeInService_CreateTradeIn_UnknownUser(t *testing.T) {
	store := newTestStore()
	svc := createTestTradeInService(store)
	missing := uuid.New()

	_, err := svc.CreateTradeIn(context.Background(), &usecase.CreateTradeInInput{
		UserID:          &missing,
		DeviceModel:     "iPhone 14",
		DeviceCondition: "fair",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidReference)

	entries, err := store.repos.NewLeaderboardRepository().List(context.Background(), 10, "")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTradeInService_GetTradeIn_NotFound(t *testing.T) {
	svc := createTestTradeInService(newTestStore())

	_, err := svc.GetTradeIn(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrTradeInNotFound)
}

func TestTradeInService_UpdateTradeInStatus(t *testing.T) {
	tests := []struct {
		name    string
		path    []entity.TradeInStatus
		next    entity.TradeInStatus
		wantErr error
	}{
		{name: "pending to confirmed", next: entity.TradeInStatusConfirmed},
		{name: "confirmed to completed", path: []entity.TradeInStatus{entity.TradeInStatusConfirmed}, next: entity.TradeInStatusCompleted},
		{name: "skipping confirmed", next: entity.TradeInStatusCompleted, wantErr: domainerrors.ErrInvalidStatusTransition},
		{name: "same status", next: entity.TradeInStatusPending, wantErr: domainerrors.ErrInvalidStatusTransition},
		{name: "moving backwards", path: []entity.TradeInStatus{entity.TradeInStatusConfirmed}, next: entity.TradeInStatusPending, wantErr: domainerrors.ErrInvalidStatusTransition},
		{
			name:    "completed is terminal",
			path:    []entity.TradeInStatus{entity.TradeInStatusConfirmed, entity.TradeInStatusCompleted},
			next:    entity.TradeInStatusConfirmed,
			wantErr: domainerrors.ErrInvalidStatusTransition,
		},
		{name: "unknown status", next: entity.TradeInStatus("shipped"), wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := createTestTradeInService(newTestStore())
			ctx := context.Background()

			tradeIn, err := svc.CreateTradeIn(ctx, &usecase.CreateTradeInInput{DeviceModel: "iPhone 13", DeviceCondition: "good"})
			require.NoError(t, err)
			for _, status := range tt.path {
				_, err := svc.UpdateTradeInStatus(ctx, tradeIn.ID, status)
				require.NoError(t, err)
			}

			updated, err := svc.UpdateTradeInStatus(ctx, tradeIn.ID, tt.next)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.next, updated.Status)
		})
	}
}

func TestTradeInService_UpdateTradeInStatus_NotFound(t *testing.T) {
	svc := createTestTradeInService(newTestStore())

	_, err := svc.UpdateTradeInStatus(context.Background(), uuid.New(), entity.TradeInStatusConfirmed)
	require.ErrorIs(t, err, domainerrors.ErrTradeInNotFound)
}
