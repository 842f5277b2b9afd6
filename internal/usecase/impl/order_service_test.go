package impl

import (
	"context"
	"testing"

	domainerrors "deliwer/internal/domain/errors"
	"deliwer/internal/domain/service"
	"deliwer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOrderService(store *testStore, publisher service.EventPublisher) usecase.OrderUsecase {
	return NewOrderService(OrderServiceParams{
		TxManager: store.txManager,
		OrderRepo: store.repos.NewOrderRepository(),
		Publisher: publisher,
		Metrics:   service.NoopMetrics{},
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
}

func validOrderInput() *usecase.PlaceOrderInput {
	return &usecase.PlaceOrderInput{
		CustomerName:    "Fatima",
		CustomerPhone:   "+971500000000",
		CustomerAddress: "Marina Walk, Dubai",
	}
}

func TestOrderService_PlaceOrder_FixedRewardsAndProgress(t *testing.T) {
	store := newTestStore()
	publisher := newMockPublisher(t)
	svc := createTestOrderService(store, publisher)
	ctx := context.Background()
	challenge := store.createChallenge(t, "", 800_000, 1_000_000)

	order, err := svc.PlaceOrder(ctx, validOrderInput())
	require.NoError(t, err)

	assert.InDelta(t, 99.0, order.OrderTotal, 0.001)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, 2400, order.InstantRewards.Points)
	assert.Equal(t, []string{"Water Warrior"}, order.InstantRewards.Badges)
	assert.Equal(t, []string{"Premium Filter FREE", "30-Day Challenge Active"}, order.InstantRewards.Bonuses)

	updated, err := store.repos.NewChallengeRepository().FindByID(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, 802_400, updated.CurrentAmount)

	events := publisher.events()
	require.Len(t, events, 1)
	assert.Equal(t, service.EventOrderPlaced, events[0].Type)
	assert.Equal(t, order.ID.String(), events[0].OrderID)
	assert.Equal(t, 2400, events[0].BottlesAdded)
	assert.Equal(t, 802_400, events[0].CurrentAmount)
}

func TestOrderService_PlaceOrder_PublishesMilestone(t *testing.T) {
	store := newTestStore()
	publisher := newMockPublisher(t)
	svc := createTestOrderService(store, publisher)
	store.createChallenge(t, "", 0, 10_000)

	_, err := svc.PlaceOrder(context.Background(), validOrderInput())
	require.NoError(t, err)

	events := publisher.events()
	require.Len(t, events, 2)
	assert.Equal(t, service.EventOrderPlaced, events[0].Type)
	assert.Equal(t, service.EventChallengeMilestone, events[1].Type)
	assert.Equal(t, 20, events[1].Milestone)
	assert.Equal(t, 2400, events[1].CurrentAmount)
}

func TestOrderService_PlaceOrder_WithoutChallenge(t *testing.T) {
	store := newTestStore()
	publisher := newMockPublisher(t)
	svc := createTestOrderService(store, publisher)

	order, err := svc.PlaceOrder(context.Background(), validOrderInput())
	require.NoError(t, err)
	assert.Equal(t, 2400, order.InstantRewards.Points)

	events := publisher.events()
	require.Len(t, events, 1)
	assert.Empty(t, events[0].ChallengeID)
}

func TestOrderService_PlaceOrder_PublishFailureDoesNotFail(t *testing.T) {
	store := newTestStore()
	publisher := &mockPublisher{}
	publisher.On("PublishImpactEvent", mock.Anything, mock.Anything).Return(errors.New("broker down"))
	svc := createTestOrderService(store, publisher)

	_, err := svc.PlaceOrder(context.Background(), validOrderInput())
	require.NoError(t, err)
	publisher.AssertNumberOfCalls(t, "PublishImpactEvent", 1)
}

func TestOrderService_PlaceOrder_UnknownTradeInRollsBack(t *testing.T) {
	store := newTestStore()
	publisher := newMockPublisher(t)
	svc := createTestOrderService(store, publisher)
	ctx := context.Background()
	challenge := store.createChallenge(t, "", 100, 1_000_000)

	input := validOrderInput()
	missing := uuid.New()
	input.TradeInID = &missing

	_, err := svc.PlaceOrder(ctx, input)
	require.ErrorIs(t, err, domainerrors.ErrInvalidReference)

	unchanged, err := store.repos.NewChallengeRepository().FindByID(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, unchanged.CurrentAmount)

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Empty(t, publisher.events())
}

func TestOrderService_PlaceOrder_RewardsHeroOnce(t *testing.T) {
	store := newTestStore()
	svc := createTestOrderService(store, newMockPublisher(t))
	ctx := context.Background()
	user := store.createUser(t, "hero", "UAE")

	input := validOrderInput()
	input.UserID = &user.ID
	for range 2 {
		_, err := svc.PlaceOrder(ctx, input)
		require.NoError(t, err)
	}

	updated, err := store.repos.NewUserRepository().FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 4800, updated.HeroPoints)
	assert.Equal(t, []string{"Water Warrior"}, updated.Achievements)

	entries, err := store.repos.NewLeaderboardRepository().List(ctx, 10, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 4800, entries[0].BottlesPrevented)
}

func TestOrderService_PlaceOrder_UnknownUser(t *testing.T) {
	svc := createTestOrderService(newTestStore(), newMockPublisher(t))

	input := validOrderInput()
	missing := uuid.New()
	input.UserID = &missing

	_, err := svc.PlaceOrder(context.Background(), input)
	require.ErrorIs(t, err, domainerrors.ErrInvalidReference)
}

func TestOrderService_GetAndList(t *testing.T) {
	svc := createTestOrderService(newTestStore(), newMockPublisher(t))
	ctx := context.Background()

	first, err := svc.PlaceOrder(ctx, validOrderInput())
	require.NoError(t, err)
	second, err := svc.PlaceOrder(ctx, validOrderInput())
	require.NoError(t, err)

	found, err := svc.GetOrder(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.CustomerName, found.CustomerName)
	assert.Equal(t, first.CustomerAddress, found.CustomerAddress)

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)

	_, err = svc.GetOrder(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
