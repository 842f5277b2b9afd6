package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"deliwer/config"
	deliverycontext "deliwer/internal/delivery/context"
	"deliwer/internal/domain/constants"
	"deliwer/internal/domain/entity"
	domainerrors "deliwer/internal/domain/errors"
	"deliwer/internal/domain/repository"
	"deliwer/internal/domain/service"
	"deliwer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	notifier  *impactNotifier
	campaign  *config.CampaignConfig
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService creates a new AquaCafe order service
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		notifier: &impactNotifier{
			publisher: params.Publisher,
			metrics:   params.Metrics,
			logger:    params.Logger,
		},
		campaign: params.Config.Campaign,
		logger:   params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder stores the order and credits the fixed bottle count to the
// current challenge, whatever the order contains.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.AquacafeOrder, error) {
	order := &entity.AquacafeOrder{
		UserID:          input.UserID,
		TradeInID:       input.TradeInID,
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		CustomerAddress: strings.TrimSpace(input.CustomerAddress),
		OrderTotal:      srv.campaign.OrderTotal,
		Status:          entity.OrderStatusPending,
		InstantRewards: entity.InstantRewards{
			Points:  srv.campaign.OrderRewardPoints,
			Badges:  slices.Clone(constants.OrderBadges),
			Bonuses: slices.Clone(constants.OrderBonuses),
		},
	}
	bottles := srv.campaign.OrderBottlesPrevented

	var update *challengeUpdate
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if order.TradeInID != nil {
			_, err := repoFactory.NewTradeInRepository().FindByID(ctx, *order.TradeInID)
			if errors.Is(err, repository.ErrTradeInNotFound) {
				return domainerrors.ErrInvalidReference.WithDetails("tradeInId does not reference a trade-in")
			}
			if err != nil {
				return errors.Wrap(err, "failed to find trade-in")
			}
		}

		if order.UserID != nil {
			if err := srv.rewardHero(ctx, repoFactory, *order.UserID, order.InstantRewards, bottles); err != nil {
				return err
			}
		}

		if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to store order")
		}

		var err error
		update, err = addToCurrentChallenge(ctx, repoFactory.NewChallengeRepository(), bottles)

		return errors.Wrap(err, "failed to update challenge progress")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to place order")
	}

	srv.notifier.metrics.OrderPlaced()
	srv.log(ctx).Info("AquaCafe order placed", slog.String("order_id", order.ID.String()))

	event := srv.notifier.newEvent(ctx, service.EventOrderPlaced)
	event.OrderID = order.ID.String()
	event.BottlesAdded = bottles
	if update != nil {
		event.ChallengeID = update.challenge.ID.String()
		event.CurrentAmount = update.challenge.CurrentAmount
		event.TargetAmount = update.challenge.TargetAmount
	}
	srv.notifier.publish(ctx, event)
	srv.notifier.challengeProgressed(ctx, update)

	return order, nil
}

// rewardHero credits the instant rewards to a registered hero.
func (srv *orderService) rewardHero(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, rewards entity.InstantRewards, bottles int) error {
	userRepo := repoFactory.NewUserRepository()
	user, err := userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrInvalidReference.WithDetails("userId does not reference a hero")
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}

	if _, err := userRepo.AddPoints(ctx, userID, rewards.Points); err != nil {
		return errors.Wrap(err, "failed to credit hero points")
	}

	for _, badge := range rewards.Badges {
		if slices.Contains(user.Achievements, badge) {
			continue
		}
		if _, err := userRepo.AddAchievement(ctx, userID, badge); err != nil {
			return errors.Wrap(err, "failed to add achievement")
		}
	}

	_, err = repoFactory.NewLeaderboardRepository().Increment(ctx, userID, entity.LeaderboardDelta{
		FamilyName:       user.Username,
		Points:           rewards.Points,
		BottlesPrevented: bottles,
	})

	return errors.Wrap(err, "failed to update leaderboard")
}

// GetOrder retrieves an order by id
func (srv *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.AquacafeOrder, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "failed to find order")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// ListOrders returns every order, newest first
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.AquacafeOrder, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}
