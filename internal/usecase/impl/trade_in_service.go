package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "deliwer/internal/delivery/context"
	"deliwer/internal/domain/entity"
	domainerrors "deliwer/internal/domain/errors"
	"deliwer/internal/domain/repository"
	"deliwer/internal/domain/service"
	"deliwer/internal/domain/valuation"
	"deliwer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type tradeInService struct {
	txManager   repository.TransactionManager
	tradeInRepo repository.TradeInRepository
	metrics     service.MetricsRecorder
	logger      *slog.Logger
}

// TradeInServiceParams holds dependencies for TradeInService, injected by Fx.
type TradeInServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	TradeInRepo repository.TradeInRepository
	Metrics     service.MetricsRecorder
	Logger      *slog.Logger
}

// NewTradeInService creates a new trade-in service
func NewTradeInService(params TradeInServiceParams) usecase.TradeInUsecase {
	return &tradeInService{
		txManager:   params.TxManager,
		tradeInRepo: params.TradeInRepo,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

func (srv *tradeInService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTradeIn prices the device and credits the referenced hero
func (srv *tradeInService) CreateTradeIn(ctx context.Context, input *usecase.CreateTradeInInput) (*entity.TradeIn, error) {
	// Inputs are stored as sent; only the valuation lookups normalise.
	model := input.DeviceModel
	campaignType := input.CampaignType
	if strings.TrimSpace(campaignType) == "" {
		campaignType = entity.CampaignRegular
	}

	tradeIn := &entity.TradeIn{
		UserID:          input.UserID,
		DeviceModel:     model,
		DeviceCondition: input.DeviceCondition,
		CampaignType:    campaignType,
		TradeValue:      valuation.ComputeTradeValue(model, input.DeviceCondition),
		ImpactPoints:    valuation.ComputeImpactPoints(model),
		Status:          entity.TradeInStatusPending,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if tradeIn.UserID == nil {
			return repoFactory.NewTradeInRepository().Create(ctx, tradeIn)
		}

		userRepo := repoFactory.NewUserRepository()
		user, err := userRepo.FindByID(ctx, *tradeIn.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidReference.WithDetails("userId does not reference a hero")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if err := repoFactory.NewTradeInRepository().Create(ctx, tradeIn); err != nil {
			return errors.Wrap(err, "failed to store trade-in")
		}

		if _, err := userRepo.AddPoints(ctx, user.ID, tradeIn.ImpactPoints); err != nil {
			return errors.Wrap(err, "failed to credit hero points")
		}

		_, err = repoFactory.NewLeaderboardRepository().Increment(ctx, user.ID, entity.LeaderboardDelta{
			FamilyName: user.Username,
			Points:     tradeIn.ImpactPoints,
		})

		return errors.Wrap(err, "failed to update leaderboard")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create trade-in")
	}

	srv.metrics.TradeInCreated(valuation.KnownModel(model), campaignType)
	srv.log(ctx).Info("Trade-in created",
		slog.String("trade_in_id", tradeIn.ID.String()),
		slog.String("device_model", model),
		slog.Int("trade_value", tradeIn.TradeValue),
	)

	return tradeIn, nil
}

// GetTradeIn retrieves a trade-in by id
func (srv *tradeInService) GetTradeIn(ctx context.Context, tradeInID uuid.UUID) (*entity.TradeIn, error) {
	tradeIn, err := srv.tradeInRepo.FindByID(ctx, tradeInID)
	if errors.Is(err, repository.ErrTradeInNotFound) {
		return nil, errors.Wrap(domainerrors.ErrTradeInNotFound, "failed to find trade-in")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find trade-in")
	}

	return tradeIn, nil
}

// UpdateTradeInStatus moves the trade-in one step along pending, confirmed, completed
func (srv *tradeInService) UpdateTradeInStatus(ctx context.Context, tradeInID uuid.UUID, status entity.TradeInStatus) (*entity.TradeIn, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown trade-in status")
	}

	var updated *entity.TradeIn
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewTradeInRepository()
		current, err := repo.FindByID(ctx, tradeInID)
		if errors.Is(err, repository.ErrTradeInNotFound) {
			return domainerrors.ErrTradeInNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find trade-in")
		}

		if !current.Status.CanTransitionTo(status) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(
				"cannot move from " + string(current.Status) + " to " + string(status))
		}

		updated, err = repo.UpdateStatus(ctx, tradeInID, current.Status, status)
		if errors.Is(err, repository.ErrTradeInStatusChanged) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails("trade-in status changed concurrently")
		}

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update trade-in status")
	}

	srv.log(ctx).Info("Trade-in status updated",
		slog.String("trade_in_id", tradeInID.String()),
		slog.String("status", string(status)),
	)

	return updated, nil
}
