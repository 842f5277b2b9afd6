package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "deliwer/internal/delivery/context"
	"deliwer/internal/domain/constants"
	"deliwer/internal/domain/entity"
	domainerrors "deliwer/internal/domain/errors"
	"deliwer/internal/domain/repository"
	"deliwer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type leaderboardService struct {
	txManager       repository.TransactionManager
	leaderboardRepo repository.LeaderboardRepository
	logger          *slog.Logger
}

// LeaderboardServiceParams holds dependencies for LeaderboardService, injected by Fx.
type LeaderboardServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	LeaderboardRepo repository.LeaderboardRepository
	Logger          *slog.Logger
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(params LeaderboardServiceParams) usecase.LeaderboardUsecase {
	return &leaderboardService{
		txManager:       params.TxManager,
		leaderboardRepo: params.LeaderboardRepo,
		logger:          params.Logger,
	}
}

// clampLimit applies the default and maximum page size.
func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return constants.DefaultLeaderboardLimit
	case limit > constants.MaxLeaderboardLimit:
		return constants.MaxLeaderboardLimit
	default:
		return limit
	}
}

// GetLeaderboard returns the top families
func (srv *leaderboardService) GetLeaderboard(ctx context.Context, limit int, country string) ([]*entity.LeaderboardEntry, error) {
	entries, err := srv.leaderboardRepo.List(ctx, clampLimit(limit), strings.TrimSpace(country))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list leaderboard")
	}

	return entries, nil
}

// UpsertLeaderboardEntry merges patch into the hero's entry. The hero must exist.
func (srv *leaderboardService) UpsertLeaderboardEntry(ctx context.Context, userID uuid.UUID, patch entity.LeaderboardPatch) (*entity.LeaderboardEntry, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	var entry *entity.LeaderboardEntry
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.NewUserRepository().FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		entry, err = repoFactory.NewLeaderboardRepository().Upsert(ctx, userID, patch)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert leaderboard entry")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Leaderboard entry updated",
		slog.String("user_id", userID.String()),
		slog.Int("points", entry.Points),
	)

	return entry, nil
}

func validatePatch(patch entity.LeaderboardPatch) error {
	for name, v := range map[string]*int{
		"points":           patch.Points,
		"referrals":        patch.Referrals,
		"bottlesPrevented": patch.BottlesPrevented,
		"co2Saved":         patch.CO2Saved,
	} {
		if v != nil && *v < 0 {
			return domainerrors.ErrValidationFailed.WithDetails(name + " must not be negative")
		}
	}
	if patch.Level != nil && *patch.Level < constants.DefaultHeroLevel {
		return domainerrors.ErrValidationFailed.WithDetails("level must be at least 1")
	}

	return nil
}
