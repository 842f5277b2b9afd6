package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "deliwer/internal/delivery/context"
	"deliwer/internal/domain/constants"
	"deliwer/internal/domain/entity"
	"deliwer/internal/domain/repository"
	"deliwer/internal/domain/service"
	"deliwer/internal/domain/valuation"
	"deliwer/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const otherPlatformBonus = 50

// share bonus points per platform
var platformBonuses = map[string]int{
	"linkedin":  200,
	"instagram": 150,
	"twitter":   100,
	"facebook":  100,
}

type campaignService struct {
	txManager repository.TransactionManager
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// CampaignServiceParams holds dependencies for CampaignService, injected by Fx.
type CampaignServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewCampaignService creates a new campaign service
func NewCampaignService(params CampaignServiceParams) usecase.CampaignUsecase {
	return &campaignService{
		txManager: params.TxManager,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

// EstimateTrade quotes a device under a campaign
func (srv *campaignService) EstimateTrade(_ context.Context, deviceModel, condition, campaignType string) valuation.Estimate {
	return valuation.EstimateCampaignTrade(deviceModel, condition, campaignType)
}

// ShareBonus returns the points granted for sharing on platform.
func ShareBonus(platform string) int {
	if bonus, ok := platformBonuses[strings.ToLower(strings.TrimSpace(platform))]; ok {
		return bonus
	}

	return otherPlatformBonus
}

// ShareAchievementLabel is the achievement recorded for a rewarded share.
func ShareAchievementLabel(platform, achievementType string) string {
	return fmt.Sprintf("Shared %s on %s", achievementType, platform)
}

// ShareAchievement credits the share bonus to hero points and the leaderboard.
// The share is recorded as an achievement so repeats earn nothing.
func (srv *campaignService) ShareAchievement(ctx context.Context, input *usecase.ShareAchievementInput) (*usecase.ShareResult, error) {
	platform := strings.ToLower(strings.TrimSpace(input.Platform))
	result := &usecase.ShareResult{
		Success:         true,
		Platform:        platform,
		AchievementType: strings.TrimSpace(input.AchievementType),
		BonusPoints:     ShareBonus(platform),
		Hashtags:        slices.Clone(constants.SocialHashtags),
	}
	label := ShareAchievementLabel(result.Platform, result.AchievementType)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		user, err := userRepo.FindByID(ctx, input.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Share from unknown hero, bonus not credited",
				slog.String("user_id", input.UserID.String()))

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if slices.Contains(user.Achievements, label) {
			return nil
		}

		if _, err := userRepo.AddPoints(ctx, user.ID, result.BonusPoints); err != nil {
			return errors.Wrap(err, "failed to credit share bonus")
		}
		if _, err := userRepo.AddAchievement(ctx, user.ID, label); err != nil {
			return errors.Wrap(err, "failed to record share")
		}
		if _, err := repoFactory.NewLeaderboardRepository().Increment(ctx, user.ID, entity.LeaderboardDelta{
			FamilyName: user.Username,
			Points:     result.BonusPoints,
		}); err != nil {
			return errors.Wrap(err, "failed to update leaderboard")
		}
		result.Credited = true

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to share achievement")
	}

	if result.Credited {
		result.Message = fmt.Sprintf("Thanks for sharing on %s! You earned %d bonus points.", platform, result.BonusPoints)
	} else {
		result.Message = fmt.Sprintf("Thanks for sharing on %s!", platform)
	}

	srv.metrics.ShareRecorded(platform)

	return result, nil
}
