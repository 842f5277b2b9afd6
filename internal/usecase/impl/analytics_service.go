package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"deliwer/config"
	"deliwer/internal/domain/constants"
	"deliwer/internal/domain/entity"
	"deliwer/internal/domain/repository"
	"deliwer/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const topPerformerCount = 3

type analyticsService struct {
	userRepo          repository.UserRepository
	leaderboardRepo   repository.LeaderboardRepository
	challengeRepo     repository.ChallengeRepository
	droughtRegionRepo repository.DroughtRegionRepository
	campaign          *config.CampaignConfig
	now               func() time.Time
	logger            *slog.Logger
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	UserRepo          repository.UserRepository
	LeaderboardRepo   repository.LeaderboardRepository
	ChallengeRepo     repository.ChallengeRepository
	DroughtRegionRepo repository.DroughtRegionRepository
	Config            *config.Config
	Logger            *slog.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		userRepo:          params.UserRepo,
		leaderboardRepo:   params.LeaderboardRepo,
		challengeRepo:     params.ChallengeRepo,
		droughtRegionRepo: params.DroughtRegionRepo,
		campaign:          params.Config.Campaign,
		now:               time.Now,
		logger:            params.Logger,
	}
}

// GetGlobalImpactStats aggregates the whole store. An empty store yields zeros.
func (srv *analyticsService) GetGlobalImpactStats(ctx context.Context) (*entity.GlobalImpactStats, error) {
	users, err := srv.userRepo.Count(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	totals, err := srv.leaderboardRepo.Totals(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum leaderboard")
	}

	countries, err := srv.userRepo.CountCountries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count countries")
	}

	regions, err := srv.droughtRegionRepo.CountActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count drought regions")
	}

	return &entity.GlobalImpactStats{
		TotalUsers:           users,
		TotalBottles:         totals.Bottles,
		TotalCO2Saved:        totals.CO2,
		CountriesActive:      countries,
		DroughtRegionsHelped: regions,
	}, nil
}

// GetCampaignStats returns the landing page counters
func (srv *analyticsService) GetCampaignStats(ctx context.Context) (*usecase.CampaignStats, error) {
	users, err := srv.userRepo.Count(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	totals, err := srv.leaderboardRepo.Totals(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum leaderboard")
	}

	challenge, err := currentChallenge(ctx, srv.challengeRepo, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active challenge")
	}

	stats := &usecase.CampaignStats{
		TotalHeroes:      users,
		BottlesPrevented: totals.Bottles,
		ChallengeTarget:  srv.campaign.DefaultChallengeTarget,
	}
	if challenge != nil {
		stats.ChallengeProgress = challenge.CurrentAmount
		stats.ChallengeTarget = challenge.TargetAmount
		stats.DaysLeft = daysLeft(challenge.EndDate, srv.now())
	}

	return stats, nil
}

// daysLeft rounds the remaining time up to whole days and never goes negative.
func daysLeft(end, now time.Time) int {
	remaining := end.Sub(now)
	if remaining <= 0 {
		return 0
	}

	return int(math.Ceil(remaining.Hours() / 24))
}

// GetFirstHundredProgress reports how many launch spots are taken
func (srv *analyticsService) GetFirstHundredProgress(ctx context.Context) (*usecase.FirstHundredProgress, error) {
	users, err := srv.userRepo.Count(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	total := srv.campaign.FirstHundredCap
	current := int(min(users, int64(total)))

	return &usecase.FirstHundredProgress{
		Current:    current,
		Total:      total,
		SpotsLeft:  total - current,
		IsEligible: current < total,
	}, nil
}

// GetClimateStats summarises community impact with the top families
func (srv *analyticsService) GetClimateStats(ctx context.Context) (*usecase.ClimateStats, error) {
	totals, err := srv.leaderboardRepo.Totals(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum leaderboard")
	}

	streak, err := srv.userRepo.AverageStreak(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to average streaks")
	}

	top, err := srv.leaderboardRepo.List(ctx, topPerformerCount, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list top performers")
	}

	performers := make([]usecase.TopPerformer, 0, len(top))
	for _, entry := range top {
		performer := usecase.TopPerformer{
			Name: entry.FamilyName,
			Contribution: usecase.PerformerContribution{
				CarbonSaved:      entry.CO2Saved,
				PlasticPrevented: entry.BottlesPrevented,
				LunchCredits:     entry.BottlesPrevented / constants.BottlesPerLunchCredit,
			},
		}

		user, err := srv.userRepo.FindByID(ctx, entry.UserID)
		switch {
		case err == nil:
			performer.Contribution.SayNoToPlasticStreak = user.ClimateContribution.Streak
		case !errors.Is(err, repository.ErrUserNotFound):
			return nil, errors.Wrap(err, "failed to find top performer")
		}

		performers = append(performers, performer)
	}

	return &usecase.ClimateStats{
		TotalCarbonSaved:      totals.CO2,
		TotalPlasticPrevented: totals.Bottles,
		TotalLunchCredits:     totals.Bottles / constants.BottlesPerLunchCredit,
		AverageStreak:         math.Round(streak*10) / 10,
		TopPerformers:         performers,
	}, nil
}
