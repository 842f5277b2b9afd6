package usecase

import (
	"context"

	"deliwer/internal/domain/entity"
)

// CampaignStats is the landing page counter block.
type CampaignStats struct {
	TotalHeroes       int64 `json:"totalHeroes"`
	BottlesPrevented  int64 `json:"bottlesPrevented"`
	ChallengeProgress int   `json:"challengeProgress"`
	ChallengeTarget   int   `json:"challengeTarget"`
	DaysLeft          int   `json:"daysLeft"`
}

// FirstHundredProgress tracks the launch offer.
type FirstHundredProgress struct {
	Current    int  `json:"current"`
	Total      int  `json:"total"`
	SpotsLeft  int  `json:"spotsLeft"`
	IsEligible bool `json:"isEligible"`
}

// PerformerContribution is a top performer's impact.
type PerformerContribution struct {
	CarbonSaved          int `json:"carbonSaved"`
	PlasticPrevented     int `json:"plasticPrevented"`
	LunchCredits         int `json:"lunchCredits"`
	SayNoToPlasticStreak int `json:"sayNoToPlasticStreak"`
}

// TopPerformer is a leaderboard family shown on the climate page.
type TopPerformer struct {
	Name         string                `json:"name"`
	Contribution PerformerContribution `json:"contribution"`
}

// ClimateStats summarises community climate impact.
type ClimateStats struct {
	TotalCarbonSaved      int64          `json:"totalCarbonSaved"`
	TotalPlasticPrevented int64          `json:"totalPlasticPrevented"`
	TotalLunchCredits     int64          `json:"totalLunchCredits"`
	AverageStreak         float64        `json:"averageStreak"`
	TopPerformers         []TopPerformer `json:"topPerformers"`
}

// AnalyticsUsecase defines the interface for read-only aggregates
type AnalyticsUsecase interface {
	GetGlobalImpactStats(ctx context.Context) (*entity.GlobalImpactStats, error)

	GetCampaignStats(ctx context.Context) (*CampaignStats, error)

	GetFirstHundredProgress(ctx context.Context) (*FirstHundredProgress, error)

	GetClimateStats(ctx context.Context) (*ClimateStats, error)
}
