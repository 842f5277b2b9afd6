package usecase

import (
	"context"

	"deliwer/internal/domain/valuation"

	"github.com/google/uuid"
)

// ShareAchievementInput carries a social share.
type ShareAchievementInput struct {
	UserID          uuid.UUID
	Platform        string
	AchievementType string
}

// ShareResult reports the bonus granted for a share. Credited is false when
// the hero is unknown or was already rewarded for the same share.
type ShareResult struct {
	Success         bool     `json:"success"`
	Message         string   `json:"message"`
	Platform        string   `json:"platform"`
	AchievementType string   `json:"achievementType"`
	BonusPoints     int      `json:"bonusPoints"`
	Credited        bool     `json:"credited"`
	Hashtags        []string `json:"hashtags"`
}

// CampaignUsecase defines the interface for campaign promotions
type CampaignUsecase interface {
	// EstimateTrade quotes a device under a campaign
	EstimateTrade(ctx context.Context, deviceModel, condition, campaignType string) valuation.Estimate

	// ShareAchievement grants the platform bonus once per hero, platform and
	// achievement
	ShareAchievement(ctx context.Context, input *ShareAchievementInput) (*ShareResult, error)
}
