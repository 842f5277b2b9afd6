package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// ChallengeRewards are handed out when a challenge completes.
type ChallengeRewards struct {
	Points int      `json:"points"`
	Badges []string `json:"badges"`
}

// CommunityChallenge is a time-boxed collective goal. An empty Region means
// the challenge is global.
type CommunityChallenge struct {
	ID            uuid.UUID        `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty"`
	TargetAmount  int              `json:"targetAmount"`
	CurrentAmount int              `json:"currentAmount"`
	EndDate       time.Time        `json:"endDate"`
	Region        string           `json:"region,omitempty"`
	Rewards       ChallengeRewards `json:"rewards"`
	IsActive      bool             `json:"isActive"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// Clone returns a copy that shares no slices with c.
func (c *CommunityChallenge) Clone() *CommunityChallenge {
	if c == nil {
		return nil
	}
	out := *c
	out.Rewards.Badges = slices.Clone(c.Rewards.Badges)

	return &out
}

// ProgressPercent is the share of the target reached, uncapped.
func (c *CommunityChallenge) ProgressPercent() float64 {
	if c.TargetAmount <= 0 {
		return 0
	}

	return float64(c.CurrentAmount) * 100 / float64(c.TargetAmount)
}
