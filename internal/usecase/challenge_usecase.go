package usecase

import (
	"context"
	"time"

	"deliwer/internal/domain/entity"
)

// CreateChallengeInput carries a new community challenge.
type CreateChallengeInput struct {
	Title        string
	Description  string
	TargetAmount int
	EndDate      time.Time
	Region       string
	RewardPoints int
	RewardBadges []string
	Inactive     bool
}

// ChallengeUsecase defines the interface for the community challenge
type ChallengeUsecase interface {
	// GetCurrentChallenge returns the active challenge of region. An empty
	// region prefers the global challenge, then the oldest active one.
	// Returns nil without error when nothing is active.
	GetCurrentChallenge(ctx context.Context, region string) (*entity.CommunityChallenge, error)

	// UpdateChallengeProgress adds delta to the current challenge. Returns nil
	// without error when nothing is active.
	UpdateChallengeProgress(ctx context.Context, delta int) (*entity.CommunityChallenge, error)

	// CreateChallenge stores a challenge, retiring any other active
	// challenge of the same region.
	CreateChallenge(ctx context.Context, input *CreateChallengeInput) (*entity.CommunityChallenge, error)
}
