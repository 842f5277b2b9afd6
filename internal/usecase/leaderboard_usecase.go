package usecase

import (
	"context"

	"deliwer/internal/domain/entity"

	"github.com/google/uuid"
)

// LeaderboardUsecase defines the interface for family rankings
type LeaderboardUsecase interface {
	// GetLeaderboard returns at most limit entries by points descending.
	// A non-positive limit means the default; larger limits are clamped.
	GetLeaderboard(ctx context.Context, limit int, country string) ([]*entity.LeaderboardEntry, error)

	// UpsertLeaderboardEntry merges patch into the hero's entry
	UpsertLeaderboardEntry(ctx context.Context, userID uuid.UUID, patch entity.LeaderboardPatch) (*entity.LeaderboardEntry, error)
}
