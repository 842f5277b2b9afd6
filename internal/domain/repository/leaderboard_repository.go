package repository

import (
	"context"

	"deliwer/internal/domain/entity"

	"github.com/google/uuid"
)

// LeaderboardRepository defines family ranking persistence.
type LeaderboardRepository interface {
	// Upsert merges patch into the user's entry, creating it with defaults
	// (empty family name, 0 points, level 1) when missing.
	Upsert(ctx context.Context, userID uuid.UUID, patch entity.LeaderboardPatch) (*entity.LeaderboardEntry, error)

	// Increment adds delta to the user's entry atomically, creating it when missing.
	Increment(ctx context.Context, userID uuid.UUID, delta entity.LeaderboardDelta) (*entity.LeaderboardEntry, error)

	// List returns at most limit entries by points descending. Ties keep
	// insertion order. A non-empty country keeps entries whose user lives there.
	List(ctx context.Context, limit int, country string) ([]*entity.LeaderboardEntry, error)

	// Totals sums bottles and CO2 over entries in scope.
	Totals(ctx context.Context, country string) (entity.LeaderboardTotals, error)
}
