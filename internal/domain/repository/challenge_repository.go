package repository

import (
	"context"

	"deliwer/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrChallengeNotFound is returned when a challenge is not found.
var ErrChallengeNotFound = errors.New("challenge not found")

// ChallengeRepository defines community challenge persistence.
type ChallengeRepository interface {
	Create(ctx context.Context, challenge *entity.CommunityChallenge) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.CommunityChallenge, error)

	// FindActive returns active challenges oldest first. A nil region
	// matches every region; an empty one matches global challenges only.
	FindActive(ctx context.Context, region *string) ([]*entity.CommunityChallenge, error)

	// DeactivateActive clears the active flag of every challenge in region.
	DeactivateActive(ctx context.Context, region string) error

	// AddProgress adds delta to the current amount in one statement.
	AddProgress(ctx context.Context, id uuid.UUID, delta int) (*entity.CommunityChallenge, error)
}
