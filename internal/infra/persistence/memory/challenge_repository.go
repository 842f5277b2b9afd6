package memory

import (
	"context"

	"deliwer/internal/domain/entity"
	"deliwer/internal/domain/repository"

	"github.com/google/uuid"
)

type challengeRepository struct {
	store *Store
}

// NewChallengeRepository creates a challenge repository over store.
func NewChallengeRepository(store *Store) repository.ChallengeRepository {
	return &challengeRepository{store: store}
}

func (r *challengeRepository) Create(_ context.Context, challenge *entity.CommunityChallenge) error {
	return r.store.write(func(t *tables) error {
		ensureID(&challenge.ID)
		if challenge.CreatedAt.IsZero() {
			challenge.CreatedAt = now()
		}
		t.challenges[challenge.ID] = row[*entity.CommunityChallenge]{seq: t.nextSeq(), value: challenge.Clone()}

		return nil
	})
}

func (r *challengeRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.CommunityChallenge, error) {
	var found *entity.CommunityChallenge
	err := r.store.read(func(t *tables) error {
		c, ok := t.challenges[id]
		if !ok {
			return repository.ErrChallengeNotFound
		}
		found = c.value.Clone()

		return nil
	})

	return found, err
}

func (r *challengeRepository) FindActive(_ context.Context, region *string) ([]*entity.CommunityChallenge, error) {
	var active []*entity.CommunityChallenge
	err := r.store.read(func(t *tables) error {
		for _, c := range t.challenges.sorted() {
			if !c.value.IsActive {
				continue
			}
			if region != nil && c.value.Region != *region {
				continue
			}
			active = append(active, c.value.Clone())
		}

		return nil
	})

	return active, err
}

func (r *challengeRepository) DeactivateActive(_ context.Context, region string) error {
	return r.store.write(func(t *tables) error {
		for _, c := range t.challenges {
			if c.value.IsActive && c.value.Region == region {
				c.value.IsActive = false
			}
		}

		return nil
	})
}

func (r *challengeRepository) AddProgress(_ context.Context, id uuid.UUID, delta int) (*entity.CommunityChallenge, error) {
	var updated *entity.CommunityChallenge
	err := r.store.write(func(t *tables) error {
		c, ok := t.challenges[id]
		if !ok {
			return repository.ErrChallengeNotFound
		}
		c.value.CurrentAmount += delta
		updated = c.value.Clone()

		return nil
	})

	return updated, err
}
