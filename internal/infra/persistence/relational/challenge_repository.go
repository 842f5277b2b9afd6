package relational

import (
	"context"

	"deliwer/internal/domain/entity"
	domainerrors "deliwer/internal/domain/errors"
	"deliwer/internal/domain/repository"
	"deliwer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type challengeRepository struct {
	db *gorm.DB
}

// NewChallengeRepository is the constructor for challengeRepository.
func NewChallengeRepository(db *gorm.DB) repository.ChallengeRepository {
	return &challengeRepository{db: db}
}

func (repo *challengeRepository) Create(ctx context.Context, challenge *entity.CommunityChallenge) error {
	if challenge.ID == uuid.Nil {
		challenge.ID = newID()
	}
	challengeM := fromChallengeDomain(challenge)

	// The partial unique index rejects a second active challenge per region.
	if err := repo.db.WithContext(ctx).Create(challengeM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrConflict.WithDetails("region already has an active challenge"), "failed to create challenge")
	}

	challenge.CreatedAt = challengeM.CreatedAt

	return nil
}

func (repo *challengeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CommunityChallenge, error) {
	var challengeM model.CommunityChallengeModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&challengeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find challenge by ID")
	}

	return toChallengeDomain(&challengeM), nil
}

func (repo *challengeRepository) FindActive(ctx context.Context, region *string) ([]*entity.CommunityChallenge, error) {
	var challengeModels []*model.CommunityChallengeModel
	query := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Order("id ASC")
	if region != nil {
		query = query.Where("region = ?", *region)
	}
	if err := query.Find(&challengeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active challenges")
	}

	challenges := make([]*entity.CommunityChallenge, 0, len(challengeModels))
	for _, challengeM := range challengeModels {
		challenges = append(challenges, toChallengeDomain(challengeM))
	}

	return challenges, nil
}

func (repo *challengeRepository) DeactivateActive(ctx context.Context, region string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.CommunityChallengeModel{}).
		Where("is_active = ? AND region = ?", true, region).
		UpdateColumn("is_active", false).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate challenges")
	}

	return nil
}

// AddProgress increments in SQL so concurrent orders never lose updates.
func (repo *challengeRepository) AddProgress(ctx context.Context, id uuid.UUID, delta int) (*entity.CommunityChallenge, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CommunityChallengeModel{}).
		Where("id = ?", id).
		UpdateColumn("current_amount", gorm.Expr("current_amount + ?", delta))
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to add challenge progress")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrChallengeNotFound
	}

	return repo.FindByID(ctx, id)
}

func toChallengeDomain(data *model.CommunityChallengeModel) *entity.CommunityChallenge {
	return &entity.CommunityChallenge{
		ID:            data.ID,
		Title:         data.Title,
		Description:   data.Description,
		TargetAmount:  data.TargetAmount,
		CurrentAmount: data.CurrentAmount,
		EndDate:       data.EndDate,
		Region:        data.Region,
		Rewards: entity.ChallengeRewards{
			Points: data.RewardPoints,
			Badges: nonNil(data.RewardBadges),
		},
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
	}
}

func fromChallengeDomain(data *entity.CommunityChallenge) *model.CommunityChallengeModel {
	return &model.CommunityChallengeModel{
		ID:            data.ID,
		Title:         data.Title,
		Description:   data.Description,
		TargetAmount:  data.TargetAmount,
		CurrentAmount: data.CurrentAmount,
		EndDate:       data.EndDate,
		Region:        data.Region,
		RewardPoints:  data.Rewards.Points,
		RewardBadges:  datatypes.NewJSONSlice(nonNil(data.Rewards.Badges)),
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
	}
}
