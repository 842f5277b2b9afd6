package impl

import (
	"context"
	"log/slog"
	"strings"

	"deliwer/config"
	deliverycontext "deliwer/internal/delivery/context"
	"deliwer/internal/domain/entity"
	domainerrors "deliwer/internal/domain/errors"
	"deliwer/internal/domain/repository"
	"deliwer/internal/domain/service"
	"deliwer/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type challengeService struct {
	txManager     repository.TransactionManager
	challengeRepo repository.ChallengeRepository
	notifier      *impactNotifier
	defaultTarget int
	logger        *slog.Logger
}

// ChallengeServiceParams holds dependencies for ChallengeService, injected by Fx.
type ChallengeServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ChallengeRepo repository.ChallengeRepository
	Publisher     service.EventPublisher
	Metrics       service.MetricsRecorder
	Config        *config.Config
	Logger        *slog.Logger
}

// NewChallengeService creates a new community challenge service
func NewChallengeService(params ChallengeServiceParams) usecase.ChallengeUsecase {
	return &challengeService{
		txManager:     params.TxManager,
		challengeRepo: params.ChallengeRepo,
		notifier: &impactNotifier{
			publisher: params.Publisher,
			metrics:   params.Metrics,
			logger:    params.Logger,
		},
		defaultTarget: params.Config.Campaign.DefaultChallengeTarget,
		logger:        params.Logger,
	}
}

func (srv *challengeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCurrentChallenge returns the challenge progress is credited to
func (srv *challengeService) GetCurrentChallenge(ctx context.Context, region string) (*entity.CommunityChallenge, error) {
	challenge, err := currentChallenge(ctx, srv.challengeRepo, strings.TrimSpace(region))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active challenge")
	}

	return challenge, nil
}

// UpdateChallengeProgress adds delta to the current challenge
func (srv *challengeService) UpdateChallengeProgress(ctx context.Context, delta int) (*entity.CommunityChallenge, error) {
	if delta <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("delta must be positive")
	}

	var update *challengeUpdate
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		update, err = addToCurrentChallenge(ctx, repoFactory.NewChallengeRepository(), delta)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update challenge progress")
	}

	if update == nil {
		srv.log(ctx).Debug("No active challenge, progress ignored", slog.Int("delta", delta))

		return nil, nil
	}

	srv.notifier.challengeProgressed(ctx, update)

	return update.challenge, nil
}

// CreateChallenge stores a challenge and retires the previous active one of its region
func (srv *challengeService) CreateChallenge(ctx context.Context, input *usecase.CreateChallengeInput) (*entity.CommunityChallenge, error) {
	target := input.TargetAmount
	if target <= 0 {
		target = srv.defaultTarget
	}

	badges := input.RewardBadges
	if badges == nil {
		badges = []string{}
	}

	challenge := &entity.CommunityChallenge{
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		TargetAmount: target,
		EndDate:      input.EndDate.UTC(),
		Region:       strings.TrimSpace(input.Region),
		Rewards: entity.ChallengeRewards{
			Points: input.RewardPoints,
			Badges: badges,
		},
		IsActive: !input.Inactive,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewChallengeRepository()
		if challenge.IsActive {
			if err := repo.DeactivateActive(ctx, challenge.Region); err != nil {
				return errors.Wrap(err, "failed to retire active challenge")
			}
		}

		return repo.Create(ctx, challenge)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create challenge")
	}

	srv.log(ctx).Info("Community challenge created",
		slog.String("challenge_id", challenge.ID.String()),
		slog.String("region", challenge.Region),
		slog.Int("target_amount", challenge.TargetAmount),
	)

	return challenge, nil
}
