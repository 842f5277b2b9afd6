package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "deliwer/internal/delivery/context"
	"deliwer/internal/domain/constants"
	"deliwer/internal/domain/entity"
	"deliwer/internal/domain/repository"
	"deliwer/internal/domain/service"

	"github.com/google/uuid"
)

// currentChallenge picks the challenge that progress is credited to. An empty
// region prefers the global challenge, then the oldest active one.
func currentChallenge(ctx context.Context, repo repository.ChallengeRepository, region string) (*entity.CommunityChallenge, error) {
	var filter *string
	if region != "" {
		filter = &region
	}

	active, err := repo.FindActive(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return nil, nil
	}

	if region == "" {
		for _, c := range active {
			if c.Region == "" {
				return c, nil
			}
		}
	}

	return active[0], nil
}

// challengeUpdate is a committed progress change.
type challengeUpdate struct {
	challenge *entity.CommunityChallenge
	previous  int
	delta     int
}

// addToCurrentChallenge credits delta to the current challenge. It returns
// nil when no challenge is active.
func addToCurrentChallenge(ctx context.Context, repo repository.ChallengeRepository, delta int) (*challengeUpdate, error) {
	current, err := currentChallenge(ctx, repo, "")
	if err != nil || current == nil {
		return nil, err
	}

	updated, err := repo.AddProgress(ctx, current.ID, delta)
	if err != nil {
		return nil, err
	}

	return &challengeUpdate{
		challenge: updated,
		previous:  updated.CurrentAmount - delta,
		delta:     delta,
	}, nil
}

// milestoneStep returns how many whole milestone steps amount has reached.
func milestoneStep(amount, target int) int {
	if target <= 0 || amount <= 0 {
		return 0
	}

	return int(int64(amount) * 100 / int64(target) / constants.ChallengeMilestoneStep)
}

// crossedMilestone returns the highest milestone percentage passed by the
// update, or 0 when none was.
func (u *challengeUpdate) crossedMilestone() int {
	before := milestoneStep(u.previous, u.challenge.TargetAmount)
	after := milestoneStep(u.challenge.CurrentAmount, u.challenge.TargetAmount)
	if after <= before {
		return 0
	}

	return after * constants.ChallengeMilestoneStep
}

// impactNotifier publishes impact events after the unit of work commits.
// Publishing is best effort and never fails the request.
type impactNotifier struct {
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

func (n *impactNotifier) newEvent(ctx context.Context, eventType string) *service.ImpactEvent {
	return &service.ImpactEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
	}
}

func (n *impactNotifier) publish(ctx context.Context, event *service.ImpactEvent) {
	if n.publisher == nil {
		return
	}

	if err := n.publisher.PublishImpactEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, n.logger).Warn("Failed to publish impact event",
			slog.String("event_type", event.Type),
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}

// challengeProgressed records metrics and publishes a milestone event when
// one was crossed.
func (n *impactNotifier) challengeProgressed(ctx context.Context, update *challengeUpdate) {
	if update == nil {
		return
	}

	c := update.challenge
	n.metrics.ChallengeProgress(c.ID.String(), c.CurrentAmount)

	milestone := update.crossedMilestone()
	if milestone == 0 {
		return
	}

	deliverycontext.GetLoggerOrDefault(ctx, n.logger).Info("Community challenge reached a milestone",
		slog.String("challenge_id", c.ID.String()),
		slog.Int("milestone", milestone),
		slog.Int("current_amount", c.CurrentAmount),
	)

	event := n.newEvent(ctx, service.EventChallengeMilestone)
	event.ChallengeID = c.ID.String()
	event.ChallengeTitle = c.Title
	event.Region = c.Region
	event.CurrentAmount = c.CurrentAmount
	event.TargetAmount = c.TargetAmount
	event.Milestone = milestone
	event.BottlesAdded = update.delta
	n.publish(ctx, event)
}
