package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"deliwer/config"
	"deliwer/internal/domain/constants"
	"deliwer/internal/domain/entity"
	"deliwer/internal/domain/repository"
	"deliwer/internal/domain/service"
	"deliwer/internal/infra/persistence/memory"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{Campaign: config.DefaultCampaign()}
}

// mockPublisher records published impact events.
type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishImpactEvent(ctx context.Context, event *service.ImpactEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *mockPublisher) Close() error {
	return m.Called().Error(0)
}

func (m *mockPublisher) events() []*service.ImpactEvent {
	var events []*service.ImpactEvent
	for _, call := range m.Calls {
		if call.Method == "PublishImpactEvent" {
			events = append(events, call.Arguments.Get(1).(*service.ImpactEvent))
		}
	}

	return events
}

func newMockPublisher(t *testing.T) *mockPublisher {
	t.Helper()

	p := &mockPublisher{}
	p.On("PublishImpactEvent", mock.Anything, mock.Anything).Return(nil).Maybe()

	return p
}

// testStore is an in-memory backend shared by the services under test.
type testStore struct {
	repos     repository.RepositoryFactory
	txManager repository.TransactionManager
}

func newTestStore() *testStore {
	store := memory.NewStore()

	return &testStore{
		repos:     memory.NewRepositoryFactory(store),
		txManager: memory.NewTransactionManager(store),
	}
}

func (s *testStore) createUser(t *testing.T, username, country string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		Country:      country,
		HeroLevel:    constants.DefaultHeroLevel,
		Achievements: []string{},
	}
	require.NoError(t, s.repos.NewUserRepository().Create(context.Background(), user))

	return user
}

func (s *testStore) createChallenge(t *testing.T, region string, current, target int) *entity.CommunityChallenge {
	t.Helper()

	challenge := &entity.CommunityChallenge{
		Title:         "Challenge " + region,
		TargetAmount:  target,
		CurrentAmount: current,
		EndDate:       time.Now().Add(10 * 24 * time.Hour).UTC(),
		Region:        region,
		Rewards:       entity.ChallengeRewards{Points: 100, Badges: []string{}},
		IsActive:      true,
	}
	require.NoError(t, s.repos.NewChallengeRepository().Create(context.Background(), challenge))

	return challenge
}
