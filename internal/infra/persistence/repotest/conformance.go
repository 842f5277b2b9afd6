// Package repotest holds a behavioural suite every repository backend must
// pass. Backends call Run from their own tests with a fresh store per case.
package repotest

import (
	"context"
	"testing"
	"time"

	"deliwer/internal/domain/entity"
	"deliwer/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Backend bundles the repositories of one freshly created store.
type Backend struct {
	Repos     repository.RepositoryFactory
	TxManager repository.TransactionManager
}

// Factory creates an empty backend for a single test case.
type Factory func(t *testing.T) Backend

// Run executes the whole suite against backends produced by newBackend.
func Run(t *testing.T, newBackend Factory) {
	t.Helper()

	cases := map[string]func(t *testing.T, b Backend){
		"UserCreateAndFind":           testUserCreateAndFind,
		"UserDuplicate":               testUserDuplicate,
		"UserPointsLevelAchievements": testUserPointsLevelAchievements,
		"UserAggregates":              testUserAggregates,
		"TradeInStatusCompareAndSet":  testTradeInStatus,
		"OrdersNewestFirst":           testOrdersNewestFirst,
		"AffiliateLifecycle":          testAffiliateLifecycle,
		"LeaderboardUpsertIncrement":  testLeaderboardUpsertIncrement,
		"LeaderboardRankingAndScope":  testLeaderboardRanking,
		"ChallengeActiveAndProgress":  testChallenges,
		"DroughtRegions":              testDroughtRegions,
		"TransactionCommitRollback":   testTransactions,
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			tc(t, newBackend(t))
		})
	}
}

func newUser(username, email, country string, streak int) *entity.User {
	return &entity.User{
		Username:     username,
		Email:        email,
		Country:      country,
		HeroLevel:    1,
		Achievements: []string{},
		ClimateContribution: entity.ClimateContribution{
			Streak: streak,
		},
	}
}

func testUserCreateAndFind(t *testing.T, b Backend) {
	ctx := context.Background()
	users := b.Repos.NewUserRepository()

	u := newUser("amira", "amira@example.com", "UAE", 0)
	require.NoError(t, users.Create(ctx, u))
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "amira", got.Username)
	assert.Equal(t, "UAE", got.Country)
	assert.Equal(t, 1, got.HeroLevel)
	assert.Empty(t, got.Achievements)

	byEmail, err := users.FindByEmail(ctx, "AMIRA@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = users.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func testUserDuplicate(t *testing.T, b Backend) {
	ctx := context.Background()
	users := b.Repos.NewUserRepository()

	require.NoError(t, users.Create(ctx, newUser("amira", "amira@example.com", "UAE", 0)))

	err := users.Create(ctx, newUser("other", "Amira@Example.com", "UAE", 0))
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)

	err = users.Create(ctx, newUser("amira", "second@example.com", "UAE", 0))
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)

	err = users.Create(ctx, newUser("Amira", "third@example.com", "UAE", 0))
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)

	n, err := users.Count(ctx, "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func testUserPointsLevelAchievements(t *testing.T, b Backend) {
	ctx := context.Background()
	users := b.Repos.NewUserRepository()

	u := newUser("amira", "amira@example.com", "UAE", 0)
	require.NoError(t, users.Create(ctx, u))

	got, err := users.SetPoints(ctx, u.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, got.HeroPoints)

	got, err = users.AddPoints(ctx, u.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, 150, got.HeroPoints)

	got, err = users.SetLevel(ctx, u.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, got.HeroLevel)

	_, err = users.AddAchievement(ctx, u.ID, "first_trade_in")
	require.NoError(t, err)
	got, err = users.AddAchievement(ctx, u.ID, "water_saver")
	require.NoError(t, err)
	assert.Equal(t, []string{"first_trade_in", "water_saver"}, got.Achievements)

	_, err = users.AddPoints(ctx, uuid.New(), 1)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	_, err = users.SetLevel(ctx, uuid.New(), 1)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	_, err = users.AddAchievement(ctx, uuid.New(), "x")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func testUserAggregates(t *testing.T, b Backend) {
	ctx := context.Background()
	users := b.Repos.NewUserRepository()

	avg, err := users.AverageStreak(ctx)
	require.NoError(t, err)
	assert.Zero(t, avg)

	require.NoError(t, users.Create(ctx, newUser("a", "a@example.com", "UAE", 10)))
	require.NoError(t, users.Create(ctx, newUser("b", "b@example.com", "UAE", 20)))
	require.NoError(t, users.Create(ctx, newUser("c", "c@example.com", "India", 0)))
	require.NoError(t, users.Create(ctx, newUser("d", "d@example.com", "", 6)))
	require.NoError(t, users.Create(ctx, newUser("e", "e@example.com", "uae", 9)))

	n, err := users.Count(ctx, "")
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)

	n, err = users.Count(ctx, "UAE")
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	countries, err := users.CountCountries(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, countries)

	avg, err = users.AverageStreak(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, avg, 0.001)
}

func testTradeInStatus(t *testing.T, b Backend) {
	ctx := context.Background()
	tradeIns := b.Repos.NewTradeInRepository()

	tradeIn := &entity.TradeIn{
		DeviceModel:     "iPhone 15 Pro",
		DeviceCondition: "good",
		CampaignType:    entity.CampaignRegular,
		TradeValue:      1530,
		ImpactPoints:    2800,
		Status:          entity.TradeInStatusPending,
	}
	require.NoError(t, tradeIns.Create(ctx, tradeIn))

	got, err := tradeIns.FindByID(ctx, tradeIn.ID)
	require.NoError(t, err)
	assert.Equal(t, 1530, got.TradeValue)
	assert.Nil(t, got.UserID)
	assert.Equal(t, entity.TradeInStatusPending, got.Status)

	updated, err := tradeIns.UpdateStatus(ctx, tradeIn.ID, entity.TradeInStatusPending, entity.TradeInStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.TradeInStatusConfirmed, updated.Status)

	_, err = tradeIns.UpdateStatus(ctx, tradeIn.ID, entity.TradeInStatusPending, entity.TradeInStatusConfirmed)
	assert.ErrorIs(t, err, repository.ErrTradeInStatusChanged)

	_, err = tradeIns.UpdateStatus(ctx, uuid.New(), entity.TradeInStatusPending, entity.TradeInStatusConfirmed)
	assert.ErrorIs(t, err, repository.ErrTradeInNotFound)

	_, err = tradeIns.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrTradeInNotFound)
}

func testOrdersNewestFirst(t *testing.T, b Backend) {
	ctx := context.Background()
	orders := b.Repos.NewOrderRepository()

	var ids []uuid.UUID
	for _, name := range []string{"first", "second", "third"} {
		order := &entity.AquacafeOrder{
			CustomerName:    name,
			CustomerPhone:   "+971500000000",
			CustomerAddress: "Dubai Marina",
			OrderTotal:      99,
			Status:          entity.OrderStatusPending,
			InstantRewards: entity.InstantRewards{
				Points:  2400,
				Badges:  []string{"Water Hero"},
				Bonuses: []string{"Free delivery"},
			},
		}
		require.NoError(t, orders.Create(ctx, order))
		ids = append(ids, order.ID)
		time.Sleep(2 * time.Millisecond)
	}

	all, err := orders.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids[2], all[0].ID)
	assert.Equal(t, ids[0], all[2].ID)

	got, err := orders.FindByID(ctx, ids[1])
	require.NoError(t, err)
	assert.Equal(t, "second", got.CustomerName)
	assert.Equal(t, []string{"Water Hero"}, got.InstantRewards.Badges)
	assert.Equal(t, []string{"Free delivery"}, got.InstantRewards.Bonuses)

	_, err = orders.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func testAffiliateLifecycle(t *testing.T, b Backend) {
	ctx := context.Background()
	affiliates := b.Repos.NewAffiliateRepository()

	first := &entity.Affiliate{
		Name:           "Marina Cafe",
		Email:          "cafe@example.com",
		Country:        "UAE",
		Type:           entity.AffiliateTypeRestaurant,
		CommissionRate: 30,
		IsActive:       true,
	}
	require.NoError(t, affiliates.Create(ctx, first))

	second := &entity.Affiliate{
		Name:           "Pune Water Circle",
		Email:          "pune@example.com",
		Country:        "India",
		Type:           entity.AffiliateTypeCommunityLeader,
		CommissionRate: 30,
		IsActive:       true,
	}
	require.NoError(t, affiliates.Create(ctx, second))

	dup := &entity.Affiliate{Name: "Again", Email: "CAFE@example.com", Type: entity.AffiliateTypeAgent}
	assert.ErrorIs(t, affiliates.Create(ctx, dup), repository.ErrDuplicateAffiliate)

	all, err := affiliates.FindAll(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)

	inUAE, err := affiliates.FindAll(ctx, "uae")
	require.NoError(t, err)
	require.Len(t, inUAE, 1)
	assert.Equal(t, first.ID, inUAE[0].ID)

	byEmail, err := affiliates.FindByEmail(ctx, "Pune@Example.com")
	require.NoError(t, err)
	assert.Equal(t, second.ID, byEmail.ID)

	rewards := entity.NFTRewards{Earned: 5, Distributed: 3, CommunityImpact: 120}
	updated, err := affiliates.UpdateNFTRewards(ctx, first.ID, rewards)
	require.NoError(t, err)
	assert.Equal(t, rewards, updated.NFTRewards)

	_, err = affiliates.UpdateNFTRewards(ctx, uuid.New(), rewards)
	assert.ErrorIs(t, err, repository.ErrAffiliateNotFound)
	_, err = affiliates.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrAffiliateNotFound)
}

func intPtr(v int) *int { return &v }

func testLeaderboardUpsertIncrement(t *testing.T, b Backend) {
	ctx := context.Background()
	leaderboard := b.Repos.NewLeaderboardRepository()
	userID := uuid.New()

	entry, err := leaderboard.Upsert(ctx, userID, entity.LeaderboardPatch{Points: intPtr(500)})
	require.NoError(t, err)
	assert.Equal(t, 500, entry.Points)
	assert.Equal(t, 1, entry.Level)
	assert.Empty(t, entry.FamilyName)

	name := "Al-Maktoum Family"
	entry, err = leaderboard.Upsert(ctx, userID, entity.LeaderboardPatch{FamilyName: &name, Level: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, name, entry.FamilyName)
	assert.Equal(t, 500, entry.Points)
	assert.Equal(t, 3, entry.Level)

	entry, err = leaderboard.Increment(ctx, userID, entity.LeaderboardDelta{
		FamilyName:       "ignored",
		Points:           100,
		BottlesPrevented: 40,
		CO2Saved:         20,
		Referrals:        1,
	})
	require.NoError(t, err)
	assert.Equal(t, name, entry.FamilyName)
	assert.Equal(t, 600, entry.Points)
	assert.Equal(t, 40, entry.BottlesPrevented)
	assert.Equal(t, 20, entry.CO2Saved)
	assert.Equal(t, 1, entry.Referrals)

	other := uuid.New()
	entry, err = leaderboard.Increment(ctx, other, entity.LeaderboardDelta{FamilyName: "newcomer", Points: 10})
	require.NoError(t, err)
	assert.Equal(t, "newcomer", entry.FamilyName)
	assert.Equal(t, 10, entry.Points)
	assert.Equal(t, 1, entry.Level)

	all, err := leaderboard.List(ctx, 10, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func testLeaderboardRanking(t *testing.T, b Backend) {
	ctx := context.Background()
	users := b.Repos.NewUserRepository()
	leaderboard := b.Repos.NewLeaderboardRepository()

	seed := []struct {
		name    string
		country string
		points  int
		bottles int
	}{
		{"tie-first", "UAE", 300, 10},
		{"top", "India", 900, 20},
		{"tie-second", "UAE", 300, 30},
		{"low", "UAE", 100, 40},
	}

	ids := make(map[string]uuid.UUID)
	for _, s := range seed {
		u := newUser(s.name, s.name+"@example.com", s.country, 0)
		require.NoError(t, users.Create(ctx, u))
		ids[s.name] = u.ID
		_, err := leaderboard.Increment(ctx, u.ID, entity.LeaderboardDelta{
			FamilyName:       s.name,
			Points:           s.points,
			BottlesPrevented: s.bottles,
			CO2Saved:         s.bottles / 2,
		})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	top, err := leaderboard.List(ctx, 3, "")
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, ids["top"], top[0].UserID)
	assert.Equal(t, ids["tie-first"], top[1].UserID)
	assert.Equal(t, ids["tie-second"], top[2].UserID)

	uae, err := leaderboard.List(ctx, 10, "uae")
	require.NoError(t, err)
	require.Len(t, uae, 3)
	assert.Equal(t, ids["low"], uae[2].UserID)

	totals, err := leaderboard.Totals(ctx, "")
	require.NoError(t, err)
	assert.EqualValues(t, 100, totals.Bottles)
	assert.EqualValues(t, 50, totals.CO2)

	totals, err = leaderboard.Totals(ctx, "India")
	require.NoError(t, err)
	assert.EqualValues(t, 20, totals.Bottles)

	totals, err = leaderboard.Totals(ctx, "Nowhere")
	require.NoError(t, err)
	assert.Zero(t, totals.Bottles)
}

func newChallenge(title, region string) *entity.CommunityChallenge {
	return &entity.CommunityChallenge{
		Title:        title,
		TargetAmount: 1000,
		EndDate:      time.Now().Add(72 * time.Hour).UTC(),
		Region:       region,
		Rewards:      entity.ChallengeRewards{Points: 500, Badges: []string{"Ramadan Hero"}},
		IsActive:     true,
	}
}

func testChallenges(t *testing.T, b Backend) {
	ctx := context.Background()
	challenges := b.Repos.NewChallengeRepository()

	global := newChallenge("global", "")
	require.NoError(t, challenges.Create(ctx, global))
	time.Sleep(2 * time.Millisecond)
	dubai := newChallenge("dubai", "Dubai")
	require.NoError(t, challenges.Create(ctx, dubai))

	all, err := challenges.FindActive(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, global.ID, all[0].ID)

	empty := ""
	onlyGlobal, err := challenges.FindActive(ctx, &empty)
	require.NoError(t, err)
	require.Len(t, onlyGlobal, 1)
	assert.Equal(t, global.ID, onlyGlobal[0].ID)
	assert.Equal(t, []string{"Ramadan Hero"}, onlyGlobal[0].Rewards.Badges)

	require.NoError(t, challenges.DeactivateActive(ctx, "Dubai"))
	region := "Dubai"
	inDubai, err := challenges.FindActive(ctx, &region)
	require.NoError(t, err)
	assert.Empty(t, inDubai)

	replacement := newChallenge("dubai again", "Dubai")
	require.NoError(t, challenges.Create(ctx, replacement))

	old, err := challenges.FindByID(ctx, dubai.ID)
	require.NoError(t, err)
	assert.False(t, old.IsActive)

	updated, err := challenges.AddProgress(ctx, global.ID, 250)
	require.NoError(t, err)
	assert.Equal(t, 250, updated.CurrentAmount)
	updated, err = challenges.AddProgress(ctx, global.ID, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1250, updated.CurrentAmount)

	_, err = challenges.AddProgress(ctx, uuid.New(), 1)
	assert.ErrorIs(t, err, repository.ErrChallengeNotFound)
}

func testDroughtRegions(t *testing.T, b Backend) {
	ctx := context.Background()
	regions := b.Repos.NewDroughtRegionRepository()

	active := &entity.DroughtRegion{
		Name:             "Rajasthan",
		Country:          "India",
		Latitude:         27.02,
		Longitude:        74.22,
		WaterStressLevel: entity.WaterStressExtremelyHigh,
		Population:       68_000_000,
		IsActive:         true,
	}
	inactive := &entity.DroughtRegion{
		Name:             "Cape Town",
		Country:          "South Africa",
		Latitude:         -33.92,
		Longitude:        18.42,
		WaterStressLevel: entity.WaterStressHigh,
	}
	require.NoError(t, regions.Create(ctx, active))
	require.NoError(t, regions.Create(ctx, inactive))

	list, err := regions.FindAllActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, active.ID, list[0].ID)
	assert.Equal(t, entity.WaterStressExtremelyHigh, list[0].WaterStressLevel)

	n, err := regions.CountActive(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	metrics := entity.ImpactMetrics{BottlesSaved: 1000, CO2Reduced: 500, FamiliesHelped: 12, CommunityEngagement: 80}
	updated, err := regions.UpdateMetrics(ctx, active.ID, metrics)
	require.NoError(t, err)
	assert.Equal(t, metrics, updated.ImpactMetrics)

	_, err = regions.UpdateMetrics(ctx, uuid.New(), metrics)
	assert.ErrorIs(t, err, repository.ErrDroughtRegionNotFound)
}

func testTransactions(t *testing.T, b Backend) {
	ctx := context.Background()
	errBoom := errors.New("boom")

	var kept uuid.UUID
	err := b.TxManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		u := newUser("kept", "kept@example.com", "UAE", 0)
		if err := repos.NewUserRepository().Create(ctx, u); err != nil {
			return err
		}
		kept = u.ID
		_, err := repos.NewLeaderboardRepository().Increment(ctx, u.ID, entity.LeaderboardDelta{FamilyName: "kept", Points: 10})

		return err
	})
	require.NoError(t, err)

	err = b.TxManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		u := newUser("dropped", "dropped@example.com", "UAE", 0)
		if err := repos.NewUserRepository().Create(ctx, u); err != nil {
			return err
		}
		if _, err := repos.NewUserRepository().AddPoints(ctx, kept, 99); err != nil {
			return err
		}

		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	users := b.Repos.NewUserRepository()
	n, err := users.Count(ctx, "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	u, err := users.FindByID(ctx, kept)
	require.NoError(t, err)
	assert.Zero(t, u.HeroPoints)

	entries, err := b.Repos.NewLeaderboardRepository().List(ctx, 10, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 10, entries[0].Points)
}
