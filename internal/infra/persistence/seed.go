package persistence

import (
	"context"
	"log/slog"
	"time"

	"deliwer/internal/domain/constants"
	"deliwer/internal/domain/entity"
	"deliwer/internal/domain/repository"
)

type seedFamily struct {
	username string
	email    string
	country  string
	city     string
	family   string
	points   int
	level    int
	refs     int
	bottles  int
	co2      int
	streak   int
}

var demoFamilies = []seedFamily{
	{"almaktoum", "almaktoum@demo.deliwer.com", "UAE", "Dubai", "Al-Maktoum Family", 47200, 5, 12, 15000, 7500, 45},
	{"singh", "singh@demo.deliwer.com", "UAE", "Dubai", "Singh Family", 43800, 4, 9, 12000, 6000, 38},
	{"johnson", "johnson@demo.deliwer.com", "UAE", "Abu Dhabi", "Johnson Family", 41200, 3, 7, 10000, 5000, 31},
}

var demoRegions = []entity.DroughtRegion{
	{Name: "Rajasthan", Country: "India", Region: "South Asia", Latitude: 27.0238, Longitude: 74.2179, WaterStressLevel: entity.WaterStressExtremelyHigh, Population: 68_548_437, LocalPartners: 4, AquacafeUnits: 120},
	{Name: "Cape Town", Country: "South Africa", Region: "Africa", Latitude: -33.9249, Longitude: 18.4241, WaterStressLevel: entity.WaterStressHigh, Population: 4_618_000, LocalPartners: 2, AquacafeUnits: 45},
	{Name: "Balochistan", Country: "Pakistan", Region: "South Asia", Latitude: 28.4907, Longitude: 65.0958, WaterStressLevel: entity.WaterStressExtremelyHigh, Population: 12_344_408, LocalPartners: 1, AquacafeUnits: 30},
}

// SeedDemoData loads the launch families, the Ramadan challenge and a few
// drought regions into an empty store. A store that already has users is
// left alone.
func SeedDemoData(ctx context.Context, txManager repository.TransactionManager, logger *slog.Logger) error {
	seeded := false
	err := txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		users := repos.NewUserRepository()
		n, err := users.Count(ctx, "")
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		leaderboard := repos.NewLeaderboardRepository()
		for _, f := range demoFamilies {
			u := &entity.User{
				Username:     f.username,
				Email:        f.email,
				Country:      f.country,
				City:         f.city,
				HeroLevel:    f.level,
				HeroPoints:   f.points,
				HeroType:     "Water Guardian",
				Achievements: []string{},
				ClimateContribution: entity.ClimateContribution{
					CarbonSaved:      f.co2,
					PlasticPrevented: f.bottles,
					LunchCredits:     f.bottles / constants.BottlesPerLunchCredit,
					Streak:           f.streak,
				},
			}
			if err := users.Create(ctx, u); err != nil {
				return err
			}

			if _, err := leaderboard.Upsert(ctx, u.ID, entity.LeaderboardPatch{
				FamilyName:       &f.family,
				Points:           &f.points,
				Level:            &f.level,
				Referrals:        &f.refs,
				BottlesPrevented: &f.bottles,
				CO2Saved:         &f.co2,
			}); err != nil {
				return err
			}
		}

		challenge := &entity.CommunityChallenge{
			Title:         "1 MILLION BOTTLES PREVENTED BY RAMADAN",
			Description:   "Dubai families unite to keep one million plastic bottles out of landfill.",
			TargetAmount:  constants.DefaultChallengeTarget,
			CurrentAmount: 800_000,
			EndDate:       time.Now().UTC().Add(23 * 24 * time.Hour),
			Rewards: entity.ChallengeRewards{
				Points: 5000,
				Badges: []string{"Ramadan Water Hero"},
			},
			IsActive: true,
		}
		if err := repos.NewChallengeRepository().Create(ctx, challenge); err != nil {
			return err
		}

		regions := repos.NewDroughtRegionRepository()
		for _, r := range demoRegions {
			region := r
			region.IsActive = true
			if err := regions.Create(ctx, &region); err != nil {
				return err
			}
		}

		seeded = true

		return nil
	})
	if err != nil {
		return err
	}

	if seeded {
		logger.Info("Seeded demo data",
			slog.Int("families", len(demoFamilies)),
			slog.Int("droughtRegions", len(demoRegions)),
		)
	}

	return nil
}
