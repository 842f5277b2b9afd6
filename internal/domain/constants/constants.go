// Package constants holds values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Campaign defaults. Config may override the reward values.
const (
	OrderTotalAED              = 99.0
	OrderRewardPoints          = 2400
	OrderBottlesPrevented      = 2400
	FirstHundredCap            = 100
	DefaultChallengeTarget     = 1_000_000
	AffiliateCommissionPercent = 30.0

	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
	DefaultHeroLevel        = 1

	// Every bottle block of this size earns one lunch credit.
	BottlesPerLunchCredit = 50

	// Challenge milestones are published at each step of this size (percent).
	ChallengeMilestoneStep = 10
)

// Order rewards
var (
	OrderBadges  = []string{"Water Warrior"}
	OrderBonuses = []string{"Premium Filter FREE", "30-Day Challenge Active"}
)

// SocialHashtags are attached to every share response.
var SocialHashtags = []string{"#SaveThePlanet", "#DeliWerDubai", "#ClimateChampion", "#SayNoToPlastic"}
