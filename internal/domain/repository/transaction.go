package repository

import "context"

// TransactionManager lets the use case layer group writes without depending
// on a specific storage driver.
type TransactionManager interface {
	// Execute runs fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Repositories
	// obtained from the factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repositories bound to a specific transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewTradeInRepository() TradeInRepository
	NewOrderRepository() OrderRepository
	NewAffiliateRepository() AffiliateRepository
	NewLeaderboardRepository() LeaderboardRepository
	NewChallengeRepository() ChallengeRepository
	NewDroughtRegionRepository() DroughtRegionRepository
}
