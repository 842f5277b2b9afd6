package memory

import (
	"context"

	"deliwer/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

// NewTransactionManager runs units of work against a private copy of the
// tables and publishes the copy only when the unit succeeds. Transactions
// hold the write lock for their whole duration.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (m *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	tx := &Store{t: m.store.t.clone()}
	if err := fn(&repositoryFactory{store: tx}); err != nil {
		return err
	}

	m.store.t = tx.t

	return nil
}

type repositoryFactory struct {
	store *Store
}

// NewRepositoryFactory returns repositories bound to store.
func NewRepositoryFactory(store *Store) repository.RepositoryFactory {
	return &repositoryFactory{store: store}
}

func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.store)
}

func (f *repositoryFactory) NewTradeInRepository() repository.TradeInRepository {
	return NewTradeInRepository(f.store)
}

func (f *repositoryFactory) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(f.store)
}

func (f *repositoryFactory) NewAffiliateRepository() repository.AffiliateRepository {
	return NewAffiliateRepository(f.store)
}

func (f *repositoryFactory) NewLeaderboardRepository() repository.LeaderboardRepository {
	return NewLeaderboardRepository(f.store)
}

func (f *repositoryFactory) NewChallengeRepository() repository.ChallengeRepository {
	return NewChallengeRepository(f.store)
}

func (f *repositoryFactory) NewDroughtRegionRepository() repository.DroughtRegionRepository {
	return NewDroughtRegionRepository(f.store)
}
