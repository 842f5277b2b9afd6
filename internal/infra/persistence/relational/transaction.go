package relational

import (
	"context"
	"fmt"

	"deliwer/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// NewRepositoryFactory returns repositories bound to db, which may itself be a transaction.
func NewRepositoryFactory(db *gorm.DB) repository.RepositoryFactory {
	return &gormRepositoryFactory{tx: db}
}

func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) NewTradeInRepository() repository.TradeInRepository {
	return NewTradeInRepository(f.tx)
}

func (f *gormRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f *gormRepositoryFactory) NewAffiliateRepository() repository.AffiliateRepository {
	return NewAffiliateRepository(f.tx)
}

func (f *gormRepositoryFactory) NewLeaderboardRepository() repository.LeaderboardRepository {
	return NewLeaderboardRepository(f.tx)
}

func (f *gormRepositoryFactory) NewChallengeRepository() repository.ChallengeRepository {
	return NewChallengeRepository(f.tx)
}

func (f *gormRepositoryFactory) NewDroughtRegionRepository() repository.DroughtRegionRepository {
	return NewDroughtRegionRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Roll back on panic, then let the recover middleware handle it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
