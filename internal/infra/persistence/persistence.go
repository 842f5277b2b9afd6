// Package persistence picks the repository backend named in the storage
// config and exposes its repositories to the fx graph.
package persistence

import (
	"context"
	"log/slog"

	"deliwer/config"
	"deliwer/internal/domain/lifecycle"
	"deliwer/internal/domain/repository"
	"deliwer/internal/infra/persistence/memory"
	"deliwer/internal/infra/persistence/relational"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result provides every repository plus the transaction manager.
type Result struct {
	fx.Out

	TxManager      repository.TransactionManager
	Users          repository.UserRepository
	TradeIns       repository.TradeInRepository
	Orders         repository.OrderRepository
	Affiliates     repository.AffiliateRepository
	Leaderboard    repository.LeaderboardRepository
	Challenges     repository.ChallengeRepository
	DroughtRegions repository.DroughtRegionRepository
}

// New builds the configured backend. Demo data, when enabled, is seeded on
// start after any migration hook has run.
func New(params Params) (Result, error) {
	var (
		repos     repository.RepositoryFactory
		txManager repository.TransactionManager
	)

	switch params.Config.Storage.Backend {
	case config.BackendPostgres, config.BackendSQLite:
		db, err := relational.New(relational.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}
		repos = relational.NewRepositoryFactory(db)
		txManager = relational.NewTransactionManager(db)
	default:
		store := memory.NewStore()
		repos = memory.NewRepositoryFactory(store)
		txManager = memory.NewTransactionManager(store)
	}

	params.Logger.Info("Storage backend ready", slog.String("backend", params.Config.Storage.Backend))

	if params.Config.Storage.SeedDemoData {
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return SeedDemoData(ctx, txManager, params.Logger)
			},
		})
	}

	return Result{
		TxManager:      txManager,
		Users:          repos.NewUserRepository(),
		TradeIns:       repos.NewTradeInRepository(),
		Orders:         repos.NewOrderRepository(),
		Affiliates:     repos.NewAffiliateRepository(),
		Leaderboard:    repos.NewLeaderboardRepository(),
		Challenges:     repos.NewChallengeRepository(),
		DroughtRegions: repos.NewDroughtRegionRepository(),
	}, nil
}
