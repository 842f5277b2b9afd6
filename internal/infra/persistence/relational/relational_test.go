package relational

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"deliwer/internal/domain/entity"
	domainerrors "deliwer/internal/domain/errors"
	"deliwer/internal/infra/persistence/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	require.NoError(t, Migrate(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestConformance(t *testing.T) {
	repotest.Run(t, func(t *testing.T) repotest.Backend {
		db := openTestDB(t)

		return repotest.Backend{
			Repos:     NewRepositoryFactory(db),
			TxManager: NewTransactionManager(db),
		}
	})
}

func TestChallengeCreate_SecondActiveInRegionConflicts(t *testing.T) {
	ctx := context.Background()
	repo := NewChallengeRepository(openTestDB(t))

	first := &entity.CommunityChallenge{Title: "one", TargetAmount: 10, Region: "Dubai", IsActive: true, Rewards: entity.ChallengeRewards{Badges: []string{}}}
	require.NoError(t, repo.Create(ctx, first))

	second := &entity.CommunityChallenge{Title: "two", TargetAmount: 10, Region: "Dubai", IsActive: true, Rewards: entity.ChallengeRewards{Badges: []string{}}}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)

	inactive := &entity.CommunityChallenge{Title: "old", TargetAmount: 10, Region: "Dubai", Rewards: entity.ChallengeRewards{Badges: []string{}}}
	assert.NoError(t, repo.Create(ctx, inactive))
}

func TestTranslateWriteError(t *testing.T) {
	dup := domainerrors.ErrConflict

	assert.Equal(t, dup, translateWriteError(gorm.ErrDuplicatedKey, dup, "x"))
	assert.Equal(t, dup, translateWriteError(fmt.Errorf("UNIQUE constraint failed: users.email"), dup, "x"))
	assert.ErrorIs(t, translateWriteError(fmt.Errorf("NOT NULL constraint failed: users.email"), dup, "x"), domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, translateWriteError(fmt.Errorf("disk I/O error"), dup, "create user"), &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Equal(t, "create user", appErr.Details())
}
