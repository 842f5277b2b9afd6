package impl

import (
	"context"
	"testing"

	"deliwer/internal/domain/entity"
	domainerrors "deliwer/internal/domain/errors"
	"deliwer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestLeaderboardService(store *testStore) usecase.LeaderboardUsecase {
	return NewLeaderboardService(LeaderboardServiceParams{
		TxManager:       store.txManager,
		LeaderboardRepo: store.repos.NewLeaderboardRepository(),
		Logger:          newDiscardLogger(),
	})
}

func intPtr(v int) *int {
	return &v
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{limit: 0, want: 10},
		{limit: -3, want: 10},
		{limit: 1, want: 1},
		{limit: 100, want: 100},
		{limit: 5000, want: 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, clampLimit(tt.limit), "limit %d", tt.limit)
	}
}

func TestLeaderboardService_UpsertAndRank(t *testing.T) {
	store := newTestStore()
	svc := createTestLeaderboardService(store)
	ctx := context.Background()

	dubai := store.createUser(t, "dubai", "UAE")
	delhi := store.createUser(t, "delhi", "India")
	cairo := store.createUser(t, "cairo", "Egypt")

	created, err := svc.UpsertLeaderboardEntry(ctx, dubai.ID, entity.LeaderboardPatch{Points: intPtr(300)})
	require.NoError(t, err)
	assert.Empty(t, created.FamilyName)
	assert.Equal(t, 1, created.Level)

	name := "Sharma Family"
	_, err = svc.UpsertLeaderboardEntry(ctx, delhi.ID, entity.LeaderboardPatch{FamilyName: &name, Points: intPtr(500)})
	require.NoError(t, err)
	_, err = svc.UpsertLeaderboardEntry(ctx, cairo.ID, entity.LeaderboardPatch{Points: intPtr(300)})
	require.NoError(t, err)

	merged, err := svc.UpsertLeaderboardEntry(ctx, dubai.ID, entity.LeaderboardPatch{Level: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, 300, merged.Points)
	assert.Equal(t, 3, merged.Level)

	entries, err := svc.GetLeaderboard(ctx, 0, "")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, delhi.ID, entries[0].UserID)
	assert.Equal(t, dubai.ID, entries[1].UserID, "ties keep insertion order")
	assert.Equal(t, cairo.ID, entries[2].UserID)

	top, err := svc.GetLeaderboard(ctx, 2, "")
	require.NoError(t, err)
	assert.Len(t, top, 2)

	uae, err := svc.GetLeaderboard(ctx, 10, "uae")
	require.NoError(t, err)
	require.Len(t, uae, 1)
	assert.Equal(t, dubai.ID, uae[0].UserID)
}

func TestLeaderboardService_Upsert_UnknownUser(t *testing.T) {
	svc := createTestLeaderboardService(newTestStore())

	_, err := svc.UpsertLeaderboardEntry(context.Background(), uuid.New(), entity.LeaderboardPatch{Points: intPtr(1)})
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestLeaderboardService_Upsert_Validation(t *testing.T) {
	store := newTestStore()
	svc := createTestLeaderboardService(store)
	user := store.createUser(t, "hero", "UAE")

	patches := []entity.LeaderboardPatch{
		{Points: intPtr(-1)},
		{CO2Saved: intPtr(-10)},
		{Level: intPtr(0)},
	}
	for _, patch := range patches {
		_, err := svc.UpsertLeaderboardEntry(context.Background(), user.ID, patch)
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}
