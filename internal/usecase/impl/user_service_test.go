package impl

import (
	"context"
	"testing"

	domainerrors "deliwer/internal/domain/errors"
	"deliwer/internal/domain/service"
	"deliwer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUserService(store *testStore) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		TxManager: store.txManager,
		UserRepo:  store.repos.NewUserRepository(),
		Metrics:   service.NoopMetrics{},
		Logger:    newDiscardLogger(),
	})
}

func TestUserService_Register(t *testing.T) {
	svc := createTestUserService(newTestStore())
	ctx := context.Background()

	user, err := svc.Register(ctx, &usecase.RegisterUserInput{
		Username: " aisha ",
		Email:    "Aisha@Example.COM",
		Country:  "UAE",
		City:     "Dubai",
		HeroType: "Water Guardian",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "aisha", user.Username)
	assert.Equal(t, "aisha@example.com", user.Email)
	assert.Equal(t, 1, user.HeroLevel)
	assert.Zero(t, user.HeroPoints)
	assert.Empty(t, user.Achievements)

	found, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, found.Username)
	assert.Equal(t, user.Country, found.Country)
	assert.Equal(t, user.HeroType, found.HeroType)
}

func TestUserService_Register_Duplicate(t *testing.T) {
	svc := createTestUserService(newTestStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, &usecase.RegisterUserInput{Username: "aisha", Email: "aisha@example.com"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &usecase.RegisterUserInput{Username: "other", Email: "AISHA@example.com"})
	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	_, err = svc.Register(ctx, &usecase.RegisterUserInput{Username: "aisha", Email: "new@example.com"})
	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc := createTestUserService(newTestStore())

	_, err := svc.GetUser(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_SetPointsAndLevel(t *testing.T) {
	store := newTestStore()
	svc := createTestUserService(store)
	ctx := context.Background()
	user := store.createUser(t, "hero", "UAE")

	updated, err := svc.SetPoints(ctx, user.ID, 1200)
	require.NoError(t, err)
	assert.Equal(t, 1200, updated.HeroPoints)

	updated, err = svc.SetLevel(ctx, user.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.HeroLevel)
	assert.Equal(t, 1200, updated.HeroPoints)

	_, err = svc.SetPoints(ctx, user.ID, -1)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.SetLevel(ctx, user.ID, 0)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.SetLevel(ctx, uuid.New(), 2)
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_AddAchievement(t *testing.T) {
	store := newTestStore()
	svc := createTestUserService(store)
	ctx := context.Background()
	user := store.createUser(t, "hero", "UAE")

	for _, a := range []string{"Water Warrior", "Plastic Free Week", "Water Warrior"} {
		_, err := svc.AddAchievement(ctx, user.ID, a)
		require.NoError(t, err)
	}

	found, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Water Warrior", "Plastic Free Week"}, found.Achievements)

	_, err = svc.AddAchievement(ctx, user.ID, "  ")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.AddAchievement(ctx, uuid.New(), "Badge")
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
