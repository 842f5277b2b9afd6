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

func createTestDroughtRegionService(store *testStore) usecase.DroughtRegionUsecase {
	return NewDroughtRegionService(DroughtRegionServiceParams{
		DroughtRegionRepo: store.repos.NewDroughtRegionRepository(),
		Logger:            newDiscardLogger(),
	})
}

func seedRegions(t *testing.T, svc usecase.DroughtRegionUsecase) {
	t.Helper()

	for _, r := range []*entity.DroughtRegion{
		{Name: "Cape Town", Country: "South Africa", Latitude: -33.9249, Longitude: 18.4241},
		{Name: "Rajasthan", Country: "India", Latitude: 27.0238, Longitude: 74.2179, WaterStressLevel: entity.WaterStressExtremelyHigh},
		{Name: "Balochistan", Country: "Pakistan", Latitude: 28.4907, Longitude: 65.0958},
	} {
		_, err := svc.CreateRegion(context.Background(), r)
		require.NoError(t, err)
	}
}

func TestDroughtRegionService_ListRegions_InsertionOrder(t *testing.T) {
	svc := createTestDroughtRegionService(newTestStore())
	seedRegions(t, svc)

	regions, err := svc.ListRegions(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, regions, 3)

	assert.Equal(t, "Cape Town", regions[0].Name)
	assert.Equal(t, entity.WaterStressHigh, regions[0].WaterStressLevel)
	assert.True(t, regions[0].IsActive)
	assert.Nil(t, regions[0].DistanceKm)
}

func TestDroughtRegionService_ListRegions_NearestFirst(t *testing.T) {
	svc := createTestDroughtRegionService(newTestStore())
	seedRegions(t, svc)

	dubai := &usecase.GeoPoint{Latitude: 25.2048, Longitude: 55.2708}
	regions, err := svc.ListRegions(context.Background(), dubai)
	require.NoError(t, err)
	require.Len(t, regions, 3)

	names := []string{regions[0].Name, regions[1].Name, regions[2].Name}
	assert.Equal(t, []string{"Balochistan", "Rajasthan", "Cape Town"}, names)

	require.NotNil(t, regions[0].DistanceKm)
	assert.InDelta(t, 1050, *regions[0].DistanceKm, 150)
	assert.Greater(t, *regions[2].DistanceKm, 6000.0)
}

func TestDroughtRegionService_InvalidCoordinates(t *testing.T) {
	svc := createTestDroughtRegionService(newTestStore())

	_, err := svc.ListRegions(context.Background(), &usecase.GeoPoint{Latitude: 95, Longitude: 0})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.CreateRegion(context.Background(), &entity.DroughtRegion{Name: "Nowhere", Longitude: 200})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDroughtRegionService_UpdateImpactMetrics(t *testing.T) {
	svc := createTestDroughtRegionService(newTestStore())
	ctx := context.Background()

	region, err := svc.CreateRegion(ctx, &entity.DroughtRegion{Name: "Rajasthan", Country: "India"})
	require.NoError(t, err)

	metrics := entity.ImpactMetrics{BottlesSaved: 24000, CO2Reduced: 1200, FamiliesHelped: 40, CommunityEngagement: 300}
	updated, err := svc.UpdateImpactMetrics(ctx, region.ID, metrics)
	require.NoError(t, err)
	assert.Equal(t, metrics, updated.ImpactMetrics)

	_, err = svc.UpdateImpactMetrics(ctx, region.ID, entity.ImpactMetrics{BottlesSaved: -1})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.UpdateImpactMetrics(ctx, uuid.New(), metrics)
	require.ErrorIs(t, err, domainerrors.ErrDroughtRegionNotFound)
}
