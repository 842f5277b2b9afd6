package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	deliverycontext "deliwer/internal/delivery/context"
	"deliwer/internal/domain/entity"
	domainerrors "deliwer/internal/domain/errors"
	"deliwer/internal/domain/repository"
	"deliwer/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type droughtRegionService struct {
	regionRepo repository.DroughtRegionRepository
	logger     *slog.Logger
}

// DroughtRegionServiceParams holds dependencies for DroughtRegionService, injected by Fx.
type DroughtRegionServiceParams struct {
	fx.In

	DroughtRegionRepo repository.DroughtRegionRepository
	Logger            *slog.Logger
}

// NewDroughtRegionService creates a new drought region service
func NewDroughtRegionService(params DroughtRegionServiceParams) usecase.DroughtRegionUsecase {
	return &droughtRegionService{
		regionRepo: params.DroughtRegionRepo,
		logger:     params.Logger,
	}
}

// CreateRegion stores a new active region
func (srv *droughtRegionService) CreateRegion(ctx context.Context, region *entity.DroughtRegion) (*entity.DroughtRegion, error) {
	region.Name = strings.TrimSpace(region.Name)
	region.Country = strings.TrimSpace(region.Country)
	if region.WaterStressLevel == "" {
		region.WaterStressLevel = entity.WaterStressHigh
	}
	if !validCoordinate(region.Latitude, region.Longitude) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude or longitude out of range")
	}
	region.IsActive = true

	if err := srv.regionRepo.Create(ctx, region); err != nil {
		return nil, errors.Wrap(err, "failed to create drought region")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Drought region created",
		slog.String("region_id", region.ID.String()),
		slog.String("name", region.Name),
	)

	return region, nil
}

// UpdateImpactMetrics overwrites the region's campaign impact
func (srv *droughtRegionService) UpdateImpactMetrics(ctx context.Context, regionID uuid.UUID, metrics entity.ImpactMetrics) (*entity.DroughtRegion, error) {
	if metrics.BottlesSaved < 0 || metrics.CO2Reduced < 0 || metrics.FamiliesHelped < 0 || metrics.CommunityEngagement < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("impact metrics must not be negative")
	}

	region, err := srv.regionRepo.UpdateMetrics(ctx, regionID, metrics)
	if errors.Is(err, repository.ErrDroughtRegionNotFound) {
		return nil, errors.Wrap(domainerrors.ErrDroughtRegionNotFound, "failed to update impact metrics")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update impact metrics")
	}

	return region, nil
}

// ListRegions returns active regions, nearest first when origin is given
func (srv *droughtRegionService) ListRegions(ctx context.Context, origin *usecase.GeoPoint) ([]*entity.DroughtRegionWithDistance, error) {
	if origin != nil && !validCoordinate(origin.Latitude, origin.Longitude) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude or longitude out of range")
	}

	regions, err := srv.regionRepo.FindAllActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list drought regions")
	}

	result := make([]*entity.DroughtRegionWithDistance, 0, len(regions))
	for _, region := range regions {
		item := &entity.DroughtRegionWithDistance{DroughtRegion: region}
		if origin != nil {
			km := distanceKm(*origin, region.Latitude, region.Longitude)
			item.DistanceKm = &km
		}
		result = append(result, item)
	}

	if origin != nil {
		sort.SliceStable(result, func(i, j int) bool {
			return *result[i].DistanceKm < *result[j].DistanceKm
		})
	}

	return result, nil
}

// distanceKm is the geodesic distance in kilometres. orb points are lon/lat.
func distanceKm(origin usecase.GeoPoint, lat, lng float64) float64 {
	meters := geo.Distance(
		orb.Point{origin.Longitude, origin.Latitude},
		orb.Point{lng, lat},
	)

	return meters / 1000
}

func validCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
