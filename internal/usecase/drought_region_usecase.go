package usecase

import (
	"context"

	"deliwer/internal/domain/entity"

	"github.com/google/uuid"
)

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// DroughtRegionUsecase defines the interface for drought region reference data
type DroughtRegionUsecase interface {
	CreateRegion(ctx context.Context, region *entity.DroughtRegion) (*entity.DroughtRegion, error)

	UpdateImpactMetrics(ctx context.Context, regionID uuid.UUID, metrics entity.ImpactMetrics) (*entity.DroughtRegion, error)

	// ListRegions returns active regions. With an origin they are ordered by
	// distance from it, nearest first.
	ListRegions(ctx context.Context, origin *GeoPoint) ([]*entity.DroughtRegionWithDistance, error)
}
