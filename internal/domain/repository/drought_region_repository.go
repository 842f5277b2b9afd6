package repository

import (
	"context"

	"deliwer/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDroughtRegionNotFound is returned when a drought region is not found.
var ErrDroughtRegionNotFound = errors.New("drought region not found")

// DroughtRegionRepository defines drought region persistence.
type DroughtRegionRepository interface {
	Create(ctx context.Context, region *entity.DroughtRegion) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.DroughtRegion, error)

	// FindAllActive returns active regions oldest first.
	FindAllActive(ctx context.Context) ([]*entity.DroughtRegion, error)

	UpdateMetrics(ctx context.Context, id uuid.UUID, metrics entity.ImpactMetrics) (*entity.DroughtRegion, error)

	CountActive(ctx context.Context) (int64, error)
}
