package memory

import (
	"context"

	"deliwer/internal/domain/entity"
	"deliwer/internal/domain/repository"

	"github.com/google/uuid"
)

type droughtRegionRepository struct {
	store *Store
}

// NewDroughtRegionRepository creates a drought region repository over store.
func NewDroughtRegionRepository(store *Store) repository.DroughtRegionRepository {
	return &droughtRegionRepository{store: store}
}

func (r *droughtRegionRepository) Create(_ context.Context, region *entity.DroughtRegion) error {
	return r.store.write(func(t *tables) error {
		ensureID(&region.ID)
		if region.CreatedAt.IsZero() {
			region.CreatedAt = now()
		}
		t.droughtRegions[region.ID] = row[*entity.DroughtRegion]{seq: t.nextSeq(), value: copyPtr(region)}

		return nil
	})
}

func (r *droughtRegionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.DroughtRegion, error) {
	var found *entity.DroughtRegion
	err := r.store.read(func(t *tables) error {
		d, ok := t.droughtRegions[id]
		if !ok {
			return repository.ErrDroughtRegionNotFound
		}
		found = copyPtr(d.value)

		return nil
	})

	return found, err
}

func (r *droughtRegionRepository) FindAllActive(_ context.Context) ([]*entity.DroughtRegion, error) {
	var regions []*entity.DroughtRegion
	err := r.store.read(func(t *tables) error {
		regions = make([]*entity.DroughtRegion, 0, len(t.droughtRegions))
		for _, d := range t.droughtRegions.sorted() {
			if d.value.IsActive {
				regions = append(regions, copyPtr(d.value))
			}
		}

		return nil
	})

	return regions, err
}

func (r *droughtRegionRepository) UpdateMetrics(_ context.Context, id uuid.UUID, metrics entity.ImpactMetrics) (*entity.DroughtRegion, error) {
	var updated *entity.DroughtRegion
	err := r.store.write(func(t *tables) error {
		d, ok := t.droughtRegions[id]
		if !ok {
			return repository.ErrDroughtRegionNotFound
		}
		d.value.ImpactMetrics = metrics
		updated = copyPtr(d.value)

		return nil
	})

	return updated, err
}

func (r *droughtRegionRepository) CountActive(_ context.Context) (int64, error) {
	var n int64
	err := r.store.read(func(t *tables) error {
		for _, d := range t.droughtRegions {
			if d.value.IsActive {
				n++
			}
		}

		return nil
	})

	return n, err
}
