package relational

import (
	"context"

	"deliwer/internal/domain/entity"
	domainerrors "deliwer/internal/domain/errors"
	"deliwer/internal/domain/repository"
	"deliwer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type droughtRegionRepository struct {
	db *gorm.DB
}

// NewDroughtRegionRepository is the constructor for droughtRegionRepository.
func NewDroughtRegionRepository(db *gorm.DB) repository.DroughtRegionRepository {
	return &droughtRegionRepository{db: db}
}

func (repo *droughtRegionRepository) Create(ctx context.Context, region *entity.DroughtRegion) error {
	if region.ID == uuid.Nil {
		region.ID = newID()
	}
	regionM := fromDroughtRegionDomain(region)

	if err := repo.db.WithContext(ctx).Create(regionM).Error; err != nil {
		return translateWriteError(err, domainerrors.ErrConflict, "failed to create drought region")
	}

	region.CreatedAt = regionM.CreatedAt

	return nil
}

func (repo *droughtRegionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DroughtRegion, error) {
	var regionM model.DroughtRegionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&regionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDroughtRegionNotFound
		}

		return nil, errors.Wrap(err, "failed to find drought region by ID")
	}

	return toDroughtRegionDomain(&regionM), nil
}

func (repo *droughtRegionRepository) FindAllActive(ctx context.Context) ([]*entity.DroughtRegion, error) {
	var regionModels []*model.DroughtRegionModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Order("id ASC").
		Find(&regionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list drought regions")
	}

	regions := make([]*entity.DroughtRegion, 0, len(regionModels))
	for _, regionM := range regionModels {
		regions = append(regions, toDroughtRegionDomain(regionM))
	}

	return regions, nil
}

func (repo *droughtRegionRepository) UpdateMetrics(ctx context.Context, id uuid.UUID, metrics entity.ImpactMetrics) (*entity.DroughtRegion, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DroughtRegionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"impact_bottles_saved":        metrics.BottlesSaved,
			"impact_co2_reduced":          metrics.CO2Reduced,
			"impact_families_helped":      metrics.FamiliesHelped,
			"impact_community_engagement": metrics.CommunityEngagement,
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update drought region metrics")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrDroughtRegionNotFound
	}

	return repo.FindByID(ctx, id)
}

func (repo *droughtRegionRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DroughtRegionModel{}).
		Where("is_active = ?", true).
		Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count drought regions")
	}

	return n, nil
}

func toDroughtRegionDomain(data *model.DroughtRegionModel) *entity.DroughtRegion {
	return &entity.DroughtRegion{
		ID:               data.ID,
		Name:             data.Name,
		Country:          data.Country,
		Region:           data.Region,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		WaterStressLevel: entity.WaterStressLevel(data.WaterStressLevel),
		Population:       data.Population,
		LocalPartners:    data.LocalPartners,
		AquacafeUnits:    data.AquacafeUnits,
		ImpactMetrics: entity.ImpactMetrics{
			BottlesSaved:        data.ImpactMetrics.BottlesSaved,
			CO2Reduced:          data.ImpactMetrics.CO2Reduced,
			FamiliesHelped:      data.ImpactMetrics.FamiliesHelped,
			CommunityEngagement: data.ImpactMetrics.CommunityEngagement,
		},
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
	}
}

func fromDroughtRegionDomain(data *entity.DroughtRegion) *model.DroughtRegionModel {
	return &model.DroughtRegionModel{
		ID:               data.ID,
		Name:             data.Name,
		Country:          data.Country,
		Region:           data.Region,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		WaterStressLevel: string(data.WaterStressLevel),
		Population:       data.Population,
		LocalPartners:    data.LocalPartners,
		AquacafeUnits:    data.AquacafeUnits,
		ImpactMetrics: model.ImpactMetricColumns{
			BottlesSaved:        data.ImpactMetrics.BottlesSaved,
			CO2Reduced:          data.ImpactMetrics.CO2Reduced,
			FamiliesHelped:      data.ImpactMetrics.FamiliesHelped,
			CommunityEngagement: data.ImpactMetrics.CommunityEngagement,
		},
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
	}
}
