package relational

import (
	"context"
	"strings"

	"deliwer/internal/domain/entity"
	"deliwer/internal/domain/repository"
	"deliwer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type affiliateRepository struct {
	db *gorm.DB
}

// NewAffiliateRepository is the constructor for affiliateRepository.
func NewAffiliateRepository(db *gorm.DB) repository.AffiliateRepository {
	return &affiliateRepository{db: db}
}

// Create relies on the unique email index, so concurrent duplicates fail
// with ErrDuplicateAffiliate instead of racing a separate lookup.
func (repo *affiliateRepository) Create(ctx context.Context, affiliate *entity.Affiliate) error {
	if affiliate.ID == uuid.Nil {
		affiliate.ID = newID()
	}
	affiliateM := fromAffiliateDomain(affiliate)

	if err := repo.db.WithContext(ctx).Create(affiliateM).Error; err != nil {
		return translateWriteError(err, repository.ErrDuplicateAffiliate, "failed to create affiliate")
	}

	affiliate.CreatedAt = affiliateM.CreatedAt

	return nil
}

func (repo *affiliateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Affiliate, error) {
	var affiliateM model.AffiliateModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&affiliateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAffiliateNotFound
		}

		return nil, errors.Wrap(err, "failed to find affiliate by ID")
	}

	return toAffiliateDomain(&affiliateM), nil
}

func (repo *affiliateRepository) FindByEmail(ctx context.Context, email string) (*entity.Affiliate, error) {
	var affiliateM model.AffiliateModel
	if err := repo.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&affiliateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAffiliateNotFound
		}

		return nil, errors.Wrap(err, "failed to find affiliate by email")
	}

	return toAffiliateDomain(&affiliateM), nil
}

func (repo *affiliateRepository) FindAll(ctx context.Context, country string) ([]*entity.Affiliate, error) {
	var affiliateModels []*model.AffiliateModel
	query := repo.db.WithContext(ctx).Order("created_at ASC").Order("id ASC")
	if country != "" {
		query = query.Where("LOWER(country) = LOWER(?)", country)
	}
	if err := query.Find(&affiliateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list affiliates")
	}

	affiliates := make([]*entity.Affiliate, 0, len(affiliateModels))
	for _, affiliateM := range affiliateModels {
		affiliates = append(affiliates, toAffiliateDomain(affiliateM))
	}

	return affiliates, nil
}

func (repo *affiliateRepository) UpdateNFTRewards(ctx context.Context, id uuid.UUID, rewards entity.NFTRewards) (*entity.Affiliate, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AffiliateModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"nft_earned":           rewards.Earned,
			"nft_distributed":      rewards.Distributed,
			"nft_community_impact": rewards.CommunityImpact,
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update NFT rewards")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrAffiliateNotFound
	}

	return repo.FindByID(ctx, id)
}

func toAffiliateDomain(data *model.AffiliateModel) *entity.Affiliate {
	return &entity.Affiliate{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		Country:        data.Country,
		City:           data.City,
		Type:           entity.AffiliateType(data.Type),
		CommissionRate: data.CommissionRate,
		TotalEarnings:  data.TotalEarnings,
		TotalSales:     data.TotalSales,
		NFTRewards: entity.NFTRewards{
			Earned:          data.NFTRewards.Earned,
			Distributed:     data.NFTRewards.Distributed,
			CommunityImpact: data.NFTRewards.CommunityImpact,
		},
		CommunitySize: data.CommunitySize,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
	}
}

func fromAffiliateDomain(data *entity.Affiliate) *model.AffiliateModel {
	return &model.AffiliateModel{
		ID:             data.ID,
		Name:           data.Name,
		Email:          strings.ToLower(data.Email),
		Phone:          data.Phone,
		Country:        data.Country,
		City:           data.City,
		Type:           string(data.Type),
		CommissionRate: data.CommissionRate,
		TotalEarnings:  data.TotalEarnings,
		TotalSales:     data.TotalSales,
		NFTRewards: model.NFTRewardColumns{
			Earned:          data.NFTRewards.Earned,
			Distributed:     data.NFTRewards.Distributed,
			CommunityImpact: data.NFTRewards.CommunityImpact,
		},
		CommunitySize: data.CommunitySize,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
	}
}
