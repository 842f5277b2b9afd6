package usecase

import (
	"context"

	"deliwer/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterAffiliateInput carries a partnership signup.
type RegisterAffiliateInput struct {
	Name          string
	Email         string
	Phone         string
	Country       string
	City          string
	Type          entity.AffiliateType
	CommunitySize int
}

// AffiliateUsecase defines the interface for partner management
type AffiliateUsecase interface {
	// RegisterAffiliate creates an active partner at the default commission
	RegisterAffiliate(ctx context.Context, input *RegisterAffiliateInput) (*entity.Affiliate, error)

	// ListAffiliates returns partners oldest first, optionally for one country
	ListAffiliates(ctx context.Context, country string) ([]*entity.Affiliate, error)

	// GetReferralQR returns the partner's referral QR code as PNG
	GetReferralQR(ctx context.Context, affiliateID uuid.UUID) ([]byte, error)

	// UpdateNFTRewards overwrites the partner's NFT counters
	UpdateNFTRewards(ctx context.Context, affiliateID uuid.UUID, rewards entity.NFTRewards) (*entity.Affiliate, error)
}
