package entity

import (
	"time"

	"github.com/google/uuid"
)

// AffiliateType classifies a partner.
type AffiliateType string

const (
	AffiliateTypeAgent                AffiliateType = "agent"
	AffiliateTypeRestaurant           AffiliateType = "restaurant"
	AffiliateTypeCommunityLeader      AffiliateType = "community_leader"
	AffiliateTypeDroughtRegionPartner AffiliateType = "drought_region_partner"
)

// IsValid checks if the AffiliateType is a valid value.
func (t AffiliateType) IsValid() bool {
	switch t {
	case AffiliateTypeAgent, AffiliateTypeRestaurant, AffiliateTypeCommunityLeader, AffiliateTypeDroughtRegionPartner:
		return true
	default:
		return false
	}
}

// NFTRewards tracks community NFTs earned through a partner.
type NFTRewards struct {
	Earned          int `json:"earned"`
	Distributed     int `json:"distributed"`
	CommunityImpact int `json:"communityImpact"`
}

// Affiliate is a registered partner. Email is unique.
type Affiliate struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone,omitempty"`
	Country        string        `json:"country,omitempty"`
	City           string        `json:"city,omitempty"`
	Type           AffiliateType `json:"type"`
	CommissionRate float64       `json:"commissionRate"` // percent
	TotalEarnings  float64       `json:"totalEarnings"`
	TotalSales     int           `json:"totalSales"`
	NFTRewards     NFTRewards    `json:"nftRewards"`
	CommunitySize  int           `json:"communitySize"`
	IsActive       bool          `json:"isActive"`
	CreatedAt      time.Time     `json:"createdAt"`
}
