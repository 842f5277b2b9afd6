package model

import (
	"time"

	"github.com/google/uuid"
)

// NFTRewardColumns is embedded into affiliates with an nft_ prefix.
type NFTRewardColumns struct {
	Earned          int `gorm:"not null;default:0"`
	Distributed     int `gorm:"not null;default:0"`
	CommunityImpact int `gorm:"not null;default:0"`
}

// AffiliateModel mirrors the 'affiliates' table. The unique email index is
// what makes duplicate registration atomic.
type AffiliateModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name           string           `gorm:"type:varchar(255);not null"`
	Email          string           `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone          string           `gorm:"type:varchar(50);not null;default:''"`
	Country        string           `gorm:"type:varchar(100);index;not null;default:''"`
	City           string           `gorm:"type:varchar(100);not null;default:''"`
	Type           string           `gorm:"type:varchar(50);not null"`
	CommissionRate float64          `gorm:"not null"`
	TotalEarnings  float64          `gorm:"not null;default:0"`
	TotalSales     int              `gorm:"not null;default:0"`
	NFTRewards     NFTRewardColumns `gorm:"embedded;embeddedPrefix:nft_"`
	CommunitySize  int              `gorm:"not null;default:0"`
	IsActive       bool             `gorm:"not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AffiliateModel) TableName() string {
	return "affiliates"
}
