package model

import (
	"time"

	"github.com/google/uuid"
)

// ImpactMetricColumns is embedded into drought_regions with an impact_ prefix.
type ImpactMetricColumns struct {
	BottlesSaved        int `gorm:"not null;default:0"`
	CO2Reduced          int `gorm:"column:co2_reduced;not null;default:0"`
	FamiliesHelped      int `gorm:"not null;default:0"`
	CommunityEngagement int `gorm:"not null;default:0"`
}

// DroughtRegionModel mirrors the 'drought_regions' table.
type DroughtRegionModel struct {
	ID               uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Name             string              `gorm:"type:varchar(255);not null"`
	Country          string              `gorm:"type:varchar(100);not null"`
	Region           string              `gorm:"type:varchar(100);not null;default:''"`
	Latitude         float64             `gorm:"not null"`
	Longitude        float64             `gorm:"not null"`
	WaterStressLevel string              `gorm:"type:varchar(20);not null"`
	Population       int                 `gorm:"not null;default:0"`
	LocalPartners    int                 `gorm:"not null;default:0"`
	AquacafeUnits    int                 `gorm:"not null;default:0"`
	ImpactMetrics    ImpactMetricColumns `gorm:"embedded;embeddedPrefix:impact_"`
	IsActive         bool                `gorm:"not null;index"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (DroughtRegionModel) TableName() string {
	return "drought_regions"
}

// AllModels lists every table for migrations and code generation.
func AllModels() []any {
	return []any{
		&UserModel{},
		&TradeInModel{},
		&AquacafeOrderModel{},
		&AffiliateModel{},
		&LeaderboardEntryModel{},
		&CommunityChallengeModel{},
		&DroughtRegionModel{},
	}
}
