package entity

import (
	"time"

	"github.com/google/uuid"
)

// WaterStressLevel grades drought severity.
type WaterStressLevel string

const (
	WaterStressLow           WaterStressLevel = "low"
	WaterStressMedium        WaterStressLevel = "medium"
	WaterStressHigh          WaterStressLevel = "high"
	WaterStressExtremelyHigh WaterStressLevel = "extremely_high"
)

// ImpactMetrics accumulate the campaign's effect on a region.
type ImpactMetrics struct {
	BottlesSaved        int `json:"bottlesSaved"`
	CO2Reduced          int `json:"co2Reduced"`
	FamiliesHelped      int `json:"familiesHelped"`
	CommunityEngagement int `json:"communityEngagement"`
}

// DroughtRegion is reference data for areas the campaign supports.
type DroughtRegion struct {
	ID               uuid.UUID        `json:"id"`
	Name             string           `json:"name"`
	Country          string           `json:"country"`
	Region           string           `json:"region,omitempty"`
	Latitude         float64          `json:"latitude"`
	Longitude        float64          `json:"longitude"`
	WaterStressLevel WaterStressLevel `json:"waterStressLevel"`
	Population       int              `json:"population"`
	LocalPartners    int              `json:"localPartners"`
	AquacafeUnits    int              `json:"aquacafeUnits"`
	ImpactMetrics    ImpactMetrics    `json:"impactMetrics"`
	IsActive         bool             `json:"isActive"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// DroughtRegionWithDistance is a region annotated with its distance from a
// query point.
type DroughtRegionWithDistance struct {
	*DroughtRegion
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}
