// Package valuation prices traded-in devices and derives hero impact points.
// Every function is pure; unknown inputs fall back to defaults instead of failing.
package valuation

import (
	"math"
	"strings"

	"deliwer/internal/domain/entity"
)

const (
	defaultBaseValue           = 500
	defaultConditionMultiplier = 0.5
	defaultImpactPoints        = 1500
	defaultCampaignMultiplier  = 1.0

	// impact points per AED in campaign estimates
	campaignImpactRate = 2.4
	carbonPerAED       = 0.05
	plasticPerAED      = 2.0
	pointsPerLunch     = 100
)

// base trade value in AED
var baseValues = map[string]int{
	"iPhone 17": 2400,
	"iPhone 16": 2000,
	"iPhone 15": 1800,
	"iPhone 14": 1500,
	"iPhone 13": 1200,
	"iPhone 12": 900,
	"iPhone 11": 600,
}

var impactPoints = map[string]int{
	"iPhone 17": 3200,
	"iPhone 16": 3000,
	"iPhone 15": 2800,
	"iPhone 14": 2600,
	"iPhone 13": 2400,
	"iPhone 12": 2200,
	"iPhone 11": 2000,
}

var conditionMultipliers = map[string]float64{
	"excellent": 1.0,
	"good":      0.8,
	"fair":      0.6,
	"poor":      0.4,
}

var campaignMultipliers = map[string]float64{
	entity.CampaignRegular:            1.0,
	entity.CampaignIPhone17Launch:     1.2,
	entity.CampaignFirstHundredHeroes: 1.5,
}

// Rewards are the side benefits shown next to an estimate.
type Rewards struct {
	LunchCredits     int `json:"lunchCredits"`
	CarbonSaved      int `json:"carbonSaved"`
	PlasticPrevented int `json:"plasticPrevented"`
}

// Estimate is a campaign-aware trade quote.
type Estimate struct {
	TradeValue         int     `json:"tradeValue"`
	ImpactPoints       int     `json:"impactPoints"`
	CampaignBonus      bool    `json:"campaignBonus"`
	CampaignMultiplier float64 `json:"campaignMultiplier"`
	EstimatedRewards   Rewards `json:"estimatedRewards"`
}

// KnownModel reports whether model has an explicit price.
func KnownModel(model string) bool {
	_, ok := baseValues[model]

	return ok
}

// BaseValue returns the AED value of a model in excellent condition.
func BaseValue(model string) int {
	if v, ok := baseValues[model]; ok {
		return v
	}

	return defaultBaseValue
}

// ConditionMultiplier looks up condition case-insensitively.
func ConditionMultiplier(condition string) float64 {
	if m, ok := conditionMultipliers[strings.ToLower(strings.TrimSpace(condition))]; ok {
		return m
	}

	return defaultConditionMultiplier
}

// CampaignMultiplier looks up a campaign by its exact identifier.
func CampaignMultiplier(campaignType string) float64 {
	if m, ok := campaignMultipliers[campaignType]; ok {
		return m
	}

	return defaultCampaignMultiplier
}

// ComputeTradeValue returns round(base × condition multiplier) in AED.
func ComputeTradeValue(model, condition string) int {
	return round(float64(BaseValue(model)) * ConditionMultiplier(condition))
}

// ComputeImpactPoints depends on the model only.
func ComputeImpactPoints(model string) int {
	if p, ok := impactPoints[model]; ok {
		return p
	}

	return defaultImpactPoints
}

// EstimateCampaignTrade prices a trade under a campaign multiplier.
func EstimateCampaignTrade(model, condition, campaignType string) Estimate {
	campaign := CampaignMultiplier(campaignType)
	tradeValue := round(float64(BaseValue(model)) * ConditionMultiplier(condition) * campaign)
	points := round(float64(tradeValue) * campaignImpactRate)

	return Estimate{
		TradeValue:         tradeValue,
		ImpactPoints:       points,
		CampaignBonus:      campaign > defaultCampaignMultiplier,
		CampaignMultiplier: campaign,
		EstimatedRewards: Rewards{
			LunchCredits:     points / pointsPerLunch,
			CarbonSaved:      round(float64(tradeValue) * carbonPerAED),
			PlasticPrevented: round(float64(tradeValue) * plasticPerAED),
		},
	}
}

// round is half away from zero; all inputs here are non-negative.
func round(v float64) int {
	return int(math.Round(v))
}
