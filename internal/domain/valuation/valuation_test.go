package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTradeValue(t *testing.T) {
	tests := []struct {
		name      string
		model     string
		condition string
		want      int
	}{
		{name: "iPhone 15 excellent", model: "iPhone 15", condition: "excellent", want: 1800},
		{name: "iPhone 15 good", model: "iPhone 15", condition: "good", want: 1440},
		{name: "iPhone 14 fair", model: "iPhone 14", condition: "fair", want: 900},
		{name: "iPhone 13 poor", model: "iPhone 13", condition: "poor", want: 480},
		{name: "iPhone 11 good", model: "iPhone 11", condition: "good", want: 480},
		{name: "iPhone 17 excellent", model: "iPhone 17", condition: "excellent", want: 2400},
		{name: "condition is case insensitive", model: "iPhone 12", condition: "  GOOD ", want: 720},
		{name: "unknown condition halves", model: "iPhone 15", condition: "cracked", want: 900},
		{name: "unknown model uses default base", model: "Galaxy S24", condition: "excellent", want: 500},
		{name: "unknown model and condition", model: "Nokia 3310", condition: "", want: 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTradeValue(tt.model, tt.condition))
		})
	}
}

func TestComputeImpactPoints(t *testing.T) {
	assert.Equal(t, 2800, ComputeImpactPoints("iPhone 15"))
	assert.Equal(t, 2000, ComputeImpactPoints("iPhone 11"))
	assert.Equal(t, 1500, ComputeImpactPoints("Pixel 9"))
}

func TestComputeImpactPoints_IndependentOfCondition(t *testing.T) {
	for _, model := range []string{"iPhone 15", "iPhone 12", "unknown"} {
		points := ComputeImpactPoints(model)
		for _, condition := range []string{"excellent", "poor", "whatever"} {
			_ = ComputeTradeValue(model, condition)
			assert.Equal(t, points, ComputeImpactPoints(model))
		}
	}
}

func TestEstimateCampaignTrade(t *testing.T) {
	tests := []struct {
		name      string
		model     string
		condition string
		campaign  string
		want      Estimate
	}{
		{
			name:      "first hundred heroes on iPhone 17",
			model:     "iPhone 17",
			condition: "excellent",
			campaign:  "first_hundred_heroes",
			want: Estimate{
				TradeValue:         3600,
				ImpactPoints:       8640,
				CampaignBonus:      true,
				CampaignMultiplier: 1.5,
				EstimatedRewards:   Rewards{LunchCredits: 86, CarbonSaved: 180, PlasticPrevented: 7200},
			},
		},
		{
			name:      "launch campaign on good iPhone 16",
			model:     "iPhone 16",
			condition: "good",
			campaign:  "iphone17_launch",
			want: Estimate{
				TradeValue:         1920,
				ImpactPoints:       4608,
				CampaignBonus:      true,
				CampaignMultiplier: 1.2,
				EstimatedRewards:   Rewards{LunchCredits: 46, CarbonSaved: 96, PlasticPrevented: 3840},
			},
		},
		{
			name:      "regular campaign has no bonus",
			model:     "iPhone 15",
			condition: "fair",
			campaign:  "regular",
			want: Estimate{
				TradeValue:         1080,
				ImpactPoints:       2592,
				CampaignBonus:      false,
				CampaignMultiplier: 1.0,
				EstimatedRewards:   Rewards{LunchCredits: 25, CarbonSaved: 54, PlasticPrevented: 2160},
			},
		},
		{
			name:      "unknown campaign and model",
			model:     "Pixel 9",
			condition: "excellent",
			campaign:  "black_friday",
			want: Estimate{
				TradeValue:         500,
				ImpactPoints:       1200,
				CampaignBonus:      false,
				CampaignMultiplier: 1.0,
				EstimatedRewards:   Rewards{LunchCredits: 12, CarbonSaved: 25, PlasticPrevented: 1000},
			},
		},
		{
			name:      "campaign and model match exactly",
			model:     "iPhone 15",
			condition: " EXCELLENT ",
			campaign:  "First_Hundred_Heroes",
			want: Estimate{
				TradeValue:         1800,
				ImpactPoints:       4320,
				CampaignBonus:      false,
				CampaignMultiplier: 1.0,
				EstimatedRewards:   Rewards{LunchCredits: 43, CarbonSaved: 90, PlasticPrevented: 3600},
			},
		},
		{
			name:      "padded model is unknown",
			model:     " iPhone 15 ",
			condition: "excellent",
			campaign:  "regular",
			want: Estimate{
				TradeValue:         500,
				ImpactPoints:       1200,
				CampaignBonus:      false,
				CampaignMultiplier: 1.0,
				EstimatedRewards:   Rewards{LunchCredits: 12, CarbonSaved: 25, PlasticPrevented: 1000},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateCampaignTrade(tt.model, tt.condition, tt.campaign))
		})
	}
}

func TestKnownModel(t *testing.T) {
	assert.True(t, KnownModel("iPhone 13"))
	assert.False(t, KnownModel("iphone 13"))
}
