package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsHandler_EmptyStore(t *testing.T) {
	h := newHandlers()

	resp := call(t, h.analytics.GetGlobalImpact, http.MethodGet, "/api/analytics/global-impact", "")
	require.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `{"totalUsers":0,"totalBottles":0,"totalCO2Saved":0,"countriesActive":0,"droughtRegionsHelped":0}`, string(resp.Data))

	resp = call(t, h.analytics.GetCampaignStats, http.MethodGet, "/api/analytics/stats", "")
	assert.JSONEq(t, `{"totalHeroes":0,"bottlesPrevented":0,"challengeProgress":0,"challengeTarget":1000000,"daysLeft":0}`, string(resp.Data))

	resp = call(t, h.analytics.GetFirstHundredProgress, http.MethodGet, "/api/iphone17/first-hundred-progress", "")
	assert.JSONEq(t, `{"current":0,"total":100,"spotsLeft":100,"isEligible":true}`, string(resp.Data))

	resp = call(t, h.analytics.GetClimateStats, http.MethodGet, "/api/climate-stats", "")
	require.Equal(t, http.StatusOK, resp.Status)
	var climate struct {
		TotalLunchCredits int              `json:"totalLunchCredits"`
		TopPerformers     []map[string]any `json:"topPerformers"`
	}
	resp.decode(t, &climate)
	assert.Zero(t, climate.TotalLunchCredits)
	assert.Empty(t, climate.TopPerformers)
}

func TestAnalyticsHandler_AfterOrder(t *testing.T) {
	h := newHandlers()
	userID := h.createUser(t, "turtle", "UAE")

	resp := call(t, h.order.PlaceOrder, http.MethodPost, "/api/aquacafe-orders", orderBody+`,"userId":"`+userID+`"}`)
	require.Equal(t, http.StatusCreated, resp.Status)

	resp = call(t, h.analytics.GetFirstHundredProgress, http.MethodGet, "/api/iphone17/first-hundred-progress", "")
	assert.JSONEq(t, `{"current":1,"total":100,"spotsLeft":99,"isEligible":true}`, string(resp.Data))

	resp = call(t, h.analytics.GetCampaignStats, http.MethodGet, "/api/analytics/stats", "")
	var stats struct {
		TotalHeroes      int `json:"totalHeroes"`
		BottlesPrevented int `json:"bottlesPrevented"`
	}
	resp.decode(t, &stats)
	assert.Equal(t, 1, stats.TotalHeroes)
	assert.Equal(t, 2400, stats.BottlesPrevented)
}
