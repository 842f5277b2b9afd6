package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignHandler_EstimateTrade(t *testing.T) {
	h := newHandlers()

	resp := call(t, h.campaign.EstimateTrade, http.MethodPost, "/api/iphone17/trade-estimate",
		`{"deviceModel":"iPhone 17","condition":"excellent","campaignType":"first_hundred_heroes"}`)
	require.Equal(t, http.StatusOK, resp.Status)

	var estimate struct {
		TradeValue    int  `json:"tradeValue"`
		ImpactPoints  int  `json:"impactPoints"`
		CampaignBonus bool `json:"campaignBonus"`
	}
	resp.decode(t, &estimate)
	assert.Equal(t, 3600, estimate.TradeValue)
	assert.Equal(t, 8640, estimate.ImpactPoints)
	assert.True(t, estimate.CampaignBonus)

	resp = call(t, h.campaign.EstimateTrade, http.MethodPost, "/api/iphone17/trade-estimate", `{"deviceModel":"iPhone 17"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
}

func TestCampaignHandler_ShareAchievement(t *testing.T) {
	h := newHandlers()
	userID := h.createUser(t, "flamingo", "UAE")

	resp := call(t, h.campaign.ShareAchievement, http.MethodPost, "/api/social/share-achievement",
		`{"userId":"`+userID+`","platform":"LinkedIn","achievementType":"first_trade"}`)
	require.Equal(t, http.StatusOK, resp.Status)

	type shareResult struct {
		Success     bool     `json:"success"`
		Message     string   `json:"message"`
		BonusPoints int      `json:"bonusPoints"`
		Credited    bool     `json:"credited"`
		Hashtags    []string `json:"hashtags"`
	}
	var result shareResult
	resp.decode(t, &result)
	assert.True(t, result.Success)
	assert.Equal(t, "Thanks for sharing on linkedin! You earned 200 bonus points.", result.Message)
	assert.Equal(t, 200, result.BonusPoints)
	assert.True(t, result.Credited)
	assert.NotEmpty(t, result.Hashtags)

	resp = call(t, h.campaign.ShareAchievement, http.MethodPost, "/api/social/share-achievement",
		`{"userId":"`+userID+`","platform":"linkedin","achievementType":"first_trade"}`)
	require.Equal(t, http.StatusOK, resp.Status)
	var repeat shareResult
	resp.decode(t, &repeat)
	assert.True(t, repeat.Success)
	assert.False(t, repeat.Credited)

	hero := call(t, h.user.GetUser, http.MethodGet, "/api/users/"+userID, "", "id", userID)
	var user struct {
		HeroPoints int `json:"heroPoints"`
	}
	hero.decode(t, &user)
	assert.Equal(t, 200, user.HeroPoints)

	resp = call(t, h.campaign.ShareAchievement, http.MethodPost, "/api/social/share-achievement",
		`{"userId":"`+uuid.NewString()+`","platform":"tiktok","achievementType":"first_trade"}`)
	resp.decode(t, &result)
	assert.Equal(t, 50, result.BonusPoints)
	assert.False(t, result.Credited)

	resp = call(t, h.campaign.ShareAchievement, http.MethodPost, "/api/social/share-achievement",
		`{"platform":"tiktok","achievementType":"first_trade"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
}
