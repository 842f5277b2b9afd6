package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type challengeJSON struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Region        string `json:"region"`
	TargetAmount  int    `json:"targetAmount"`
	CurrentAmount int    `json:"currentAmount"`
	IsActive      bool   `json:"isActive"`
}

func TestChallengeHandler_NoActiveChallenge(t *testing.T) {
	h := newHandlers()

	resp := call(t, h.challenge.GetCurrentChallenge, http.MethodGet, "/api/community-challenge", "")

	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, "null", string(resp.Data))

	resp = call(t, h.challenge.UpdateChallengeProgress, http.MethodPost, "/api/admin/challenges/progress", `{"delta":10}`)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, "null", string(resp.Data))
}

func TestChallengeHandler_CreateAndProgress(t *testing.T) {
	h := newHandlers()
	endDate := time.Now().Add(30 * 24 * time.Hour).UTC().Format(time.RFC3339)

	resp := call(t, h.challenge.CreateChallenge, http.MethodPost, "/api/admin/challenges",
		`{"title":"Million Bottle Challenge","endDate":"`+endDate+`"}`)
	require.Equal(t, http.StatusCreated, resp.Status)

	var created challengeJSON
	resp.decode(t, &created)
	assert.Equal(t, 1_000_000, created.TargetAmount)
	assert.True(t, created.IsActive)

	for range 2 {
		resp = call(t, h.challenge.UpdateChallengeProgress, http.MethodPost, "/api/admin/challenges/progress", `{"delta":250}`)
		require.Equal(t, http.StatusOK, resp.Status)
	}

	resp = call(t, h.challenge.GetCurrentChallenge, http.MethodGet, "/api/community-challenge", "")
	var current challengeJSON
	resp.decode(t, &current)
	assert.Equal(t, created.ID, current.ID)
	assert.Equal(t, 500, current.CurrentAmount)

	resp = call(t, h.challenge.GetCurrentChallenge, http.MethodGet, "/api/community-challenge?region=Kenya", "")
	assert.JSONEq(t, "null", string(resp.Data))
}

func TestChallengeHandler_Validation(t *testing.T) {
	h := newHandlers()

	resp := call(t, h.challenge.UpdateChallengeProgress, http.MethodPost, "/api/admin/challenges/progress", `{"delta":0}`)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)

	resp = call(t, h.challenge.CreateChallenge, http.MethodPost, "/api/admin/challenges", `{"title":"No end"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
}
