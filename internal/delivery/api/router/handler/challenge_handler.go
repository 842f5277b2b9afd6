package handler

import (
	"log/slog"
	"net/http"
	"time"

	"deliwer/internal/delivery/api/response"
	"deliwer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChallengeHandlerParams holds dependencies for ChallengeHandler, injected by Fx.
type ChallengeHandlerParams struct {
	fx.In

	ChallengeUC usecase.ChallengeUsecase
	Logger      *slog.Logger
}

// ChallengeHandler serves the community challenge
type ChallengeHandler struct {
	challengeUC usecase.ChallengeUsecase
	logger      *slog.Logger
}

// NewChallengeHandler is the constructor for ChallengeHandler
func NewChallengeHandler(params ChallengeHandlerParams) *ChallengeHandler {
	return &ChallengeHandler{
		challengeUC: params.ChallengeUC,
		logger:      params.Logger,
	}
}

// CreateChallengeRequest represents a new community challenge
type CreateChallengeRequest struct {
	Title        string    `json:"title" validate:"notblank,max=200"`
	Description  string    `json:"description" validate:"max=2000"`
	TargetAmount int       `json:"targetAmount" validate:"gte=0"`
	EndDate      time.Time `json:"endDate" validate:"required"`
	Region       string    `json:"region" validate:"max=60"`
	RewardPoints int       `json:"rewardPoints" validate:"gte=0"`
	RewardBadges []string  `json:"rewardBadges" validate:"omitempty,dive,notblank"`
	// Active defaults to true
	Active *bool `json:"active"`
}

// ChallengeProgressRequest adds bottles to the current challenge
type ChallengeProgressRequest struct {
	Delta int `json:"delta" validate:"gt=0"`
}

// GetCurrentChallenge returns the active challenge or null
func (h *ChallengeHandler) GetCurrentChallenge(c echo.Context) error {
	challenge, err := h.challengeUC.GetCurrentChallenge(c.Request().Context(), c.QueryParam("region"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, challenge)
}

// CreateChallenge handles the admin challenge creation
func (h *ChallengeHandler) CreateChallenge(c echo.Context) error {
	var req CreateChallengeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid challenge input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	challenge, err := h.challengeUC.CreateChallenge(c.Request().Context(), &usecase.CreateChallengeInput{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		EndDate:      req.EndDate,
		Region:       req.Region,
		RewardPoints: req.RewardPoints,
		RewardBadges: req.RewardBadges,
		Inactive:     req.Active != nil && !*req.Active,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, challenge)
}

// UpdateChallengeProgress handles the admin progress increment
func (h *ChallengeHandler) UpdateChallengeProgress(c echo.Context) error {
	var req ChallengeProgressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid progress input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	challenge, err := h.challengeUC.UpdateChallengeProgress(c.Request().Context(), req.Delta)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, challenge)
}
