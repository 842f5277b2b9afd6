package handler

import (
	"log/slog"
	"net/http"

	"deliwer/internal/delivery/api/response"
	"deliwer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CampaignHandlerParams holds dependencies for CampaignHandler, injected by Fx.
type CampaignHandlerParams struct {
	fx.In

	CampaignUC usecase.CampaignUsecase
	Logger     *slog.Logger
}

// CampaignHandler serves the iPhone 17 promotion and social sharing
type CampaignHandler struct {
	campaignUC usecase.CampaignUsecase
	logger     *slog.Logger
}

// NewCampaignHandler is the constructor for CampaignHandler
func NewCampaignHandler(params CampaignHandlerParams) *CampaignHandler {
	return &CampaignHandler{
		campaignUC: params.CampaignUC,
		logger:     params.Logger,
	}
}

// TradeEstimateRequest asks for a campaign quote
type TradeEstimateRequest struct {
	DeviceModel  string `json:"deviceModel" validate:"notblank,max=100"`
	Condition    string `json:"condition" validate:"notblank,max=30"`
	CampaignType string `json:"campaignType" validate:"max=50"`
}

// ShareAchievementRequest reports a social share
type ShareAchievementRequest struct {
	UserID          uuid.UUID `json:"userId" validate:"required"`
	Platform        string    `json:"platform" validate:"notblank,max=30"`
	AchievementType string    `json:"achievementType" validate:"notblank,max=60"`
}

// EstimateTrade quotes a device under a campaign
func (h *CampaignHandler) EstimateTrade(c echo.Context) error {
	var req TradeEstimateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid estimate input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	estimate := h.campaignUC.EstimateTrade(c.Request().Context(), req.DeviceModel, req.Condition, req.CampaignType)

	return response.Success(c, http.StatusOK, estimate)
}

// ShareAchievement grants the share bonus
func (h *CampaignHandler) ShareAchievement(c echo.Context) error {
	var req ShareAchievementRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid share input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	result, err := h.campaignUC.ShareAchievement(c.Request().Context(), &usecase.ShareAchievementInput{
		UserID:          req.UserID,
		Platform:        req.Platform,
		AchievementType: req.AchievementType,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
