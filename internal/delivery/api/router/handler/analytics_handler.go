package handler

import (
	"log/slog"
	"net/http"

	"deliwer/internal/delivery/api/response"
	"deliwer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// AnalyticsHandler serves read-only campaign aggregates
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// GetCampaignStats returns the landing page counters
func (h *AnalyticsHandler) GetCampaignStats(c echo.Context) error {
	stats, err := h.analyticsUC.GetCampaignStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// GetGlobalImpact returns the global impact totals
func (h *AnalyticsHandler) GetGlobalImpact(c echo.Context) error {
	stats, err := h.analyticsUC.GetGlobalImpactStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// GetFirstHundredProgress returns the launch offer counter
func (h *AnalyticsHandler) GetFirstHundredProgress(c echo.Context) error {
	progress, err := h.analyticsUC.GetFirstHundredProgress(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, progress)
}

// GetClimateStats returns community climate totals and top performers
func (h *AnalyticsHandler) GetClimateStats(c echo.Context) error {
	stats, err := h.analyticsUC.GetClimateStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
