package handler

import (
	"log/slog"
	"net/http"

	"deliwer/internal/delivery/api/response"
	"deliwer/internal/domain/entity"
	"deliwer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DroughtRegionHandlerParams holds dependencies for DroughtRegionHandler, injected by Fx.
type DroughtRegionHandlerParams struct {
	fx.In

	DroughtRegionUC usecase.DroughtRegionUsecase
	Logger          *slog.Logger
}

// DroughtRegionHandler serves drought region reference data
type DroughtRegionHandler struct {
	droughtRegionUC usecase.DroughtRegionUsecase
	logger          *slog.Logger
}

// NewDroughtRegionHandler is the constructor for DroughtRegionHandler
func NewDroughtRegionHandler(params DroughtRegionHandlerParams) *DroughtRegionHandler {
	return &DroughtRegionHandler{
		droughtRegionUC: params.DroughtRegionUC,
		logger:          params.Logger,
	}
}

// CreateDroughtRegionRequest represents a new drought region
type CreateDroughtRegionRequest struct {
	Name             string   `json:"name" validate:"notblank,max=100"`
	Country          string   `json:"country" validate:"notblank,max=60"`
	Region           string   `json:"region" validate:"max=60"`
	Latitude         *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude        *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	WaterStressLevel string   `json:"waterStressLevel" validate:"omitempty,oneof=low medium high extremely_high"`
	Population       int      `json:"population" validate:"gte=0"`
	LocalPartners    int      `json:"localPartners" validate:"gte=0"`
	AquacafeUnits    int      `json:"aquacafeUnits" validate:"gte=0"`
}

// UpdateImpactMetricsRequest overwrites a region's impact counters
type UpdateImpactMetricsRequest struct {
	BottlesSaved        *int `json:"bottlesSaved" validate:"required,gte=0"`
	CO2Reduced          *int `json:"co2Reduced" validate:"required,gte=0"`
	FamiliesHelped      *int `json:"familiesHelped" validate:"required,gte=0"`
	CommunityEngagement *int `json:"communityEngagement" validate:"required,gte=0"`
}

// ListRegions returns active regions, nearest first when lat and lng are given
func (h *DroughtRegionHandler) ListRegions(c echo.Context) error {
	var origin *usecase.GeoPoint
	if c.QueryParam("lat") != "" || c.QueryParam("lng") != "" {
		var point usecase.GeoPoint
		err := echo.QueryParamsBinder(c).
			MustFloat64("lat", &point.Latitude).
			MustFloat64("lng", &point.Longitude).
			BindError()
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "lat and lng must both be numbers")
		}
		origin = &point
	}

	regions, err := h.droughtRegionUC.ListRegions(c.Request().Context(), origin)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, regions)
}

// CreateRegion handles the admin region creation
func (h *DroughtRegionHandler) CreateRegion(c echo.Context) error {
	var req CreateDroughtRegionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid drought region input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	region, err := h.droughtRegionUC.CreateRegion(c.Request().Context(), &entity.DroughtRegion{
		Name:             req.Name,
		Country:          req.Country,
		Region:           req.Region,
		Latitude:         *req.Latitude,
		Longitude:        *req.Longitude,
		WaterStressLevel: entity.WaterStressLevel(req.WaterStressLevel),
		Population:       req.Population,
		LocalPartners:    req.LocalPartners,
		AquacafeUnits:    req.AquacafeUnits,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, region)
}

// UpdateImpactMetrics handles the admin metrics overwrite
func (h *DroughtRegionHandler) UpdateImpactMetrics(c echo.Context) error {
	regionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid drought region ID")
	}

	var req UpdateImpactMetricsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid impact metrics input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	region, err := h.droughtRegionUC.UpdateImpactMetrics(c.Request().Context(), regionID, entity.ImpactMetrics{
		BottlesSaved:        *req.BottlesSaved,
		CO2Reduced:          *req.CO2Reduced,
		FamiliesHelped:      *req.FamiliesHelped,
		CommunityEngagement: *req.CommunityEngagement,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, region)
}
