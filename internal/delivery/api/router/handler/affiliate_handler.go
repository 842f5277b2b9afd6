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

// AffiliateHandlerParams holds dependencies for AffiliateHandler, injected by Fx.
type AffiliateHandlerParams struct {
	fx.In

	AffiliateUC usecase.AffiliateUsecase
	Logger      *slog.Logger
}

// AffiliateHandler serves partner signups and referral codes
type AffiliateHandler struct {
	affiliateUC usecase.AffiliateUsecase
	logger      *slog.Logger
}

// NewAffiliateHandler is the constructor for AffiliateHandler
func NewAffiliateHandler(params AffiliateHandlerParams) *AffiliateHandler {
	return &AffiliateHandler{
		affiliateUC: params.AffiliateUC,
		logger:      params.Logger,
	}
}

// RegisterAffiliateRequest represents the partnership signup form
type RegisterAffiliateRequest struct {
	Name          string `json:"name" validate:"notblank,max=100"`
	Email         string `json:"email" validate:"required,email,max=254"`
	Phone         string `json:"phone" validate:"max=30"`
	Type          string `json:"type" validate:"required,oneof=agent restaurant community_leader drought_region_partner"`
	Country       string `json:"country" validate:"max=60"`
	City          string `json:"city" validate:"max=60"`
	CommunitySize int    `json:"communitySize" validate:"gte=0"`
}

// UpdateNFTRewardsRequest represents the admin NFT counter update
type UpdateNFTRewardsRequest struct {
	Earned          *int `json:"earned" validate:"required,gte=0"`
	Distributed     *int `json:"distributed" validate:"required,gte=0"`
	CommunityImpact *int `json:"communityImpact" validate:"required,gte=0"`
}

// RegisterAffiliate handles partner signup
func (h *AffiliateHandler) RegisterAffiliate(c echo.Context) error {
	var req RegisterAffiliateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid affiliate input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	affiliate, err := h.affiliateUC.RegisterAffiliate(c.Request().Context(), &usecase.RegisterAffiliateInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Country:       req.Country,
		City:          req.City,
		Type:          entity.AffiliateType(req.Type),
		CommunitySize: req.CommunitySize,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, affiliate)
}

// ListAffiliates handles partner listing with an optional country filter
func (h *AffiliateHandler) ListAffiliates(c echo.Context) error {
	affiliates, err := h.affiliateUC.ListAffiliates(c.Request().Context(), c.QueryParam("country"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, affiliates)
}

// GetReferralQR serves the partner's referral QR code as PNG
func (h *AffiliateHandler) GetReferralQR(c echo.Context) error {
	affiliateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid affiliate ID")
	}

	png, err := h.affiliateUC.GetReferralQR(c.Request().Context(), affiliateID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// UpdateNFTRewards handles the admin NFT counter update
func (h *AffiliateHandler) UpdateNFTRewards(c echo.Context) error {
	affiliateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid affiliate ID")
	}

	var req UpdateNFTRewardsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid NFT rewards input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	affiliate, err := h.affiliateUC.UpdateNFTRewards(c.Request().Context(), affiliateID, entity.NFTRewards{
		Earned:          *req.Earned,
		Distributed:     *req.Distributed,
		CommunityImpact: *req.CommunityImpact,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, affiliate)
}
