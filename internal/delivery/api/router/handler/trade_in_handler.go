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

// TradeInHandlerParams holds dependencies for TradeInHandler, injected by Fx.
type TradeInHandlerParams struct {
	fx.In

	TradeInUC usecase.TradeInUsecase
	Logger    *slog.Logger
}

// TradeInHandler serves device trade-ins
type TradeInHandler struct {
	tradeInUC usecase.TradeInUsecase
	logger    *slog.Logger
}

// NewTradeInHandler is the constructor for TradeInHandler
func NewTradeInHandler(params TradeInHandlerParams) *TradeInHandler {
	return &TradeInHandler{
		tradeInUC: params.TradeInUC,
		logger:    params.Logger,
	}
}

// CreateTradeInRequest represents the request body for submitting a device
type CreateTradeInRequest struct {
	DeviceModel     string     `json:"deviceModel" validate:"notblank,max=100"`
	DeviceCondition string     `json:"deviceCondition" validate:"notblank,max=30"`
	UserID          *uuid.UUID `json:"userId"`
	CampaignType    string     `json:"campaignType" validate:"max=50"`
}

// UpdateTradeInStatusRequest represents the request body for moving a trade-in forward
type UpdateTradeInStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed"`
}

// CreateTradeIn handles trade-in submission
func (h *TradeInHandler) CreateTradeIn(c echo.Context) error {
	var req CreateTradeInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid trade-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	tradeIn, err := h.tradeInUC.CreateTradeIn(c.Request().Context(), &usecase.CreateTradeInInput{
		UserID:          req.UserID,
		DeviceModel:     req.DeviceModel,
		DeviceCondition: req.DeviceCondition,
		CampaignType:    req.CampaignType,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, tradeIn)
}

// GetTradeIn handles trade-in lookup
func (h *TradeInHandler) GetTradeIn(c echo.Context) error {
	tradeInID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid trade-in ID")
	}

	tradeIn, err := h.tradeInUC.GetTradeIn(c.Request().Context(), tradeInID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tradeIn)
}

// UpdateTradeInStatus handles the admin status change
func (h *TradeInHandler) UpdateTradeInStatus(c echo.Context) error {
	tradeInID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid trade-in ID")
	}

	var req UpdateTradeInStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	tradeIn, err := h.tradeInUC.UpdateTradeInStatus(c.Request().Context(), tradeInID, entity.TradeInStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tradeIn)
}
