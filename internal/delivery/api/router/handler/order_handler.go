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

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves AquaCafe orders
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// PlaceOrderRequest represents the AquaCafe order form
type PlaceOrderRequest struct {
	CustomerName    string     `json:"customerName" validate:"notblank,max=100"`
	CustomerPhone   string     `json:"customerPhone" validate:"notblank,max=30"`
	CustomerAddress string     `json:"customerAddress" validate:"notblank,max=300"`
	TradeInID       *uuid.UUID `json:"tradeInId"`
	UserID          *uuid.UUID `json:"userId"`
}

// PlaceOrder handles order placement
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), &usecase.PlaceOrderInput{
		UserID:          req.UserID,
		TradeInID:       req.TradeInID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// ListOrders handles order listing
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder handles order lookup
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
