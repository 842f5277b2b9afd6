package handler

import (
	"log/slog"
	"net/http"

	"deliwer/internal/delivery/api/response"
	"deliwer/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves back-office authentication
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// AdminLoginRequest represents the back-office login form
type AdminLoginRequest struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// Login exchanges admin credentials for an access token
func (h *AdminHandler) Login(c echo.Context) error {
	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	token, err := h.adminUC.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, token)
}
