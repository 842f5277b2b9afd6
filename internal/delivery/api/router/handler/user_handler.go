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

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves climate hero accounts
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterUserRequest represents the hero signup form
type RegisterUserRequest struct {
	Username string `json:"username" validate:"notblank,max=50"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Country  string `json:"country" validate:"max=60"`
	City     string `json:"city" validate:"max=60"`
	HeroType string `json:"heroType" validate:"max=30"`
}

// SetPointsRequest overwrites hero points
type SetPointsRequest struct {
	Points *int `json:"points" validate:"required,gte=0"`
}

// SetLevelRequest overwrites the hero level
type SetLevelRequest struct {
	Level int `json:"level" validate:"required,gte=1"`
}

// AddAchievementRequest appends an achievement
type AddAchievementRequest struct {
	Achievement string `json:"achievement" validate:"notblank,max=100"`
}

// RegisterUser handles hero signup
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	user, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		Country:  req.Country,
		City:     req.City,
		HeroType: req.HeroType,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// GetUser handles hero lookup
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// SetPoints handles the admin points overwrite
func (h *UserHandler) SetPoints(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req SetPointsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid points input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	user, err := h.userUC.SetPoints(c.Request().Context(), userID, *req.Points)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// SetLevel handles the admin level overwrite
func (h *UserHandler) SetLevel(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req SetLevelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid level input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	user, err := h.userUC.SetLevel(c.Request().Context(), userID, req.Level)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// AddAchievement handles the admin achievement grant
func (h *UserHandler) AddAchievement(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req AddAchievementRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid achievement input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	user, err := h.userUC.AddAchievement(c.Request().Context(), userID, req.Achievement)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}
