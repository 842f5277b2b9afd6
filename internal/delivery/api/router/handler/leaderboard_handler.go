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

// LeaderboardHandlerParams holds dependencies for LeaderboardHandler, injected by Fx.
type LeaderboardHandlerParams struct {
	fx.In

	LeaderboardUC usecase.LeaderboardUsecase
	Logger        *slog.Logger
}

// LeaderboardHandler serves family rankings
type LeaderboardHandler struct {
	leaderboardUC usecase.LeaderboardUsecase
	logger        *slog.Logger
}

// NewLeaderboardHandler is the constructor for LeaderboardHandler
func NewLeaderboardHandler(params LeaderboardHandlerParams) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardUC: params.LeaderboardUC,
		logger:        params.Logger,
	}
}

// LeaderboardQuery holds the listing filters
type LeaderboardQuery struct {
	Limit   int    `query:"limit"`
	Country string `query:"country"`
}

// UpsertLeaderboardRequest carries the fields to overwrite; omitted fields are kept
type UpsertLeaderboardRequest struct {
	FamilyName       *string `json:"familyName" validate:"omitempty,max=100"`
	Points           *int    `json:"points" validate:"omitempty,gte=0"`
	Level            *int    `json:"level" validate:"omitempty,gte=1"`
	Referrals        *int    `json:"referrals" validate:"omitempty,gte=0"`
	BottlesPrevented *int    `json:"bottlesPrevented" validate:"omitempty,gte=0"`
	CO2Saved         *int    `json:"co2Saved" validate:"omitempty,gte=0"`
}

// GetLeaderboard handles the ranking listing
func (h *LeaderboardHandler) GetLeaderboard(c echo.Context) error {
	var query LeaderboardQuery
	if err := c.Bind(&query); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit must be a number")
	}

	entries, err := h.leaderboardUC.GetLeaderboard(c.Request().Context(), query.Limit, query.Country)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// UpsertLeaderboardEntry handles the admin entry update
func (h *LeaderboardHandler) UpsertLeaderboardEntry(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpsertLeaderboardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid leaderboard input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	entry, err := h.leaderboardUC.UpsertLeaderboardEntry(c.Request().Context(), userID, entity.LeaderboardPatch{
		FamilyName:       req.FamilyName,
		Points:           req.Points,
		Level:            req.Level,
		Referrals:        req.Referrals,
		BottlesPrevented: req.BottlesPrevented,
		CO2Saved:         req.CO2Saved,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entry)
}
