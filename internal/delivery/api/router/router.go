// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"time"

	"deliwer/config"
	"deliwer/internal/delivery/api/middleware"
	"deliwer/internal/delivery/api/response"
	"deliwer/internal/delivery/api/router/handler"
	"deliwer/internal/domain/entity"
	"deliwer/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const rateLimitExpiry = 3 * time.Minute

type RouterParams struct {
	fx.In

	TradeInHandler       *handler.TradeInHandler
	OrderHandler         *handler.OrderHandler
	AffiliateHandler     *handler.AffiliateHandler
	LeaderboardHandler   *handler.LeaderboardHandler
	ChallengeHandler     *handler.ChallengeHandler
	AnalyticsHandler     *handler.AnalyticsHandler
	CampaignHandler      *handler.CampaignHandler
	UserHandler          *handler.UserHandler
	DroughtRegionHandler *handler.DroughtRegionHandler
	AdminHandler         *handler.AdminHandler
	AuthMiddleware       *middleware.AuthMiddleware
	Metrics              *metrics.Metrics
	Config               *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	tradeInHandler       *handler.TradeInHandler
	orderHandler         *handler.OrderHandler
	affiliateHandler     *handler.AffiliateHandler
	leaderboardHandler   *handler.LeaderboardHandler
	challengeHandler     *handler.ChallengeHandler
	analyticsHandler     *handler.AnalyticsHandler
	campaignHandler      *handler.CampaignHandler
	userHandler          *handler.UserHandler
	droughtRegionHandler *handler.DroughtRegionHandler
	adminHandler         *handler.AdminHandler
	authMiddleware       *middleware.AuthMiddleware
	metrics              *metrics.Metrics
	config               *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		tradeInHandler:       params.TradeInHandler,
		orderHandler:         params.OrderHandler,
		affiliateHandler:     params.AffiliateHandler,
		leaderboardHandler:   params.LeaderboardHandler,
		challengeHandler:     params.ChallengeHandler,
		analyticsHandler:     params.AnalyticsHandler,
		campaignHandler:      params.CampaignHandler,
		userHandler:          params.UserHandler,
		droughtRegionHandler: params.DroughtRegionHandler,
		adminHandler:         params.AdminHandler,
		authMiddleware:       params.AuthMiddleware,
		metrics:              params.Metrics,
		config:               params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// Public writes are throttled per client
	limit := r.rateLimiter()

	// Back-office login
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/admin/login", r.adminHandler.Login, limit...)
	}

	api := e.Group("/api")

	api.GET("/leaderboard", r.leaderboardHandler.GetLeaderboard)
	api.GET("/community-challenge", r.challengeHandler.GetCurrentChallenge)

	tradeIns := api.Group("/trade-ins")
	{
		tradeIns.POST("", r.tradeInHandler.CreateTradeIn, limit...)
		tradeIns.GET("/:id", r.tradeInHandler.GetTradeIn)
	}

	orders := api.Group("/aquacafe-orders")
	{
		orders.POST("", r.orderHandler.PlaceOrder, limit...)
		orders.GET("", r.orderHandler.ListOrders)
		orders.GET("/:id", r.orderHandler.GetOrder)
	}

	affiliates := api.Group("/affiliates")
	{
		affiliates.POST("", r.affiliateHandler.RegisterAffiliate, limit...)
		affiliates.GET("", r.affiliateHandler.ListAffiliates)
		affiliates.GET("/:id/qr", r.affiliateHandler.GetReferralQR)
	}

	analytics := api.Group("/analytics")
	{
		analytics.GET("/stats", r.analyticsHandler.GetCampaignStats)
		analytics.GET("/global-impact", r.analyticsHandler.GetGlobalImpact)
	}

	iphone17 := api.Group("/iphone17")
	{
		iphone17.GET("/first-hundred-progress", r.analyticsHandler.GetFirstHundredProgress)
		iphone17.POST("/trade-estimate", r.campaignHandler.EstimateTrade)
	}

	api.GET("/climate-stats", r.analyticsHandler.GetClimateStats)
	api.POST("/social/share-achievement", r.campaignHandler.ShareAchievement, limit...)

	users := api.Group("/users")
	{
		users.POST("", r.userHandler.RegisterUser, limit...)
		users.GET("/:id", r.userHandler.GetUser)
	}

	api.GET("/drought-regions", r.droughtRegionHandler.ListRegions)

	// Admin routes require a token carrying the admin role
	admin := api.Group("/admin")
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		admin.PATCH("/trade-ins/:id/status", r.tradeInHandler.UpdateTradeInStatus)

		admin.POST("/challenges", r.challengeHandler.CreateChallenge)
		admin.POST("/challenges/progress", r.challengeHandler.UpdateChallengeProgress)

		admin.PUT("/leaderboard/:userId", r.leaderboardHandler.UpsertLeaderboardEntry)

		admin.PUT("/users/:id/points", r.userHandler.SetPoints)
		admin.PUT("/users/:id/level", r.userHandler.SetLevel)
		admin.POST("/users/:id/achievements", r.userHandler.AddAchievement)

		admin.PUT("/affiliates/:id/nft-rewards", r.affiliateHandler.UpdateNFTRewards)

		admin.POST("/drought-regions", r.droughtRegionHandler.CreateRegion)
		admin.PUT("/drought-regions/:id/metrics", r.droughtRegionHandler.UpdateImpactMetrics)
	}
}

// rateLimiter returns the per-IP limiter for public writes, or nothing when
// rate limiting is disabled.
func (r *router) rateLimiter() []echo.MiddlewareFunc {
	cfg := r.config.HTTP.RateLimit
	if cfg == nil || !cfg.Enabled || cfg.Rate <= 0 {
		return nil
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.Rate),
		Burst:     cfg.Burst,
		ExpiresIn: rateLimitExpiry,
	})

	return []echo.MiddlewareFunc{
		echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
			Store: store,
			IdentifierExtractor: func(c echo.Context) (string, error) {
				return c.RealIP(), nil
			},
			ErrorHandler: func(c echo.Context, err error) error {
				return response.Forbidden(c, "Unable to identify client")
			},
			DenyHandler: func(c echo.Context, identifier string, err error) error {
				return response.TooManyRequests(c)
			},
		}),
	}
}
