// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"petplace/config"
	"petplace/internal/delivery/api/middleware"
	"petplace/internal/delivery/api/router/handler"
	"petplace/internal/domain/entity"
	"petplace/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	BusinessHandler     *handler.BusinessHandler
	ReviewHandler       *handler.ReviewHandler
	BlogHandler         *handler.BlogHandler
	AffiliateHandler    *handler.AffiliateHandler
	TaxonomyHandler     *handler.TaxonomyHandler
	ImageHandler        *handler.ImageHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Metrics
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	deviceHandler       *handler.DeviceHandler
	notificationHandler *handler.NotificationHandler
	businessHandler     *handler.BusinessHandler
	reviewHandler       *handler.ReviewHandler
	blogHandler         *handler.BlogHandler
	affiliateHandler    *handler.AffiliateHandler
	taxonomyHandler     *handler.TaxonomyHandler
	imageHandler        *handler.ImageHandler
	authMiddleware      *middleware.AuthMiddleware
	metrics             *metrics.Metrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		userHandler:         params.UserHandler,
		deviceHandler:       params.DeviceHandler,
		notificationHandler: params.NotificationHandler,
		businessHandler:     params.BusinessHandler,
		reviewHandler:       params.ReviewHandler,
		blogHandler:         params.BlogHandler,
		affiliateHandler:    params.AffiliateHandler,
		taxonomyHandler:     params.TaxonomyHandler,
		imageHandler:        params.ImageHandler,
		authMiddleware:      params.AuthMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate
	optionalAuth := r.authMiddleware.OptionalAuth

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/google", r.authHandler.GoogleLogin)
		authGroup.GET("/me", r.authHandler.Me, authenticate)
	}

	// User routes; static paths are registered before /:id
	usersGroup := api.Group("/users")
	{
		usersGroup.GET("/search", r.userHandler.Search)
		usersGroup.PUT("/deactivate", r.userHandler.Deactivate, authenticate)
		usersGroup.GET("/profile/:id", r.userHandler.PublicProfile)
		usersGroup.GET("/:id/reviews", r.userHandler.Reviews)
		usersGroup.PUT("/me", r.userHandler.UpdateMe, authenticate)
		usersGroup.GET("/dashboard", r.userHandler.Dashboard, authenticate)

		usersGroup.GET("/devices", r.deviceHandler.GetUserDevices, authenticate)
		usersGroup.POST("/devices", r.deviceHandler.RegisterDevice, authenticate)
		usersGroup.DELETE("/devices/:id", r.deviceHandler.DeleteDevice, authenticate)

		usersGroup.GET("/notifications", r.notificationHandler.List, authenticate)
		usersGroup.PUT("/notifications/read-all", r.notificationHandler.MarkAllRead, authenticate)
		usersGroup.PUT("/notifications/:id/read", r.notificationHandler.MarkRead, authenticate)
	}

	businessGroup := api.Group("/businesses")
	{
		businessGroup.GET("", r.businessHandler.List, optionalAuth)
		businessGroup.POST("", r.businessHandler.Create, authenticate)
		businessGroup.GET("/categories", r.businessHandler.Categories)
		businessGroup.GET("/featured", r.businessHandler.Featured)
		businessGroup.GET("/search", r.businessHandler.Search)
		businessGroup.POST("/nearby", r.businessHandler.Nearby)
		businessGroup.GET("/:id", r.businessHandler.Get, optionalAuth)
		businessGroup.PUT("/:id", r.businessHandler.Update, authenticate)
		businessGroup.DELETE("/:id", r.businessHandler.Delete, authenticate)
		businessGroup.GET("/:id/reviews", r.businessHandler.Reviews)
	}

	reviewGroup := api.Group("/reviews")
	{
		reviewGroup.GET("", r.reviewHandler.List)
		reviewGroup.POST("", r.reviewHandler.Create, authenticate)
		reviewGroup.GET("/:id", r.reviewHandler.Get)
		reviewGroup.PUT("/:id", r.reviewHandler.Update, authenticate)
		reviewGroup.DELETE("/:id", r.reviewHandler.Delete, authenticate)
		reviewGroup.POST("/:id/helpful", r.reviewHandler.Helpful)
	}

	blogGroup := api.Group("/blog")
	{
		blogGroup.GET("/posts", r.blogHandler.List)
		blogGroup.POST("/posts", r.blogHandler.Create, authenticate)
		blogGroup.GET("/posts/:slug", r.blogHandler.GetBySlug)
		blogGroup.PUT("/posts/:id", r.blogHandler.Update, authenticate)
		blogGroup.DELETE("/posts/:id", r.blogHandler.Delete, authenticate)
		blogGroup.POST("/posts/:id/like", r.blogHandler.Like)
		blogGroup.GET("/categories", r.blogHandler.Categories)
		blogGroup.GET("/tags", r.blogHandler.Tags)
	}

	affiliateGroup := api.Group("/affiliate")
	{
		affiliateGroup.GET("/links", r.affiliateHandler.ListLinks, authenticate)
		affiliateGroup.POST("/links", r.affiliateHandler.CreateLink, authenticate)
		affiliateGroup.GET("/links/:id", r.affiliateHandler.GetLink, authenticate)
		affiliateGroup.GET("/links/:id/qrcode", r.affiliateHandler.QRCode)
		affiliateGroup.POST("/links/:id/click", r.affiliateHandler.Click, optionalAuth)
		affiliateGroup.POST("/links/:id/conversion", r.affiliateHandler.Conversion, optionalAuth)
		affiliateGroup.GET("/stats", r.affiliateHandler.Stats, authenticate)
		affiliateGroup.GET("/top", r.affiliateHandler.Top)
		affiliateGroup.GET("/earnings/report", r.affiliateHandler.EarningsReport, authenticate)
	}

	api.GET("/categories", r.taxonomyHandler.Categories)
	api.GET("/tags/trending", r.taxonomyHandler.TrendingTags)

	imageGroup := api.Group("/images")
	{
		imageGroup.GET("", r.imageHandler.List)
		imageGroup.POST("", r.imageHandler.Register, authenticate)
		imageGroup.DELETE("/:id", r.imageHandler.Delete, authenticate)
	}

	// Admin routes require authentication and a staff role
	adminGroup := api.Group("/admin")
	adminGroup.Use(authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleModerator))
	{
		adminGroup.PUT("/businesses/:id/status", r.businessHandler.ChangeStatus)
		adminGroup.PUT("/reviews/:id/status", r.reviewHandler.Moderate)
		adminGroup.POST("/categories", r.taxonomyHandler.CreateCategory, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	path := r.config.Metrics.Path
	if path == "" {
		path = "/metrics"
	}
	e.GET(path, echo.WrapHandler(r.metrics.Handler()))
}
