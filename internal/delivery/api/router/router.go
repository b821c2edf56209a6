// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strings"

	"localguide/config"
	"localguide/internal/delivery/api/middleware"
	"localguide/internal/delivery/api/router/handler"
	"localguide/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultPublicImagePrefix = "/usercontent/images"

// PublicImagePrefix is the user-content path that serves the same files as /api/images/serve.
func PublicImagePrefix(cfg *config.Config) string {
	if cfg == nil || cfg.Images == nil {
		return defaultPublicImagePrefix
	}
	if prefix := strings.Trim(cfg.Images.PublicPrefix, "/"); prefix != "" {
		return "/" + prefix
	}

	return defaultPublicImagePrefix
}

type RouterParams struct {
	fx.In

	Cfg               *config.Config
	CatalogHandler    *handler.CatalogHandler
	ImageHandler      *handler.ImageHandler
	ReviewHandler     *handler.ReviewHandler
	AdminHandler      *handler.AdminHandler
	AuthHandler       *handler.AuthHandler
	SessionMiddleware *middleware.SessionMiddleware
	Metrics           *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg               *config.Config
	catalogHandler    *handler.CatalogHandler
	imageHandler      *handler.ImageHandler
	reviewHandler     *handler.ReviewHandler
	adminHandler      *handler.AdminHandler
	authHandler       *handler.AuthHandler
	sessionMiddleware *middleware.SessionMiddleware
	metrics           *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:               params.Cfg,
		catalogHandler:    params.CatalogHandler,
		imageHandler:      params.ImageHandler,
		reviewHandler:     params.ReviewHandler,
		adminHandler:      params.AdminHandler,
		authHandler:       params.AuthHandler,
		sessionMiddleware: params.SessionMiddleware,
		metrics:           params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.metrics.Enabled() {
		e.GET(r.metrics.Path(), echo.WrapHandler(r.metrics.Handler()))
	}

	// Image files are public. They are served by exact path and never consult the session.
	e.GET(PublicImagePrefix(r.cfg)+"/*", r.imageHandler.ServeImage)

	// Only routes that act on the caller resolve the session token.
	withSession := r.sessionMiddleware.Resolve

	api := e.Group("/api")

	spotsGroup := api.Group("/spots")
	{
		spotsGroup.GET("", r.catalogHandler.ListSpots)
		spotsGroup.GET("/:id", r.catalogHandler.GetSpot)
	}

	landmarksGroup := api.Group("/landmarks")
	{
		landmarksGroup.GET("", r.catalogHandler.ListLandmarks)
		landmarksGroup.GET("/:id", r.catalogHandler.GetLandmark)
		landmarksGroup.GET("/:id/qr", r.catalogHandler.GetLandmarkQR)
	}

	imagesGroup := api.Group("/images")
	{
		imagesGroup.GET("", r.imageHandler.ListImages, withSession)
		imagesGroup.GET("/serve/*", r.imageHandler.ServeImage)
	}

	reviewsGroup := api.Group("/reviews")
	{
		reviewsGroup.GET("", r.reviewHandler.ListReviews)
		reviewsGroup.POST("", r.reviewHandler.CreateReview, withSession)
		reviewsGroup.DELETE("/:id", r.reviewHandler.DeleteReview, withSession)
	}

	adminGroup := api.Group("/admin", withSession)
	{
		adminGroup.GET("/businesses", r.adminHandler.ListBusinesses)
		adminGroup.DELETE("/reviews/:id", r.adminHandler.DeleteReview)
		adminGroup.POST("/seed", r.adminHandler.Seed)
	}

	authGroup := api.Group("/auth", withSession)
	{
		authGroup.POST("/assign-admin", r.authHandler.AssignAdmin)
	}
}
