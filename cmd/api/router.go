package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authorsite-backend/internal/shared/middleware"
	"authorsite-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c)
		setupWorkRoutes(api, c)
		setupBookRoutes(api, c)
		setupAwardRoutes(api, c)
		setupHomeRoutes(api, c)
		setupUploadRoutes(api, c)
		setupAdminRoutes(api, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/logout", c.AuthHandler.Logout)
		auth.GET("/session", c.AuthHandler.Session)
	}
}

// ========================================
// WORK ROUTES
// ========================================
func setupWorkRoutes(api *gin.RouterGroup, c *container.Container) {
	gate := middleware.SessionGate(c.JWTManager)

	works := api.Group("/works")
	{
		works.GET("", c.WorkHandler.List)
		works.GET("/featured", c.WorkHandler.ListFeatured)
		works.GET("/slugs", c.WorkHandler.ListSlugs)
		works.GET("/slug/:slug", c.WorkHandler.GetBySlug)

		works.POST("", gate, c.WorkHandler.Create)
		works.PUT("/:id", gate, c.WorkHandler.Update)
		works.DELETE("/:id", gate, c.WorkHandler.Delete)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(api *gin.RouterGroup, c *container.Container) {
	gate := middleware.SessionGate(c.JWTManager)

	books := api.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/featured", c.BookHandler.ListFeatured)

		books.POST("", gate, c.BookHandler.Create)
		books.PUT("/:id", gate, c.BookHandler.Update)
		books.DELETE("/:id", gate, c.BookHandler.Delete)
	}
}

// ========================================
// AWARD ROUTES
// ========================================
func setupAwardRoutes(api *gin.RouterGroup, c *container.Container) {
	gate := middleware.SessionGate(c.JWTManager)

	awards := api.Group("/awards")
	{
		awards.GET("", c.AwardHandler.List)

		awards.POST("", gate, c.AwardHandler.Create)
		awards.PUT("/:id", gate, c.AwardHandler.Update)
		awards.DELETE("/:id", gate, c.AwardHandler.Delete)
	}
}

// ========================================
// HOME ROUTES
// ========================================
func setupHomeRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/stats", c.HomeHandler.Stats)
}

// ========================================
// UPLOAD ROUTES
// ========================================
func setupUploadRoutes(api *gin.RouterGroup, c *container.Container) {
	gate := middleware.SessionGate(c.JWTManager)

	api.POST("/upload", gate, c.UploadHandler.Upload)
	api.DELETE("/upload", gate, c.UploadHandler.Delete)
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(api *gin.RouterGroup, c *container.Container) {
	admin := api.Group("/admin")
	admin.Use(middleware.SessionGate(c.JWTManager))
	{
		admin.GET("/works", c.WorkHandler.AdminList)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		status := http.StatusOK
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "unavailable"
			status = http.StatusServiceUnavailable
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			// Cache loss degrades performance, not availability.
			cacheStatus = "unavailable"
		}

		ctx.JSON(status, gin.H{
			"status":   dbStatus,
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
