package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-api/internal/shared/middleware"
	"blog-api/internal/shared/response"
	"blog-api/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	// "/blogs/" is registered explicitly instead of answered with a 301
	router.RedirectTrailingSlash = false

	corsConfig := middleware.DefaultCorsConfig()
	corsConfig.AllowedOrigins = c.Config.HTTP.AllowedOrigins

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(corsConfig),
	)

	// Health check
	router.GET("/health", healthCheckHandler(c))

	// Blog routes
	c.BlogHandler.RegisterRoutes(router)

	// Browser client, then 404
	router.NoRoute(
		middleware.StaticFiles(c.Config.HTTP.StaticDir),
		middleware.RouteNotFound(),
	)

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.HealthCheck(ctx.Request.Context()); err != nil {
			response.ServiceUnavailable(ctx, "Database unavailable")
			return
		}

		response.Success(ctx, http.StatusOK, gin.H{
			"status":   "ok",
			"database": "connected",
		})
	}
}
