package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// CorsConfig holds CORS configuration settings.
type CorsConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         time.Duration
}

// DefaultCorsConfig allows any origin, which is what the browser client
// expects when it is opened from another host.
func DefaultCorsConfig() CorsConfig {
	return CorsConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPut,
			http.MethodPatch, http.MethodPost, http.MethodDelete,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization", RequestIDHeader},
		MaxAge:         12 * time.Hour,
	}
}

// CORS answers preflight requests with 204 and decorates every other
// response with the allowed origin. Requests from an origin outside the
// list are rejected with 403.
func CORS(config CorsConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:  config.AllowedMethods,
		AllowHeaders:  config.AllowedHeaders,
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        config.MaxAge,
	}

	// cors.Config rejects "*" mixed with explicit origins
	if lo.Contains(config.AllowedOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = config.AllowedOrigins
	}

	return cors.New(corsConfig)
}
