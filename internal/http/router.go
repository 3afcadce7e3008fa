package http

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go.ngs.io/harmonics/internal/content"
	"go.ngs.io/harmonics/internal/usecase"
)

// SiteConfig locates the template and static assets. Empty paths disable
// the corresponding routes, leaving an API-only server.
type SiteConfig struct {
	TemplateDir string
	StaticDir   string
}

// SetupRouter creates and configures the Gin router.
func SetupRouter(harmonicUC *usecase.HarmonicUseCase, posts *content.Store, site SiteConfig) *gin.Engine {

	router := gin.Default()

	// Setup CORS middleware.
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable.
	// Default to allow all origins if not specified.
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if allowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}

	router.Use(cors.New(corsConfig))

	// Create handler.
	handler := NewHandler(harmonicUC, posts)

	// API v1 routes.
	v1 := router.Group("/v1")
	harmonics := v1.Group("/harmonics")
	harmonics.GET("/field", handler.GetField)
	harmonics.GET("/plot", handler.GetPlot)
	harmonics.GET("/modes", handler.GetModes)

	// Health check.
	router.GET("/health", handler.HealthCheck)

	// Site pages.
	if site.TemplateDir != "" {
		router.LoadHTMLGlob(filepath.Join(site.TemplateDir, "*.html"))
		router.GET("/", handler.Index)
		router.GET("/posts/:slug", handler.ShowPost)
	}
	if site.StaticDir != "" {
		router.Static("/static", site.StaticDir)
	}

	return router
}
