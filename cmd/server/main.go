// Package main provides the harmonics site and API HTTP server.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go.ngs.io/harmonics/internal/content"
	httpHandler "go.ngs.io/harmonics/internal/http"
	"go.ngs.io/harmonics/internal/usecase"
)

const version = "0.1.0"

func main() {
	// Parse command-line flags.
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}

	if *showVersion {
		fmt.Printf("harmonics version %s\n", version)
		return
	}

	// Initialize logger.
	logConfig := zap.NewProductionConfig()
	if os.Getenv("LOG_LEVEL") == "debug" {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := logConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// Load configuration from environment.
	port := getEnv("PORT", "8080")
	contentDir := getEnv("CONTENT_DIR", "./content/posts")
	templateDir := getEnv("TEMPLATE_DIR", "./web/templates")
	staticDir := getEnv("STATIC_DIR", "./web/static")

	logger.Info("starting harmonics server",
		zap.String("version", version),
		zap.String("port", port),
		zap.String("content_dir", contentDir),
		zap.String("template_dir", templateDir),
		zap.String("static_dir", staticDir),
	)

	// Initialize stores and use cases.
	posts := content.NewStore(contentDir)
	harmonicUC := usecase.NewHarmonicUseCase()

	// Setup router.
	router := httpHandler.SetupRouter(harmonicUC, posts, httpHandler.SiteConfig{
		TemplateDir: templateDir,
		StaticDir:   staticDir,
	})

	addr := fmt.Sprintf(":%s", port)
	logger.Info("server listening",
		zap.String("addr", addr),
		zap.Strings("endpoints", []string{
			"GET /",
			"GET /posts/:slug",
			"GET /v1/harmonics/field",
			"GET /v1/harmonics/plot",
			"GET /v1/harmonics/modes",
			"GET /health",
		}),
	)

	if err := router.Run(addr); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("Harmonics Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  harmonics [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                    Server port (default: 8080)")
	fmt.Println("  CONTENT_DIR             Markdown post directory (default: ./content/posts)")
	fmt.Println("  TEMPLATE_DIR            HTML template directory (default: ./web/templates)")
	fmt.Println("  STATIC_DIR              Static asset directory (default: ./web/static)")
	fmt.Println("  CORS_ALLOWED_ORIGINS    Comma-separated allowed origins (default: all origins)")
	fmt.Println("  LOG_LEVEL               Set to 'debug' for verbose logging")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET /health                  Health check")
	fmt.Println("  GET /v1/harmonics/field      Evaluate a harmonic over the sphere mesh")
	fmt.Println("  GET /v1/harmonics/plot       Equirectangular PNG plot of a harmonic")
	fmt.Println("  GET /v1/harmonics/modes      List modes up to a degree")
	fmt.Println()
}
