package main

import (
	"log"
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/praxiotech/resto-insights/pkg/config"
	"github.com/praxiotech/resto-insights/pkg/handlers"
	"github.com/praxiotech/resto-insights/pkg/middleware"
	"github.com/praxiotech/resto-insights/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("restaurants_path", cfg.RestaurantsPath),
		zap.String("reviews_path", cfg.ReviewsPath),
		zap.Uint64("fallback_seed", cfg.FallbackSeed))

	datasets := services.NewDatasetService(cfg.FallbackSeed, logger)
	dataset, err := datasets.Load(cfg.RestaurantsPath, cfg.ReviewsPath)
	if err != nil {
		logger.Fatal("Failed to load dataset", zap.Error(err))
	}

	scoring := services.NewScoringEngine(cfg.FallbackSeed, logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewAnalysisHandler(dataset, scoring, logger).RegisterRoutes(mux)

	addr := net.JoinHostPort(cfg.BindAddr, cfg.Port)
	logger.Info("Starting resto-insights",
		zap.String("addr", addr),
		zap.String("version", cfg.Version),
		zap.String("dataset_id", dataset.ID.String()))

	if err := http.ListenAndServe(addr, middleware.RequestLogger(logger)(mux)); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
