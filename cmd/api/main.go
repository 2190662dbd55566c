package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"meeting-tracker/config"
	_ "meeting-tracker/docs" // Swagger docs
	"meeting-tracker/internal/httpserver"
	"meeting-tracker/pkg/llmprovider"
	"meeting-tracker/pkg/log"
	"meeting-tracker/pkg/postgres"
)

// @title       Meeting Action Item Tracker API
// @description Extracts action items from meeting transcripts with an LLM provider failover chain.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Meeting Action Item Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.URL); err != nil {
			logger.Error(ctx, "Failed to run migrations: ", err)
			return
		}
		logger.Info(ctx, "Database migrations applied")
	}

	pool, err := postgres.Connect(ctx, postgres.Config{
		URL:            cfg.Database.URL,
		MaxConns:       cfg.Database.MaxConns,
		ConnectTimeout: cfg.Database.ConnectTimeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to database: ", err)
		return
	}
	defer pool.Close()

	// 4. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// 5. LLM provider chain
	manager, err := llmprovider.NewFromConfig(cfg, llmprovider.NewMetrics(registry), logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	for _, p := range manager.Providers() {
		if _, ok := config.LookupEnv(p.APIKeyEnv); !ok {
			logger.Warnf(ctx, "LLM provider %s has no API key (%s); it will be skipped", p.Name, p.APIKeyEnv)
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		DB:             pool,
		LLM:            manager,
		Registry:       registry,
		App:            cfg.App,
		RateLimit:      cfg.RateLimit,
		HealthCacheTTL: cfg.LLM.HealthCacheTTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
