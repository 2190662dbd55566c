package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"meeting-tracker/config"
	"meeting-tracker/internal/middleware"
	"meeting-tracker/pkg/llmprovider"
	"meeting-tracker/pkg/log"
	"meeting-tracker/pkg/postgres"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	db       postgres.DB
	llm      *llmprovider.Manager
	registry *prometheus.Registry
	mw       middleware.Middleware

	healthCacheTTL time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Infrastructure
	DB       postgres.DB
	LLM      *llmprovider.Manager
	Registry *prometheus.Registry

	// Middleware inputs
	App       config.AppConfig
	RateLimit config.RateLimitConfig

	// HealthCacheTTL is how long an LLM probe result is reused.
	HealthCacheTTL time.Duration
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		db:             cfg.DB,
		llm:            cfg.LLM,
		registry:       cfg.Registry,
		mw:             middleware.New(logger, cfg.RateLimit, cfg.App),
		healthCacheTTL: cfg.HealthCacheTTL,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.llm == nil {
		return errors.New("llm manager is required")
	}
	return nil
}
