// Package server provides HTTP server implementation for the InduSign API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/agentstation/utc"
	"github.com/rs/zerolog"

	"github.com/indusign/indusign/internal/server/handlers"
	"github.com/indusign/indusign/internal/server/middleware"
	"github.com/indusign/indusign/pkg/logging"
	"github.com/indusign/indusign/pkg/service"
)

// MetricsNamespace prefixes every exported Prometheus series.
const MetricsNamespace = "indusign"

// Server holds the HTTP server state and dependencies.
type Server struct {
	meta      service.Metadata
	config    Config
	logger    *zerolog.Logger
	handlers  *handlers.Handlers
	metrics   *middleware.Metrics
	limiter   *middleware.RateLimiter
	handler   http.Handler
	ctx       context.Context
	cancel    context.CancelFunc
	startTime utc.Time
}

// New creates a new server instance for meta with the given configuration.
func New(meta service.Metadata, cfg Config, logger *zerolog.Logger) (*Server, error) {
	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("invalid service metadata: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(logging.WithLogger(context.Background(), logger))
	ctx = logging.WithComponent(ctx, "server")
	logger = logging.FromContext(ctx)

	logger.Debug().
		Str("service", meta.ServiceID).
		Str("version", meta.Version).
		Msg("Creating new server instance")

	h, err := handlers.New(meta, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("creating handlers: %w", err)
	}

	s := &Server{
		meta:      meta,
		config:    cfg,
		logger:    logger,
		handlers:  h,
		ctx:       ctx,
		cancel:    cancel,
		startTime: utc.Now(),
	}

	if cfg.MetricsEnabled {
		s.metrics = middleware.NewMetrics(MetricsNamespace)
	}
	if cfg.RateLimit > 0 {
		s.limiter = middleware.NewRateLimiter(cfg.RateLimit, logger, cfg.TrustProxy)
	}

	cors := cfg.CORS()
	if cors.WildcardWithCredentials() {
		logger.Warn().
			Strs("origins", cors.AllowedOrigins).
			Msg("CORS allows any origin with credentials; credentialed requests will have their origin echoed")
	}

	s.handler = s.setupRouter()

	logger.Debug().Msg("Server instance created successfully")
	return s, nil
}

// Start starts background services (rate limiter cleanup).
func (s *Server) Start() {
	if s.limiter != nil {
		s.logger.Debug().Msg("Starting rate limiter cleanup")
		go s.limiter.Run(s.ctx)
	}
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Shutdown stops background services and reports how long the server ran.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()

	s.logger.Info().
		Dur("uptime", s.Uptime()).
		Msg("Server background services stopped")

	return ctx.Err()
}

// Config returns the configuration the server was built with.
func (s *Server) Config() Config {
	return s.config
}

// Metadata returns the service metadata served by the handlers.
func (s *Server) Metadata() service.Metadata {
	return s.meta
}

// Metrics returns the request metrics, or nil when disabled.
func (s *Server) Metrics() *middleware.Metrics {
	return s.metrics
}

// StartTime returns the server start time for uptime calculations.
func (s *Server) StartTime() time.Time {
	return s.startTime.Time
}

// Uptime returns how long the server has been running.
func (s *Server) Uptime() time.Duration {
	return time.Since(s.startTime.Time)
}
