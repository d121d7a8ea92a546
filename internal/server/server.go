package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/vzahanych/weather-reply/internal/assistant"
	"github.com/vzahanych/weather-reply/internal/config"
	"github.com/vzahanych/weather-reply/internal/server/handlers"
	"github.com/vzahanych/weather-reply/internal/server/middlewares"
	"github.com/vzahanych/weather-reply/pkg/telemetry"
	"go.uber.org/zap"
)

type Server struct {
	cfg       *config.Config
	engine    *gin.Engine
	server    *http.Server
	assistant *assistant.Assistant
	metrics   *handlers.MetricsHandler
	logger    *zap.Logger
	tele      *telemetry.Telemetry
}

func NewServer(cfg *config.Config, logger *zap.Logger, tele *telemetry.Telemetry) *Server {
	return NewServerWithAssistant(cfg, assistant.NewAssistant(&cfg.Weather, logger, tele), logger, tele)
}

func NewServerWithAssistant(cfg *config.Config, a *assistant.Assistant, logger *zap.Logger, tele *telemetry.Telemetry) *Server {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	// Each server owns its registry so several can coexist in one process.
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := middlewares.NewMetricsMiddleware(reg)

	engine.Use(middlewares.RequestIDMiddleware())
	engine.Use(middlewares.LoggingMiddleware(logger))
	engine.Use(middlewares.RecoveryMiddleware(logger))
	engine.Use(middlewares.TelemetryMiddleware(logger, tele))
	engine.Use(httpMetrics.Handler())

	metrics := handlers.NewMetricsHandler(reg)
	a.SetMetricsRecorder(metrics)

	s := &Server{
		cfg:       cfg,
		engine:    engine,
		assistant: a,
		metrics:   metrics,
		logger:    logger,
		tele:      tele,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	return s
}

func (s *Server) setupRoutes() {
	// Business endpoints
	s.engine.POST("/weather", handlers.NewWeatherHandler(s.assistant, s.logger).PostWeather)
	s.engine.POST("/v1/mcp", handlers.NewRPCHandler(s.assistant, s.logger).Serve)

	// Health endpoints (Kubernetes friendly)
	health := handlers.NewHealthHandler(s.cfg.Version, s.cfg.Environment, nil)
	s.engine.GET("/health", health.Health)
	s.engine.GET("/health/live", health.Liveness)
	s.engine.GET("/health/ready", health.Readiness)

	// Monitoring endpoints
	s.engine.GET("/metrics", s.metrics.ServeMetrics)

	if dir := s.cfg.Server.StaticDir; dir != "" {
		files := http.FileServer(http.Dir(dir))
		s.engine.NoRoute(func(c *gin.Context) {
			if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
				c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "Not found"})
				return
			}
			files.ServeHTTP(c.Writer, c.Request)
		})
	}
}

// Handler exposes the routed engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("Starting server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
