package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/metric"

	"github.com/dannymato/ticket-generator/internal/config"
	"github.com/dannymato/ticket-generator/internal/metrics"
	tickethttp "github.com/dannymato/ticket-generator/internal/ticket/http"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates the API server with its routes and middleware. The meter
// provider is optional; pass nil to skip HTTP metrics instrumentation.
func NewServer(
	cfg *config.Config,
	runHandler *tickethttp.RunHandler,
	meterProvider metric.MeterProvider,
	logger *slog.Logger,
) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if meterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(meterProvider, cfg.MetricsNamespace))
	}

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.GET("/health", healthHandler)

	v1 := router.Group("/v1")
	{
		submitHandlers := []gin.HandlerFunc{}
		if cfg.RateLimitEnabled {
			submitHandlers = append(
				submitHandlers,
				RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, logger),
			)
		}
		submitHandlers = append(submitHandlers, runHandler.SubmitHandler)

		v1.POST("/runs", submitHandlers...)
		v1.GET("/runs/last", runHandler.LastRunHandler)
		v1.GET("/alphabet", runHandler.AlphabetHandler)
	}

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
