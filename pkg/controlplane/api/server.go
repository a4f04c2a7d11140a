// Package api implements the control API HTTP server of the gale daemon.
package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/windtunnel-io/gale/internal/logger"
	"github.com/windtunnel-io/gale/pkg/controlplane/api/handlers"
)

// Server provides the HTTP server for the control API.
//
// Endpoints:
//   - GET /health: Liveness probe
//   - GET /health/ready: Readiness probe
//   - GET /metrics: Prometheus exposition
//   - GET /api/v1/status: Service status
//   - GET /api/v1/counters: Flat counters snapshot
//   - /api/v1/scheduler/*: Pause, resume, rate and concurrency control
//   - /api/v1/overrides/*: Runtime configuration overrides
//
// The server supports graceful shutdown with configurable timeout.
type Server struct {
	server       *http.Server
	svc          handlers.ControlService
	config       APIConfig
	shutdownOnce sync.Once
}

// NewServer creates a new control API HTTP server.
//
// The server is created in a stopped state. Call Start() to begin
// serving requests.
func NewServer(config APIConfig, svc handlers.ControlService) *Server {
	config.applyDefaults()

	router := NewRouter(svc)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.Port),
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return &Server{
		server: server,
		svc:    svc,
		config: config,
	}
}

// Start starts the control API HTTP server and blocks until the context
// is cancelled or an error occurs.
//
// When the context is cancelled, Start initiates graceful shutdown and
// returns nil on success.
func (s *Server) Start(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		logger.Info("Control API listening", "port", s.config.Port)
		logger.Debug("Control API endpoints available",
			"health", fmt.Sprintf("http://localhost:%d/health", s.config.Port),
			"status", fmt.Sprintf("http://localhost:%d/api/v1/status", s.config.Port),
			"metrics", fmt.Sprintf("http://localhost:%d/metrics", s.config.Port),
		)

		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			select {
			case errChan <- err:
			default:
				// Context was cancelled, error is not needed
			}
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Control API shutdown signal received")
		// Don't use the cancelled ctx: it would abort the drain immediately.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		return s.Stop(shutdownCtx)
	case err := <-errChan:
		return fmt.Errorf("control API failed: %w", err)
	}
}

// Stop initiates graceful shutdown of the control API server.
//
// Stop is safe to call multiple times and safe to call concurrently
// with Start().
func (s *Server) Stop(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		logger.Debug("Control API shutdown initiated")

		if err := s.server.Shutdown(ctx); err != nil {
			shutdownErr = fmt.Errorf("control API shutdown error: %w", err)
			logger.Error("Control API shutdown error", "error", err)
		} else {
			logger.Info("Control API stopped gracefully")
		}
	})
	return shutdownErr
}

// Port returns the TCP port the server is configured to listen on.
func (s *Server) Port() int {
	return s.config.Port
}
