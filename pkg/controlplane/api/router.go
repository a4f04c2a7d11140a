package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/windtunnel-io/gale/internal/logger"
	"github.com/windtunnel-io/gale/pkg/controlplane/api/handlers"
	"github.com/windtunnel-io/gale/pkg/metrics"
)

// NewRouter creates and configures the chi router with all middleware
// and routes.
//
// The router is configured with:
//   - Request ID middleware for request tracking
//   - Real IP extraction for proper client identification
//   - Custom request logging using the internal logger
//   - Panic recovery to prevent server crashes
//   - Request timeout to prevent hung requests
//
// Routes:
//   - GET /health - Liveness probe
//   - GET /health/ready - Readiness probe
//   - GET /metrics - Prometheus exposition (404 when metrics disabled)
//   - GET /api/v1/status - Service status and uptime
//   - GET /api/v1/counters - Flat counters snapshot
//   - POST /api/v1/scheduler/pause - Pause the scheduler, clear overrides
//   - POST /api/v1/scheduler/resume - Resume, optionally assigning a phase
//   - GET /api/v1/scheduler/rate - Current pacing state
//   - PUT /api/v1/scheduler/rate - Set target request rate
//   - PUT /api/v1/scheduler/max-outstanding - Set in-flight request cap
//   - GET /api/v1/overrides - List runtime configuration overrides
//   - GET /api/v1/overrides/{key} - Read one override
//   - PUT /api/v1/overrides/{key} - Write one override
func NewRouter(svc handlers.ControlService) http.Handler {
	r := chi.NewRouter()

	// Middleware stack - order matters
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	healthHandler := handlers.NewHealthHandler(svc)
	statusHandler := handlers.NewStatusHandler(svc)
	schedulerHandler := handlers.NewSchedulerHandler(svc)
	overridesHandler := handlers.NewOverridesHandler(svc)
	countersHandler := handlers.NewCountersHandler(svc)

	// Health routes
	r.Route("/health", func(r chi.Router) {
		r.Get("/", healthHandler.Liveness)
		r.Get("/ready", healthHandler.Readiness)
	})

	// Prometheus exposition
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Root redirect to health for convenience
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/health", http.StatusTemporaryRedirect)
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", statusHandler.Get)
		r.Get("/counters", countersHandler.List)

		r.Route("/scheduler", func(r chi.Router) {
			r.Post("/pause", schedulerHandler.Pause)
			r.Post("/resume", schedulerHandler.Resume)
			r.Get("/rate", schedulerHandler.GetRate)
			r.Put("/rate", schedulerHandler.SetRate)
			r.Put("/max-outstanding", schedulerHandler.SetMaxOutstanding)
		})

		r.Route("/overrides", func(r chi.Router) {
			r.Get("/", overridesHandler.List)
			r.Get("/{key}", overridesHandler.Get)
			r.Put("/{key}", overridesHandler.Set)
		})
	})

	return r
}

// isHealthPath returns true if the request path is a healthcheck endpoint.
func isHealthPath(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/health/") || path == "/metrics"
}

// requestLogger is a custom middleware that logs requests using the
// internal logger.
//
// It logs:
//   - Request start (DEBUG level): method, path, remote addr
//   - Request completion (INFO level): method, path, status, duration
//   - Healthcheck and metrics scrapes are logged at DEBUG to reduce noise
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := middleware.GetReqID(r.Context())

		logger.Debug("API request started",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)

		// Wrap response writer to capture status code
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)

		logArgs := []any{
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", duration.String(),
		}

		// Log healthcheck requests at DEBUG to avoid polluting logs in k8s
		if isHealthPath(r.URL.Path) {
			logger.Debug("API request completed", logArgs...)
		} else {
			logger.Info("API request completed", logArgs...)
		}
	})
}
