package controlplane

import (
	"context"
	"fmt"
	"sync"

	"github.com/windtunnel-io/gale/internal/logger"
	"github.com/windtunnel-io/gale/pkg/controlplane/api"
	"github.com/windtunnel-io/gale/pkg/controlplane/registry"
	"github.com/windtunnel-io/gale/pkg/metrics"
	"github.com/windtunnel-io/gale/pkg/scheduler"
)

// Options configures Bootstrap.
type Options struct {
	// API configures the control API HTTP server.
	API api.APIConfig
}

// Handle owns a bootstrapped control plane: the installed Service and
// the running API server. Close tears both down in order.
type Handle struct {
	service   *Service
	apiServer *api.Server

	serverDone chan error
	cancel     context.CancelFunc
	closeOnce  sync.Once
}

// Bootstrap wires up the control plane: it creates the Service facade
// around sched, installs it as the process-wide instance, and starts the
// control API server on a background goroutine.
//
// Bootstrap fails if a control service is already installed in this
// process; the existing instance is left untouched. Call Close on the
// returned Handle to shut down.
func Bootstrap(opts Options, sched scheduler.Scheduler) (*Handle, error) {
	svc := NewService(sched, metrics.NewControlMetrics())

	if err := registry.Install(svc); err != nil {
		return nil, fmt.Errorf("failed to install control service: %w", err)
	}

	server := api.NewServer(opts.API, svc)

	serveCtx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Start(serveCtx)
	}()

	logger.Info("Control plane started",
		"instance_id", svc.InstanceID(), "port", server.Port())

	return &Handle{
		service:    svc,
		apiServer:  server,
		serverDone: done,
		cancel:     cancel,
	}, nil
}

// Service returns the installed control service.
func (h *Handle) Service() *Service {
	return h.service
}

// APIServer returns the control API server.
func (h *Handle) APIServer() *api.Server {
	return h.apiServer
}

// Close stops the API server and waits for its serving goroutine to
// exit before returning. Stopping strictly precedes joining so no
// request can arrive on a torn-down service. Close is idempotent.
func (h *Handle) Close(ctx context.Context) error {
	var closeErr error
	h.closeOnce.Do(func() {
		if err := h.apiServer.Stop(ctx); err != nil {
			closeErr = err
		}
		h.cancel()

		select {
		case err := <-h.serverDone:
			if closeErr == nil && err != nil {
				closeErr = err
			}
		case <-ctx.Done():
			closeErr = fmt.Errorf("timed out waiting for control API to exit: %w", ctx.Err())
		}

		logger.Info("Control plane stopped")
	})
	return closeErr
}
