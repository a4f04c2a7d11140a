package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/windtunnel-io/gale/internal/logger"
	"github.com/windtunnel-io/gale/internal/telemetry"
	"github.com/windtunnel-io/gale/pkg/config"
	"github.com/windtunnel-io/gale/pkg/controlplane"
	"github.com/windtunnel-io/gale/pkg/controlplane/status"
	"github.com/windtunnel-io/gale/pkg/metrics"
	"github.com/windtunnel-io/gale/pkg/scheduler"
)

var (
	foreground bool
	pidFile    string
	logFile    string
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the gale worker",
	Long: `Start the gale load-generation worker with the specified configuration.

By default, the worker runs in the background (daemon mode). Use --foreground
to run in the foreground for debugging or when managed by a process supervisor.

Use --config to specify a custom configuration file, or it will use the
default location at $XDG_CONFIG_HOME/gale/config.yaml.

Examples:
  # Start in background (default)
  gale start

  # Start in foreground
  gale start --foreground

  # Start with custom config file
  gale start --config /etc/gale/config.yaml

  # Start with environment variable overrides
  GALE_SCHEDULER_RPS=200 gale start --foreground`,
	RunE: runStart,
}

func init() {
	startCmd.Flags().BoolVarP(&foreground, "foreground", "f", false, "Run in foreground (default: background/daemon mode)")
	startCmd.Flags().StringVar(&pidFile, "pid-file", "", "Path to PID file (default: $XDG_STATE_HOME/gale/gale.pid)")
	startCmd.Flags().StringVar(&logFile, "log-file", "", "Path to log file for daemon mode (default: $XDG_STATE_HOME/gale/gale.log)")
}

func runStart(cmd *cobra.Command, args []string) error {
	// Handle daemon mode (background)
	if !foreground {
		return startDaemon()
	}

	cfg, err := config.MustLoad(GetConfigFile())
	if err != nil {
		return err
	}

	// Initialize the structured logger
	if err := InitLogger(cfg); err != nil {
		return err
	}

	// Create cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry (if enabled)
	telemetryCfg := telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    "gale",
		ServiceVersion: Version,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		SampleRate:     cfg.Telemetry.SampleRate,
	}
	telemetryShutdown, err := telemetry.Init(ctx, telemetryCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := telemetryShutdown(ctx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}()

	// Initialize Pyroscope profiling (if enabled)
	profilingCfg := telemetry.ProfilingConfig{
		Enabled:        cfg.Telemetry.Profiling.Enabled,
		ServiceName:    "gale",
		ServiceVersion: Version,
		Endpoint:       cfg.Telemetry.Profiling.Endpoint,
		ProfileTypes:   cfg.Telemetry.Profiling.ProfileTypes,
	}
	profilingShutdown, err := telemetry.InitProfiling(profilingCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize profiling: %w", err)
	}
	defer func() {
		if err := profilingShutdown(); err != nil {
			logger.Error("profiling shutdown error", "error", err)
		}
	}()

	fmt.Println("gale - Paced load-generation worker")
	logger.Info("Log level", "level", cfg.Logging.Level, "format", cfg.Logging.Format)
	logger.Info("Configuration loaded", "source", getConfigSource(GetConfigFile()))
	if telemetry.IsEnabled() {
		logger.Info("Telemetry enabled", "endpoint", cfg.Telemetry.Endpoint, "sample_rate", cfg.Telemetry.SampleRate)
	} else {
		logger.Info("Telemetry disabled")
	}
	if telemetry.IsProfilingEnabled() {
		logger.Info("Profiling enabled", "endpoint", cfg.Telemetry.Profiling.Endpoint, "profile_types", cfg.Telemetry.Profiling.ProfileTypes)
	} else {
		logger.Info("Profiling disabled")
	}

	// Initialize metrics (if enabled)
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		logger.Info("Metrics enabled", "endpoint", "/metrics")
	} else {
		logger.Info("Metrics collection disabled")
	}

	// Build the load scheduler
	runner := scheduler.NewRunner(scheduler.RunnerConfig{
		RPS:            cfg.Scheduler.RPS,
		MaxOutstanding: cfg.Scheduler.MaxOutstanding,
		Phase:          cfg.Scheduler.Phase,
		StartPaused:    cfg.Scheduler.StartPaused,
	}, newTargetRequestFunc(cfg.Scheduler.Target), metrics.NewSchedulerMetrics())

	if cfg.Scheduler.Target.URL == "" {
		logger.Info("No target configured, running dry")
	} else {
		logger.Info("Target configured",
			"url", cfg.Scheduler.Target.URL,
			"method", cfg.Scheduler.Target.Method,
			"timeout", cfg.Scheduler.Target.Timeout)
	}

	// Bootstrap the control plane: service facade, process-wide install,
	// control API server.
	handle, err := controlplane.Bootstrap(controlplane.Options{API: cfg.ControlPlane}, runner)
	if err != nil {
		return err
	}
	handle.Service().SetStatus(status.Starting)

	// Write PID file if specified
	if pidFile != "" {
		if err := os.WriteFile(pidFile, []byte(fmt.Sprintf("%d", os.Getpid())), 0644); err != nil {
			return fmt.Errorf("failed to write PID file: %w", err)
		}
		defer func() { _ = os.Remove(pidFile) }()
	}

	// Start the scheduler loop in background
	schedDone := make(chan error, 1)
	go func() {
		schedDone <- runner.Run(ctx)
	}()

	handle.Service().SetStatus(status.Alive)

	// Wait for interrupt signal or scheduler exit
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Worker is running. Press Ctrl+C to stop.")

	select {
	case <-sigChan:
		signal.Stop(sigChan)
		logger.Info("Shutdown signal received, initiating graceful shutdown")
	case err := <-schedDone:
		signal.Stop(sigChan)
		if err != nil && err != context.Canceled {
			logger.Error("Scheduler error", "error", err)
		}
		schedDone = nil
	}

	handle.Service().SetStatus(status.Stopping)
	cancel()

	// Wait for the scheduler to drain outstanding requests
	if schedDone != nil {
		if err := <-schedDone; err != nil && err != context.Canceled {
			logger.Error("Scheduler shutdown error", "error", err)
		}
	}

	// Stop the control API last so status stays observable during drain
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	handle.Service().SetStatus(status.Stopped)
	if err := handle.Close(shutdownCtx); err != nil {
		logger.Error("Control plane shutdown error", "error", err)
		return err
	}

	logger.Info("Worker stopped gracefully")
	return nil
}

// newTargetRequestFunc builds the request function issued on each pacing
// tick. An empty target URL yields a no-op function (dry run).
func newTargetRequestFunc(target config.TargetConfig) scheduler.RequestFunc {
	if target.URL == "" {
		return nil
	}

	client := &http.Client{Timeout: target.Timeout}
	method := target.Method
	if method == "" {
		method = http.MethodGet
	}

	return func(ctx context.Context) {
		req, err := http.NewRequestWithContext(ctx, method, target.URL, nil)
		if err != nil {
			logger.Warn("Failed to build target request", "error", err)
			return
		}
		resp, err := client.Do(req)
		if err != nil {
			logger.Debug("Target request failed", "error", err)
			return
		}
		_ = resp.Body.Close()
	}
}

// getConfigSource returns a description of where the config was loaded from.
func getConfigSource(configFile string) string {
	if configFile != "" {
		return configFile
	}
	if config.DefaultConfigExists() {
		return config.GetDefaultConfigPath()
	}
	return "defaults"
}

// startDaemon starts the worker as a background daemon process.
func startDaemon() error {
	stateDir := GetDefaultStateDir()

	// Create state directory if it doesn't exist
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	// Set default PID file if not specified
	pidPath := pidFile
	if pidPath == "" {
		pidPath = filepath.Join(stateDir, "gale.pid")
	}

	// Check if already running
	if _, err := os.Stat(pidPath); err == nil {
		pidData, err := os.ReadFile(pidPath)
		if err == nil {
			var pid int
			if _, err := fmt.Sscanf(string(pidData), "%d", &pid); err == nil {
				// Check if process is still running
				if process, err := os.FindProcess(pid); err == nil {
					if err := process.Signal(syscall.Signal(0)); err == nil {
						return fmt.Errorf("gale is already running (PID %d)\nUse 'gale stop' to stop the running instance", pid)
					}
				}
			}
		}
		// Stale PID file, remove it
		_ = os.Remove(pidPath)
	}

	// Set default log file if not specified
	logPath := logFile
	if logPath == "" {
		logPath = filepath.Join(stateDir, "gale.log")
	}

	// Get the executable path
	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}

	// Build arguments for the daemon process
	daemonArgs := []string{"start", "--foreground", "--pid-file", pidPath}
	if GetConfigFile() != "" {
		daemonArgs = append(daemonArgs, "--config", GetConfigFile())
	}

	// Create the daemon process
	cmd := exec.Command(executable, daemonArgs...)

	// Open log file for stdout/stderr
	logFileHandle, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	cmd.Stdout = logFileHandle
	cmd.Stderr = logFileHandle

	// Detach from parent process
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}

	// Start the daemon
	if err := cmd.Start(); err != nil {
		_ = logFileHandle.Close()
		return fmt.Errorf("failed to start daemon: %w", err)
	}

	_ = logFileHandle.Close()

	fmt.Printf("gale started in background (PID %d)\n", cmd.Process.Pid)
	fmt.Printf("  PID file: %s\n", pidPath)
	fmt.Printf("  Log file: %s\n", logPath)
	fmt.Println("\nUse 'gale stop' to stop the worker")
	fmt.Println("Use 'gale status' to check worker status")

	return nil
}
