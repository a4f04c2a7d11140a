package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	stopPidFile string
	stopTimeout time.Duration
	stopForce   bool
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the gale worker",
	Long: `Stop a gale worker started in daemon mode.

The worker's PID is read from the PID file and the process receives
SIGTERM for a graceful shutdown. Use --force to send SIGKILL if the
worker does not exit within the timeout.

Examples:
  # Stop the worker
  gale stop

  # Stop with a longer shutdown grace period
  gale stop --timeout 60s

  # Kill the worker if graceful shutdown times out
  gale stop --force`,
	RunE: runStop,
}

func init() {
	stopCmd.Flags().StringVar(&stopPidFile, "pid-file", "", "Path to PID file (default: $XDG_STATE_HOME/gale/gale.pid)")
	stopCmd.Flags().DurationVar(&stopTimeout, "timeout", 30*time.Second, "Time to wait for graceful shutdown")
	stopCmd.Flags().BoolVar(&stopForce, "force", false, "Send SIGKILL if graceful shutdown times out")
}

func runStop(cmd *cobra.Command, args []string) error {
	pidPath := stopPidFile
	if pidPath == "" {
		pidPath = GetDefaultPidFile()
	}

	pidData, err := os.ReadFile(pidPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("gale does not appear to be running (no PID file at %s)", pidPath)
		}
		return fmt.Errorf("failed to read PID file: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(pidData)))
	if err != nil {
		return fmt.Errorf("invalid PID file %s: %w", pidPath, err)
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process %d: %w", pid, err)
	}

	// Signal 0 checks the process exists before we try to stop it
	if err := process.Signal(syscall.Signal(0)); err != nil {
		_ = os.Remove(pidPath)
		return fmt.Errorf("gale is not running (stale PID file removed)")
	}

	fmt.Printf("Stopping gale (PID %d)...\n", pid)
	if err := process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to signal process %d: %w", pid, err)
	}

	// Poll until the process exits or the timeout expires
	deadline := time.Now().Add(stopTimeout)
	for time.Now().Before(deadline) {
		if err := process.Signal(syscall.Signal(0)); err != nil {
			fmt.Println("gale stopped")
			return nil
		}
		time.Sleep(200 * time.Millisecond)
	}

	if !stopForce {
		return fmt.Errorf("gale did not stop within %s (use --force to kill)", stopTimeout)
	}

	fmt.Printf("Graceful shutdown timed out, killing PID %d\n", pid)
	if err := process.Signal(syscall.SIGKILL); err != nil {
		return fmt.Errorf("failed to kill process %d: %w", pid, err)
	}
	_ = os.Remove(pidPath)

	fmt.Println("gale killed")
	return nil
}
