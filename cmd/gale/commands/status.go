package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/windtunnel-io/gale/internal/cli/output"
	"github.com/windtunnel-io/gale/internal/cli/timeutil"
	"github.com/windtunnel-io/gale/pkg/apiclient"
)

var (
	statusOutput  string
	statusPidFile string
	statusAPIPort int
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show worker status",
	Long: `Display the current status of the gale worker.

This command checks the worker by calling the control API status endpoint
and displays service status, phase, uptime, and instance information.

Examples:
  # Check status (uses default settings)
  gale status

  # Check status with custom API port
  gale status --api-port 9080

  # Output as JSON
  gale status --output json`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusPidFile, "pid-file", "", "Path to PID file (default: $XDG_STATE_HOME/gale/gale.pid)")
	statusCmd.Flags().IntVar(&statusAPIPort, "api-port", 8080, "Control API port")
	statusCmd.Flags().StringVarP(&statusOutput, "output", "o", "table", "Output format (table|json|yaml)")
}

// WorkerStatus represents the worker status information.
type WorkerStatus struct {
	Running    bool   `json:"running" yaml:"running"`
	PID        int    `json:"pid,omitempty" yaml:"pid,omitempty"`
	Message    string `json:"message" yaml:"message"`
	Status     string `json:"status,omitempty" yaml:"status,omitempty"`
	Phase      string `json:"phase,omitempty" yaml:"phase,omitempty"`
	InstanceID string `json:"instance_id,omitempty" yaml:"instance_id,omitempty"`
	AliveSince string `json:"alive_since,omitempty" yaml:"alive_since,omitempty"`
	Uptime     string `json:"uptime,omitempty" yaml:"uptime,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(statusOutput)
	if err != nil {
		return err
	}

	ws := WorkerStatus{
		Running: false,
		Message: "Worker is not running",
	}

	// Use default PID file if not specified
	pidPath := statusPidFile
	if pidPath == "" {
		pidPath = GetDefaultPidFile()
	}

	// Check PID file first
	pidData, err := os.ReadFile(pidPath)
	if err == nil {
		pid, err := strconv.Atoi(strings.TrimSpace(string(pidData)))
		if err == nil {
			// On Unix, FindProcess always succeeds; signal 0 checks liveness
			process, err := os.FindProcess(pid)
			if err == nil {
				if err := process.Signal(syscall.Signal(0)); err == nil {
					ws.Running = true
					ws.PID = pid
				}
			}
		}
	}

	// Query the control API (works for both daemon and foreground mode)
	client := apiclient.New(fmt.Sprintf("http://localhost:%d", statusAPIPort)).
		WithTimeout(2 * time.Second)

	st, err := client.GetStatus()
	if err == nil {
		ws.Running = true
		ws.Status = st.StatusName
		ws.Phase = st.Phase
		ws.InstanceID = st.InstanceID
		ws.AliveSince = time.Unix(st.AliveSince, 0).Format(time.RFC3339)
		ws.Uptime = (time.Duration(st.UptimeSeconds) * time.Second).String()
		if st.StatusName == "ALIVE" {
			ws.Message = "Worker is running and alive"
		} else {
			ws.Message = fmt.Sprintf("Worker is running with status %s", st.StatusName)
		}
	} else if ws.Running {
		// PID file says running but the control API did not answer
		ws.Message = "Worker process exists but control API is unreachable"
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, ws)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, ws)
	default:
		printStatusTable(ws)
	}

	return nil
}

func printStatusTable(ws WorkerStatus) {
	fmt.Println()
	fmt.Println("gale Worker Status")
	fmt.Println("==================")
	fmt.Println()

	if ws.Running {
		if ws.Status == "ALIVE" {
			fmt.Printf("  Status:      \033[32m● %s\033[0m\n", ws.Status)
		} else if ws.Status != "" {
			fmt.Printf("  Status:      \033[33m● %s\033[0m\n", ws.Status)
		} else {
			fmt.Printf("  Status:      \033[33m● Running\033[0m\n")
		}
		if ws.PID != 0 {
			fmt.Printf("  PID:         %d\n", ws.PID)
		}
		if ws.Phase != "" {
			fmt.Printf("  Phase:       %s\n", ws.Phase)
		}
		if ws.InstanceID != "" {
			fmt.Printf("  Instance:    %s\n", ws.InstanceID)
		}
		if ws.AliveSince != "" {
			fmt.Printf("  Started:     %s\n", timeutil.FormatTime(ws.AliveSince))
		}
		if ws.Uptime != "" {
			fmt.Printf("  Uptime:      %s\n", timeutil.FormatUptime(ws.Uptime))
		}
	} else {
		fmt.Printf("  Status:      \033[31m○ Stopped\033[0m\n")
	}

	fmt.Println()
	fmt.Printf("  %s\n", ws.Message)
	fmt.Println()
}
