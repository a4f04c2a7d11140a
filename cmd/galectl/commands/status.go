package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/windtunnel-io/gale/cmd/galectl/cmdutil"
	"github.com/windtunnel-io/gale/internal/cli/output"
	"github.com/windtunnel-io/gale/internal/cli/timeutil"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show worker status",
	Long: `Display the worker's service status, phase, and uptime.

Examples:
  # Show status as a table
  galectl status

  # Show status as JSON
  galectl status -o json

  # Query a remote worker
  galectl status --server http://worker-3:8080`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	client := cmdutil.GetClient()

	st, err := client.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get worker status: %w", err)
	}

	rate, err := client.GetRate()
	if err != nil {
		return fmt.Errorf("failed to get scheduler rate: %w", err)
	}

	format, err := cmdutil.GetOutputFormatParsed()
	if err != nil {
		return err
	}

	combined := struct {
		Status         string `json:"status" yaml:"status"`
		Phase          string `json:"phase" yaml:"phase"`
		InstanceID     string `json:"instance_id" yaml:"instance_id"`
		AliveSince     int64  `json:"alive_since" yaml:"alive_since"`
		UptimeSeconds  int64  `json:"uptime_seconds" yaml:"uptime_seconds"`
		Running        bool   `json:"running" yaml:"running"`
		RPS            int32  `json:"rps" yaml:"rps"`
		MaxOutstanding int32  `json:"max_outstanding" yaml:"max_outstanding"`
	}{
		Status:         st.StatusName,
		Phase:          st.Phase,
		InstanceID:     st.InstanceID,
		AliveSince:     st.AliveSince,
		UptimeSeconds:  st.UptimeSeconds,
		Running:        rate.Running,
		RPS:            rate.RPS,
		MaxOutstanding: rate.MaxOutstanding,
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, combined)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, combined)
	default:
		uptime := (time.Duration(st.UptimeSeconds) * time.Second).String()
		return output.SimpleTable(os.Stdout, [][2]string{
			{"Status", st.StatusName},
			{"Phase", st.Phase},
			{"Instance", st.InstanceID},
			{"Started", timeutil.FormatUnix(st.AliveSince)},
			{"Uptime", timeutil.FormatUptime(uptime)},
			{"Scheduler", schedulerStateLabel(rate.Running)},
			{"Rate", fmt.Sprintf("%d rps", rate.RPS)},
			{"Max outstanding", fmt.Sprintf("%d", rate.MaxOutstanding)},
		})
	}
}

func schedulerStateLabel(running bool) string {
	if running {
		return "running"
	}
	return "paused"
}
