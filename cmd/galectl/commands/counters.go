package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/windtunnel-io/gale/cmd/galectl/cmdutil"
	"github.com/windtunnel-io/gale/internal/cli/output"
)

var countersCmd = &cobra.Command{
	Use:   "counters",
	Short: "Show worker counters",
	Long: `Display the worker's flat counters snapshot.

Counters cover both scheduler activity (requests issued, throttled
ticks) and control API activity (pauses, resumes, rate changes).
Counters are empty when the worker runs with metrics disabled.

Examples:
  # Show counters as a table
  galectl counters

  # Show counters as JSON
  galectl counters -o json`,
	RunE: runCounters,
}

func runCounters(cmd *cobra.Command, args []string) error {
	client := cmdutil.GetClient()

	counters, err := client.GetCounters()
	if err != nil {
		return fmt.Errorf("failed to get counters: %w", err)
	}

	table := output.NewTableData("COUNTER", "VALUE")
	keys := make([]string, 0, len(counters))
	for k := range counters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		table.AddRow(k, fmt.Sprintf("%d", counters[k]))
	}

	return cmdutil.PrintOutput(os.Stdout, counters, len(counters) == 0,
		"No counters available (metrics may be disabled on the worker).", table)
}
