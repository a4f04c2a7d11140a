package overrides

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/windtunnel-io/gale/cmd/galectl/cmdutil"
	"github.com/windtunnel-io/gale/internal/cli/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all overrides",
	Long: `List all runtime configuration overrides on the worker.

Examples:
  # List as table
  galectl overrides list

  # List as JSON
  galectl overrides list -o json`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	client := cmdutil.GetClient()

	all, err := client.ListOverrides()
	if err != nil {
		return fmt.Errorf("failed to list overrides: %w", err)
	}

	table := output.NewTableData("KEY", "VALUE")
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		table.AddRow(k, all[k])
	}

	return cmdutil.PrintOutput(os.Stdout, all, len(all) == 0, "No overrides set.", table)
}
