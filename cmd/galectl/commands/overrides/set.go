package overrides

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/windtunnel-io/gale/cmd/galectl/cmdutil"
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write one override",
	Long: `Write a runtime configuration override, overwriting any existing value.

Examples:
  # Point the worker at a different host
  galectl overrides set target_host 10.0.0.5

  # Set a numeric tunable
  galectl overrides set batch_size 32`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	client := cmdutil.GetClient()

	override, err := client.SetOverride(key, value)
	if err != nil {
		return fmt.Errorf("failed to set override: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(os.Stdout, override,
		fmt.Sprintf("Override '%s' set to '%s'", override.Key, override.Value))
}
