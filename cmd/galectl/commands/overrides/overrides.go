// Package overrides implements runtime configuration override subcommands.
package overrides

import (
	"github.com/spf13/cobra"
)

// Cmd is the overrides subcommand.
var Cmd = &cobra.Command{
	Use:   "overrides",
	Short: "Runtime configuration override management",
	Long: `Manage the worker's runtime configuration overrides.

Overrides are string key-value pairs read by the worker at runtime.
They are held in memory only: pausing the scheduler clears all of them.

Subcommands:
  list  List all overrides
  get   Read one override
  set   Write one override`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(getCmd)
	Cmd.AddCommand(setCmd)
}
