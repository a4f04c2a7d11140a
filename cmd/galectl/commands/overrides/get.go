package overrides

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/windtunnel-io/gale/cmd/galectl/cmdutil"
	"github.com/windtunnel-io/gale/internal/cli/output"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Read one override",
	Long: `Read the value of a runtime configuration override.

An absent key is not an error: the worker reports the key as not
present and the table output shows "(not set)".

Examples:
  # Read an override
  galectl overrides get target_host

  # Read as JSON
  galectl overrides get target_host -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	client := cmdutil.GetClient()

	override, err := client.GetOverride(key)
	if err != nil {
		return fmt.Errorf("failed to get override: %w", err)
	}

	format, err := cmdutil.GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, override)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, override)
	default:
		value := override.Value
		if !override.Present {
			value = "(not set)"
		}
		return output.SimpleTable(os.Stdout, [][2]string{
			{"Key", override.Key},
			{"Value", value},
			{"Present", cmdutil.BoolToYesNo(override.Present)},
		})
	}
}
