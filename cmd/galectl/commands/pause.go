package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/windtunnel-io/gale/cmd/galectl/cmdutil"
	"github.com/windtunnel-io/gale/internal/cli/prompt"
)

var pauseForce bool

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the scheduler",
	Long: `Pause the worker's load scheduler.

Pausing also clears every runtime configuration override on the worker,
so the next resume starts from a clean slate. Use --force to skip the
confirmation prompt.

Examples:
  # Pause with confirmation
  galectl pause

  # Pause without prompting
  galectl pause --force`,
	RunE: runPause,
}

func init() {
	pauseCmd.Flags().BoolVar(&pauseForce, "force", false, "Skip confirmation prompt")
}

func runPause(cmd *cobra.Command, args []string) error {
	confirmed, err := prompt.ConfirmWithForce("Pause the scheduler? This clears all runtime overrides", pauseForce)
	if err != nil {
		return cmdutil.HandleAbort(err)
	}
	if !confirmed {
		fmt.Println("Aborted.")
		return nil
	}

	client := cmdutil.GetClient()

	state, err := client.Pause()
	if err != nil {
		return fmt.Errorf("failed to pause scheduler: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(os.Stdout, state, "Scheduler paused (runtime overrides cleared)")
}
