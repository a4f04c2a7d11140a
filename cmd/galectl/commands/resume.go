package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/windtunnel-io/gale/cmd/galectl/cmdutil"
	"github.com/windtunnel-io/gale/pkg/apiclient"
)

var resumePhase string

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume the scheduler",
	Long: `Resume the worker's load scheduler.

With --phase, the named phase label is assigned before the scheduler
restarts. Without it, the current phase is left untouched.

Examples:
  # Resume keeping the current phase
  galectl resume

  # Resume into a named phase
  galectl resume --phase steady_state`,
	RunE: runResume,
}

func init() {
	resumeCmd.Flags().StringVar(&resumePhase, "phase", "", "Phase label to assign before resuming")
}

func runResume(cmd *cobra.Command, args []string) error {
	client := cmdutil.GetClient()

	var state *apiclient.SchedulerState
	var err error
	if cmd.Flags().Changed("phase") {
		state, err = client.ResumeWithPhase(resumePhase)
	} else {
		state, err = client.Resume()
	}
	if err != nil {
		return fmt.Errorf("failed to resume scheduler: %w", err)
	}

	msg := fmt.Sprintf("Scheduler resumed (phase: %s)", state.Phase)
	if !state.Running {
		msg = "Resume acknowledged but scheduler reports not running"
	}
	return cmdutil.PrintResourceWithSuccess(os.Stdout, state, msg)
}
