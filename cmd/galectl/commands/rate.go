package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/windtunnel-io/gale/cmd/galectl/cmdutil"
	"github.com/windtunnel-io/gale/internal/cli/output"
	"github.com/windtunnel-io/gale/pkg/apiclient"
)

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Scheduler pacing management",
	Long: `Inspect and change the worker's request rate and concurrency cap.

Subcommands:
  get   Show current rate and concurrency cap
  set   Set the target request rate
  cap   Set the max outstanding request cap`,
}

var rateGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show current rate and concurrency cap",
	RunE:  runRateGet,
}

var rateSetCmd = &cobra.Command{
	Use:   "set <rps>",
	Short: "Set the target request rate",
	Long: `Set the scheduler's target request rate in requests per second.

The new rate takes effect on the next pacing interval. The value is
forwarded as-is; the worker applies it without range checks.

Examples:
  # Run at 500 requests per second
  galectl rate set 500`,
	Args: cobra.ExactArgs(1),
	RunE: runRateSet,
}

var rateCapCmd = &cobra.Command{
	Use:   "cap <max-outstanding>",
	Short: "Set the max outstanding request cap",
	Long: `Set the cap on concurrent in-flight requests.

Pacing ticks that would exceed the cap are skipped and counted as
throttled. The value is forwarded as-is; the worker applies it without
range checks.

Examples:
  # Allow at most 64 in-flight requests
  galectl rate cap 64`,
	Args: cobra.ExactArgs(1),
	RunE: runRateCap,
}

func init() {
	rateCmd.AddCommand(rateGetCmd)
	rateCmd.AddCommand(rateSetCmd)
	rateCmd.AddCommand(rateCapCmd)
}

func runRateGet(cmd *cobra.Command, args []string) error {
	client := cmdutil.GetClient()

	rate, err := client.GetRate()
	if err != nil {
		return fmt.Errorf("failed to get scheduler rate: %w", err)
	}

	return printRate(rate)
}

func runRateSet(cmd *cobra.Command, args []string) error {
	rps, err := parseInt32(args[0])
	if err != nil {
		return fmt.Errorf("invalid rps value %q: %w", args[0], err)
	}

	client := cmdutil.GetClient()

	rate, err := client.SetRate(rps)
	if err != nil {
		return fmt.Errorf("failed to set rate: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(os.Stdout, rate,
		fmt.Sprintf("Rate set to %d rps", rate.RPS))
}

func runRateCap(cmd *cobra.Command, args []string) error {
	n, err := parseInt32(args[0])
	if err != nil {
		return fmt.Errorf("invalid max-outstanding value %q: %w", args[0], err)
	}

	client := cmdutil.GetClient()

	rate, err := client.SetMaxOutstanding(n)
	if err != nil {
		return fmt.Errorf("failed to set max outstanding: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(os.Stdout, rate,
		fmt.Sprintf("Max outstanding set to %d", rate.MaxOutstanding))
}

func printRate(rate *apiclient.Rate) error {
	format, err := cmdutil.GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, rate)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, rate)
	default:
		return output.SimpleTable(os.Stdout, [][2]string{
			{"Scheduler", schedulerStateLabel(rate.Running)},
			{"Rate", fmt.Sprintf("%d rps", rate.RPS)},
			{"Max outstanding", fmt.Sprintf("%d", rate.MaxOutstanding)},
		})
	}
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}
