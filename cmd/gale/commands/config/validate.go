package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/windtunnel-io/gale/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate a gale configuration file.

Loads the configuration (applying environment overrides and defaults)
and reports any validation errors.

Examples:
  # Validate the default config
  gale config validate

  # Validate a specific file
  gale config validate --config /etc/gale/config.yaml`,
	RunE: runConfigValidate,
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.MustLoad(configPath)
	if err != nil {
		return err
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("configuration is invalid: %w", err)
	}

	fmt.Println("Configuration is valid")
	return nil
}
