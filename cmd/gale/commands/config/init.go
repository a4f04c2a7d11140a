package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/windtunnel-io/gale/pkg/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a sample configuration file",
	Long: `Initialize a sample gale configuration file.

By default, the configuration file is created at $XDG_CONFIG_HOME/gale/config.yaml.
Use --config to specify a custom path.

Examples:
  # Initialize with default location
  gale config init

  # Initialize with custom path
  gale config init --config /etc/gale/config.yaml

  # Force overwrite existing config
  gale config init --force`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Force overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	// Get config path from parent's persistent flag
	configFile, _ := cmd.Flags().GetString("config")

	var configPath string
	var err error

	if configFile != "" {
		// Use custom path
		err = config.InitConfigToPath(configFile, initForce)
		configPath = configFile
	} else {
		// Use default path
		configPath, err = config.InitConfig(initForce)
	}

	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	fmt.Printf("Configuration file created at: %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit the configuration file to set your load target")
	fmt.Println("  2. Start the worker with: gale start")
	fmt.Printf("  3. Or specify custom config: gale start --config %s\n", configPath)

	return nil
}
