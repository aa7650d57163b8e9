// ABOUTME: CLI commands for viewing and editing fitpro configuration.
// ABOUTME: Backend selection, data directory, and default user.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fitpro/fitpro/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit configuration",
	Long: `View and edit the fitpro configuration.

SETTINGS:

  backend    "sqlite" (default) or "badger"
  data_dir   data directory (default ~/.local/share/fitpro)
  user       default user id when --user and FITPRO_USER are unset

EXAMPLES:

  fitpro config show
  fitpro config set-backend badger
  fitpro config set-user alice`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Backend:  %s\n", cfg.GetBackend())
		fmt.Printf("Data dir: %s\n", cfg.GetDataDir())
		if cfg.User != "" {
			fmt.Printf("User:     %s\n", cfg.User)
		}
		fmt.Printf("Config:   %s\n", config.GetConfigPath())
		return nil
	},
}

var configSetBackendCmd = &cobra.Command{
	Use:       "set-backend <backend>",
	Short:     "Set the storage backend",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"sqlite", "badger"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] != "sqlite" && args[0] != "badger" {
			return fmt.Errorf("unknown backend: %q (use sqlite or badger)", args[0])
		}

		cfg.Backend = args[0]
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Backend set to %s", args[0])
		fmt.Println("  Existing data stays in the old backend; run 'fitpro migrate' to move it.")
		return nil
	},
}

var configSetUserCmd = &cobra.Command{
	Use:   "set-user <user-id>",
	Short: "Set the default user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.User = args[0]
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Default user set to %s", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetBackendCmd)
	configCmd.AddCommand(configSetUserCmd)
	rootCmd.AddCommand(configCmd)
}
