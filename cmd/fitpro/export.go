// ABOUTME: CLI commands for exporting and importing fitness data.
// ABOUTME: Supports JSON and YAML export; import restores from JSON backups.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fitpro/fitpro/internal/storage"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export fitness data",
	Long: `Export all fitness data for the acting user.

FORMATS:

  json   Full JSON export (suitable for backup/restore)
  yaml   YAML export (human-readable)

EXAMPLES:

  fitpro export json                  # Export all data as JSON
  fitpro export json -o backup.json   # Save to file
  fitpro export yaml                  # Export as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		export, err := repo.GetAllData(userID)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		var data []byte
		switch args[0] {
		case "json":
			data, err = export.ToJSON()
		case "yaml":
			data, err = export.ToYAML()
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import fitness data from a JSON backup",
	Long: `Import fitness data from a previously exported JSON file.

Records are written verbatim: IDs, timestamps, and log snapshots are
preserved. Importing the same file twice duplicates nothing on SQLite
(IDs collide) but overwrites in place on the document backend.

EXAMPLES:

  fitpro import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		export, err := storage.FromJSON(data)
		if err != nil {
			return fmt.Errorf("invalid backup file: %w", err)
		}

		if err := repo.ImportData(export); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", args[0])
		fmt.Printf("  %d workouts, %d exercises, %d logs\n",
			len(export.Workouts), len(export.Exercises), len(export.Logs))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
