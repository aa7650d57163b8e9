// ABOUTME: CLI command for migrating data between storage backends.
// ABOUTME: Opens both backends explicitly, bypassing the configured default.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fitpro/fitpro/internal/config"
	"github.com/fitpro/fitpro/internal/storage"
)

var (
	migrateFrom string
	migrateTo   string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate data between storage backends",
	Long: `Copy all data for the acting user from one backend to the other.

Both backends live under the configured data directory; migration reads
everything from the source and writes it verbatim into the destination.
The source is left untouched.

USAGE:

  fitpro migrate --from sqlite --to badger
  fitpro migrate --from badger --to sqlite

AFTER MIGRATION:

  Point the config at the new backend:
    fitpro config set-backend badger`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateFrom == migrateTo {
			return fmt.Errorf("--from and --to must differ")
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		userID, err := currentUser()
		if err != nil {
			return err
		}

		src, err := openBackend(cfg, migrateFrom)
		if err != nil {
			return fmt.Errorf("failed to open source: %w", err)
		}
		defer func() { _ = src.Close() }()

		dst, err := openBackend(cfg, migrateTo)
		if err != nil {
			return fmt.Errorf("failed to open destination: %w", err)
		}
		defer func() { _ = dst.Close() }()

		summary, err := storage.MigrateData(src, dst, userID)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated %s → %s", migrateFrom, migrateTo)
		fmt.Printf("  %d workouts, %d exercises, %d assignments\n",
			summary.Workouts, summary.Exercises, summary.Assigned)
		fmt.Printf("  %d sessions, %d logs, %d biometric entries\n",
			summary.Sessions, summary.Logs, summary.Biometrics)
		if summary.Profile {
			fmt.Println("  profile migrated")
		}
		return nil
	},
}

func openBackend(cfg *config.Config, backend string) (storage.Repository, error) {
	dataDir := cfg.GetDataDir()
	switch backend {
	case "sqlite":
		return storage.Open(filepath.Join(dataDir, "fitpro.db"))
	case "badger":
		return storage.OpenDocStore(filepath.Join(dataDir, "docstore"))
	default:
		return nil, fmt.Errorf("unknown backend: %q (use sqlite or badger)", backend)
	}
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "sqlite", "source backend (sqlite or badger)")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "badger", "destination backend (sqlite or badger)")

	rootCmd.AddCommand(migrateCmd)
}
