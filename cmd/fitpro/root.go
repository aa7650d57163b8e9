// ABOUTME: Root Cobra command for fitpro CLI.
// ABOUTME: Opens the configured storage backend via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fitpro/fitpro/internal/config"
	"github.com/fitpro/fitpro/internal/logging"
	"github.com/fitpro/fitpro/internal/storage"
)

var (
	cfg      *config.Config
	repo     storage.Repository
	userFlag string
)

var rootCmd = &cobra.Command{
	Use:   "fitpro",
	Short: "Personal fitness tracker",
	Long: `Fitpro is a CLI tool for tracking workouts, exercises, and biometrics.

WHAT IT TRACKS:

  Workouts       named routines with assigned exercises (sets/reps/weight)
  Sessions       timed runs of a workout, start to finish
  Logs           per-exercise performance records (sets x reps @ weight)
  Biometrics     height and weight entries with BMI trend

QUICK START:

  $ fitpro profile set --name Alice --age 30 --height 170 --weight 65
  $ fitpro exercise add "Bench Press" --muscle chest
  $ fitpro workout add "Push Day"
  $ fitpro workout assign <workout-id> <exercise-id> --sets 3 --reps 8
  $ fitpro session start <workout-id>
  $ fitpro log <workout-id> <exercise-id> 3 8 60.5
  $ fitpro session finish <workout-id>
  $ fitpro stats

BACKENDS:

  Data lives in SQLite by default. Set "backend": "badger" in the config
  to use the flat document store instead; both backends expose identical
  behavior, including the stats queries.

  $ fitpro migrate --from sqlite --to badger   # move data between them

DATA STORAGE:

  Default data directory is ~/.local/share/fitpro (XDG aware).
  Config lives at ~/.config/fitpro/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch storage skip the backend open.
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "migrate" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		slog.Debug("storage opened", "backend", cfg.GetBackend(), "data_dir", cfg.GetDataDir())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// currentUser resolves the acting user: --user flag, then FITPRO_USER env,
// then the configured default.
func currentUser() (string, error) {
	if userFlag != "" {
		return userFlag, nil
	}
	if u := os.Getenv("FITPRO_USER"); u != "" {
		return u, nil
	}
	if cfg != nil && cfg.User != "" {
		return cfg.User, nil
	}
	return "", fmt.Errorf("no user set: use --user, FITPRO_USER, or 'fitpro config set-user'")
}

func Execute() error {
	logging.Setup()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "acting user id (overrides FITPRO_USER and config)")
}
