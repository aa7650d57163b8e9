// ABOUTME: CLI commands for recording and browsing performance logs.
// ABOUTME: Logs auto-tag the open session for the workout when one exists.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fitpro/fitpro/internal/models"
	"github.com/fitpro/fitpro/internal/validate"
)

var logNoSession bool

var logCmd = &cobra.Command{
	Use:   "log <workout-id> <exercise-id> <sets> <reps> <weight>",
	Short: "Record exercise performance",
	Long: `Record what you actually lifted for an exercise in a workout.

If a session is open for the workout, the log is tagged with it (pass
--no-session to skip). The log snapshots the workout and exercise names,
so deleting the exercise later does not lose history.

Examples:
  fitpro log abc123 def456 3 8 60.5
  fitpro log abc123 def456 5 5 100 --no-session`,
	Args: cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		w, err := resolveWorkout(userID, args[0])
		if err != nil {
			return err
		}
		e, err := resolveExercise(userID, args[1])
		if err != nil {
			return err
		}

		sets, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid sets: %s", args[2])
		}
		reps, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid reps: %s", args[3])
		}
		weight, err := strconv.ParseFloat(args[4], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[4])
		}
		if err := validate.Struct(models.NewLog(w.ID, e.ID, sets, reps, weight)); err != nil {
			return err
		}

		var sessionID *uuid.UUID
		if !logNoSession {
			s, err := repo.CurrentSession(w.ID)
			if err != nil {
				return fmt.Errorf("failed to look up session: %w", err)
			}
			if s != nil {
				sessionID = &s.ID
			}
		}

		l, err := repo.LogPerformance(userID, w.ID, e.ID, sets, reps, weight, sessionID)
		if err != nil {
			return fmt.Errorf("failed to log performance: %w", err)
		}

		color.Green("✓ Logged %s", l.ExerciseName)
		fmt.Printf("  %s %dx%d @ %.1fkg\n",
			color.New(color.Faint).Sprint(l.ID.String()[:8]),
			l.Sets, l.Reps, l.Weight)
		return nil
	},
}

var logListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List performance logs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		logs, err := repo.ListLogs(userID)
		if err != nil {
			return fmt.Errorf("failed to list logs: %w", err)
		}

		if len(logs) == 0 {
			fmt.Println("No logs found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, l := range logs {
			fmt.Printf("%s %s %s %s %dx%d @ %.1fkg\n",
				faint.Sprint(l.ID.String()[:8]),
				faint.Sprint(l.RecordedAt.Format("2006-01-02 15:04")),
				padRight(truncate(l.WorkoutName, 16), 16),
				padRight(truncate(l.ExerciseName, 20), 20),
				l.Sets, l.Reps, l.Weight)
		}
		return nil
	},
}

var logHistoryCmd = &cobra.Command{
	Use:   "history <workout-id> <exercise-id>",
	Short: "Show the log history for an exercise in a workout",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		w, err := resolveWorkout(userID, args[0])
		if err != nil {
			return err
		}
		e, err := resolveExercise(userID, args[1])
		if err != nil {
			return err
		}

		logs, err := repo.ListLogsForExercise(w.ID, e.ID, nil)
		if err != nil {
			return fmt.Errorf("failed to list logs: %w", err)
		}

		if len(logs) == 0 {
			fmt.Printf("No logs for %s in %s.\n", e.Name, w.Name)
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s — %s\n", w.Name, e.Name)
		for _, l := range logs {
			fmt.Printf("  %s %dx%d @ %.1fkg\n",
				faint.Sprint(l.RecordedAt.Format("2006-01-02 15:04")),
				l.Sets, l.Reps, l.Weight)
		}
		return nil
	},
}

var logDeleteCmd = &cobra.Command{
	Use:     "delete <log-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a performance log",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		logs, err := repo.ListLogs(userID)
		if err != nil {
			return fmt.Errorf("failed to list logs: %w", err)
		}

		for _, l := range logs {
			if l.ID.String() == args[0] || (len(args[0]) >= 4 &&
				strings.HasPrefix(l.ID.String(), args[0])) {
				if err := repo.DeleteLog(l.ID); err != nil {
					return fmt.Errorf("failed to delete log: %w", err)
				}
				color.Yellow("✗ Deleted log for %s", l.ExerciseName)
				return nil
			}
		}
		return fmt.Errorf("log not found: %s", args[0])
	},
}

func init() {
	logCmd.Flags().BoolVar(&logNoSession, "no-session", false, "do not tag the open session")

	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logHistoryCmd)
	logCmd.AddCommand(logDeleteCmd)
	rootCmd.AddCommand(logCmd)
}
