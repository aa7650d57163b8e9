// ABOUTME: CLI commands for the workout session lifecycle.
// ABOUTME: Supports start, finish, current, and a per-session summary.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage workout sessions",
	Long: `Manage timed workout sessions.

A session is one run of a workout with a start and an end time. Logs
recorded while a session is open can be tagged with it, which is what
feeds the per-day duration in 'fitpro stats'.

WORKFLOW:

  fitpro session start abc123     # start the clock
  fitpro log abc123 def456 3 8 60 # log performance (auto-tags the session)
  fitpro session finish abc123    # stop the clock

Finishing an already finished session is a no-op.`,
}

var sessionStartCmd = &cobra.Command{
	Use:   "start <workout-id>",
	Short: "Start a session for a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		w, err := resolveWorkout(userID, args[0])
		if err != nil {
			return err
		}

		s, err := repo.StartSession(w.ID)
		if err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}

		color.Green("✓ Session started for %s", w.Name)
		fmt.Printf("  %s at %s\n",
			color.New(color.Faint).Sprint(s.ID.String()[:8]),
			s.StartTime.Format("15:04"))
		return nil
	},
}

var sessionFinishCmd = &cobra.Command{
	Use:   "finish <workout-id>",
	Short: "Finish the current session for a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		w, err := resolveWorkout(userID, args[0])
		if err != nil {
			return err
		}

		s, err := repo.CurrentSession(w.ID)
		if err != nil {
			return fmt.Errorf("failed to look up session: %w", err)
		}
		if s == nil {
			return fmt.Errorf("no open session for %s", w.Name)
		}

		if err := repo.CompleteSession(s.ID); err != nil {
			return fmt.Errorf("failed to finish session: %w", err)
		}

		// Re-read for the end time.
		s, err = repo.GetSession(s.ID)
		if err != nil {
			return fmt.Errorf("failed to read session: %w", err)
		}

		color.Green("✓ Session finished for %s", w.Name)
		fmt.Printf("  %d min\n", s.DurationMinutes())
		return printSessionSummary(userID, s.ID)
	},
}

var sessionCurrentCmd = &cobra.Command{
	Use:   "current <workout-id>",
	Short: "Show the open session for a workout, if any",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		w, err := resolveWorkout(userID, args[0])
		if err != nil {
			return err
		}

		s, err := repo.CurrentSession(w.ID)
		if err != nil {
			return fmt.Errorf("failed to look up session: %w", err)
		}
		if s == nil {
			fmt.Printf("No open session for %s.\n", w.Name)
			return nil
		}

		fmt.Printf("Open session %s for %s\n",
			color.New(color.Faint).Sprint(s.ID.String()[:8]), w.Name)
		fmt.Printf("Started: %s\n", s.StartTime.Format("2006-01-02 15:04"))
		return nil
	},
}

// printSessionSummary lists what was logged during the session, grouped in
// log order.
func printSessionSummary(userID string, sessionID uuid.UUID) error {
	logs, err := repo.ListLogs(userID)
	if err != nil {
		return fmt.Errorf("failed to list logs: %w", err)
	}

	faint := color.New(color.Faint)
	printed := false
	for _, l := range logs {
		if l.SessionID == nil || *l.SessionID != sessionID {
			continue
		}
		if !printed {
			fmt.Println("\nLogged this session:")
			printed = true
		}
		fmt.Printf("  %s %dx%d @ %.1fkg\n",
			padRight(l.ExerciseName, 20), l.Sets, l.Reps, l.Weight)
	}
	if !printed {
		fmt.Println(faint.Sprint("  Nothing logged this session."))
	}
	return nil
}

func init() {
	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionFinishCmd)
	sessionCmd.AddCommand(sessionCurrentCmd)
	rootCmd.AddCommand(sessionCmd)
}
