// ABOUTME: CLI commands for aggregated training statistics.
// ABOUTME: Per-day workout stats with streak, exercise frequency, BMI trend.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fitpro/fitpro/internal/models"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show training statistics",
	Long: `Show per-day training statistics.

For each day with logged performance: how many distinct workouts you
trained, how many exercises you logged, and total session minutes
(completed sessions only). Also reports your current training streak.

SUBCOMMANDS:

  exercises   Exercise frequency across all logs
  bmi         BMI trend from biometric entries

EXAMPLES:

  fitpro stats
  fitpro stats exercises
  fitpro stats bmi`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		days, err := repo.WorkoutStats(userID)
		if err != nil {
			return fmt.Errorf("failed to compute stats: %w", err)
		}

		if len(days) == 0 {
			fmt.Println("No training recorded yet.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s %s %s\n",
			padRight("DATE", 12), padRight("WORKOUTS", 10),
			padRight("EXERCISES", 11), "MINUTES")
		for _, d := range days {
			minutes := ""
			if d.DurationMinutes > 0 {
				minutes = fmt.Sprintf("%d", d.DurationMinutes)
			}
			fmt.Printf("%s %s %s %s\n",
				faint.Sprint(padRight(d.Date, 12)),
				padRight(fmt.Sprintf("%d", d.Count), 10),
				padRight(fmt.Sprintf("%d", d.Exercises), 11),
				minutes)
		}

		streak := trainingStreak(days, time.Now().UTC())
		fmt.Println()
		if streak > 0 {
			color.Green("Current streak: %d day(s)", streak)
		} else {
			fmt.Println(faint.Sprint("No current streak."))
		}
		return nil
	},
}

var statsExercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "Show exercise frequency",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		stats, err := repo.ExerciseStats(userID)
		if err != nil {
			return fmt.Errorf("failed to compute exercise stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No exercise logs yet.")
			return nil
		}

		for _, s := range stats {
			fmt.Printf("%s %d\n", padRight(s.Name, 24), s.Count)
		}
		return nil
	},
}

var statsBMICmd = &cobra.Command{
	Use:   "bmi",
	Short: "Show BMI trend from biometric entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		entries, err := repo.ListBiometricEntries(userID)
		if err != nil {
			return fmt.Errorf("failed to list biometric entries: %w", err)
		}

		// BMI needs both height and weight; carry the last seen height
		// forward so weight-only entries still chart.
		faint := color.New(color.Faint)
		var lastHeight *float64
		printed := false
		for _, b := range entries {
			if b.HeightCm != nil {
				lastHeight = b.HeightCm
			}
			if b.WeightKg == nil || lastHeight == nil {
				continue
			}
			h := *lastHeight / 100
			bmi := *b.WeightKg / (h * h)
			fmt.Printf("%s %.1f kg  BMI %.1f\n",
				faint.Sprint(b.RecordedAt.Format("2006-01-02")),
				*b.WeightKg, bmi)
			printed = true
		}
		if !printed {
			fmt.Println("Not enough biometric data: need height and weight entries.")
		}
		return nil
	},
}

// trainingStreak counts consecutive days with training, ending today or
// yesterday. Days arrive sorted ascending by date.
func trainingStreak(days []*models.WorkoutDayStat, now time.Time) int {
	trained := make(map[string]bool, len(days))
	for _, d := range days {
		trained[d.Date] = true
	}

	day := now
	// A streak survives until a full day is missed.
	if !trained[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for trained[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func init() {
	statsCmd.AddCommand(statsExercisesCmd)
	statsCmd.AddCommand(statsBMICmd)
	rootCmd.AddCommand(statsCmd)
}
