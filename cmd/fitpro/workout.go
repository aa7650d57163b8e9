// ABOUTME: CLI commands for managing workouts and their exercise assignments.
// ABOUTME: Supports add, list, show, rename, archive, delete, assign, unassign.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fitpro/fitpro/internal/models"
	"github.com/fitpro/fitpro/internal/validate"
)

var (
	assignSets    int
	assignReps    int
	assignWeight  float64
	assignNotes   string
	assignSetType string
	listArchived  bool
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workouts",
	Long: `Manage workout routines.

A workout is a named routine. Assign exercises to it with target sets,
reps and weight, then run it as a session and log your performance.

WORKFLOW:

  1. Create a workout:       fitpro workout add "Push Day"
  2. Assign exercises:       fitpro workout assign abc123 def456 --sets 3 --reps 8
  3. See the plan:           fitpro workout show abc123
  4. Run it:                 fitpro session start abc123

COMMANDS:

  add       Create a new workout
  list      List workouts
  show      View a workout with its assigned exercises
  rename    Rename a workout
  archive   Hide a workout from active rotation (data kept)
  delete    Delete a workout and everything recorded against it
  assign    Assign an exercise to a workout
  unassign  Remove an exercise assignment`,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		w := models.NewWorkout(userID, args[0])
		if err := validate.Struct(w); err != nil {
			return err
		}
		if err := repo.CreateWorkout(w); err != nil {
			return fmt.Errorf("failed to create workout: %w", err)
		}

		color.Green("✓ Added workout %q", w.Name)
		fmt.Printf("  ID: %s\n", w.ID.String()[:8])
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		workouts, err := repo.ListWorkouts(userID)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			if w.Archived && !listArchived {
				continue
			}
			marker := ""
			if w.Archived {
				marker = faint.Sprint(" (archived)")
			}
			fmt.Printf("%s %s %s%s\n",
				faint.Sprint(w.ID.String()[:8]),
				faint.Sprint(w.CreatedAt.Format("2006-01-02")),
				w.Name,
				marker)
		}
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a workout and its assigned exercises",
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

		fmt.Printf("Workout: %s\n", w.Name)
		fmt.Printf("ID:      %s\n", w.ID.String()[:8])
		fmt.Printf("Created: %s\n", w.CreatedAt.Format("2006-01-02 15:04"))
		if w.Archived {
			fmt.Println("Status:  archived")
		}

		details, err := repo.ListWorkoutExercises(w.ID, userID)
		if err != nil {
			return fmt.Errorf("failed to list workout exercises: %w", err)
		}
		if len(details) == 0 {
			fmt.Println("\nNo exercises assigned.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Println("\nExercises:")
		for _, d := range details {
			target := fmt.Sprintf("%dx%d", d.Sets, d.Reps)
			if d.Weight != nil {
				target += fmt.Sprintf(" @ %.1fkg", *d.Weight)
			}
			extra := ""
			if d.SetType != nil {
				extra = faint.Sprintf(" [%s]", *d.SetType)
			}
			fmt.Printf("  %s %s %s%s\n",
				faint.Sprint(d.WorkoutExerciseID.String()[:8]),
				padRight(d.Name, 20),
				target,
				extra)
		}
		return nil
	},
}

var workoutRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a workout",
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

		old := w.Name
		w.Name = args[1]
		if err := validate.Struct(w); err != nil {
			return err
		}
		if err := repo.UpdateWorkout(w); err != nil {
			return fmt.Errorf("failed to rename workout: %w", err)
		}

		color.Green("✓ Renamed %q to %q", old, w.Name)
		return nil
	},
}

var workoutArchiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Archive a workout (data kept, hidden from list)",
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

		w.Archived = true
		if err := repo.UpdateWorkout(w); err != nil {
			return fmt.Errorf("failed to archive workout: %w", err)
		}

		color.Yellow("✓ Archived %q", w.Name)
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a workout and all its sessions and logs",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		w, err := resolveWorkout(userID, args[0])
		if err != nil {
			return err
		}

		if err := repo.DeleteWorkout(w.ID, userID); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		color.Yellow("✗ Deleted %q", w.Name)
		return nil
	},
}

var workoutAssignCmd = &cobra.Command{
	Use:   "assign <workout-id> <exercise-id>",
	Short: "Assign an exercise to a workout",
	Long: `Assign an exercise to a workout with target sets, reps and weight.

Examples:
  fitpro workout assign abc123 def456 --sets 3 --reps 8
  fitpro workout assign abc123 def456 --sets 5 --reps 5 --weight 100 --set-type warmup`,
	Args: cobra.ExactArgs(2),
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

		we := models.NewWorkoutExercise(w.ID, e.ID, assignSets, assignReps)
		if cmd.Flags().Changed("weight") {
			we.WithWeight(assignWeight)
		}
		if assignNotes != "" {
			we.WithNotes(assignNotes)
		}
		if assignSetType != "" {
			we.WithSetType(assignSetType)
		}
		if err := validate.Struct(we); err != nil {
			return err
		}

		if err := repo.AddWorkoutExercise(we); err != nil {
			return fmt.Errorf("failed to assign exercise: %w", err)
		}

		color.Green("✓ Assigned %s to %s", e.Name, w.Name)
		fmt.Printf("  %dx%d", we.Sets, we.Reps)
		if we.Weight != nil {
			fmt.Printf(" @ %.1fkg", *we.Weight)
		}
		fmt.Println()
		return nil
	},
}

var workoutUnassignCmd = &cobra.Command{
	Use:   "unassign <workout-id> <assignment-id>",
	Short: "Remove an exercise assignment from a workout",
	Long: `Remove an exercise assignment from a workout.

The assignment ID is the first column of 'fitpro workout show' output,
not the exercise ID. Logged performance is not affected.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		w, err := resolveWorkout(userID, args[0])
		if err != nil {
			return err
		}

		details, err := repo.ListWorkoutExercises(w.ID, userID)
		if err != nil {
			return fmt.Errorf("failed to list workout exercises: %w", err)
		}

		var target *models.WorkoutExerciseDetail
		for _, d := range details {
			if d.WorkoutExerciseID.String() == args[1] ||
				len(args[1]) >= 4 && strings.HasPrefix(d.WorkoutExerciseID.String(), args[1]) {
				target = d
				break
			}
		}
		if target == nil {
			return fmt.Errorf("assignment not found: %s", args[1])
		}

		if err := repo.RemoveWorkoutExercise(target.WorkoutExerciseID); err != nil {
			return fmt.Errorf("failed to remove assignment: %w", err)
		}

		color.Yellow("✗ Removed %s from %s", target.Name, w.Name)
		return nil
	},
}

func init() {
	workoutListCmd.Flags().BoolVar(&listArchived, "archived", false, "include archived workouts")

	workoutAssignCmd.Flags().IntVar(&assignSets, "sets", 3, "target sets")
	workoutAssignCmd.Flags().IntVar(&assignReps, "reps", 10, "target reps")
	workoutAssignCmd.Flags().Float64Var(&assignWeight, "weight", 0, "target weight in kg")
	workoutAssignCmd.Flags().StringVar(&assignNotes, "notes", "", "assignment notes")
	workoutAssignCmd.Flags().StringVar(&assignSetType, "set-type", "", "set type (warmup, working, dropset)")

	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutRenameCmd)
	workoutCmd.AddCommand(workoutArchiveCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	workoutCmd.AddCommand(workoutAssignCmd)
	workoutCmd.AddCommand(workoutUnassignCmd)
	rootCmd.AddCommand(workoutCmd)
}
