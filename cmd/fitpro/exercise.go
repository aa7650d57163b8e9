// ABOUTME: CLI commands for managing the exercise catalog.
// ABOUTME: Supports add, list, show, update, and delete.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fitpro/fitpro/internal/models"
	"github.com/fitpro/fitpro/internal/validate"
)

var (
	exerciseMuscle    string
	exerciseSecondary string
	exerciseNotes     string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Manage exercises",
	Long: `Manage your exercise catalog.

Exercises are owned per user and referenced by workout assignments and
performance logs. Deleting an exercise removes its assignments but keeps
the logs (they carry a name snapshot).

EXAMPLES:

  fitpro exercise add "Bench Press" --muscle chest --secondary triceps
  fitpro exercise list
  fitpro exercise update abc123 --notes "pause at the bottom"
  fitpro exercise delete abc123`,
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		e := models.NewExercise(userID, args[0], exerciseMuscle)
		if exerciseSecondary != "" {
			e.WithSecondaryMuscleGroup(exerciseSecondary)
		}
		if exerciseNotes != "" {
			e.WithNotes(exerciseNotes)
		}
		if err := validate.Struct(e); err != nil {
			return err
		}

		if err := repo.CreateExercise(e); err != nil {
			return fmt.Errorf("failed to create exercise: %w", err)
		}

		color.Green("✓ Added %s (%s)", e.Name, e.PrimaryMuscleGroup)
		fmt.Printf("  ID: %s\n", e.ID.String()[:8])
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		exercises, err := repo.ListExercises(userID)
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}

		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range exercises {
			secondary := ""
			if e.SecondaryMuscleGroup != nil {
				secondary = faint.Sprintf(" +%s", *e.SecondaryMuscleGroup)
			}
			fmt.Printf("%s %s %s%s\n",
				faint.Sprint(e.ID.String()[:8]),
				padRight(e.Name, 24),
				e.PrimaryMuscleGroup,
				secondary)
		}
		return nil
	},
}

var exerciseShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show exercise details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		e, err := resolveExercise(userID, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Exercise: %s\n", e.Name)
		fmt.Printf("ID:       %s\n", e.ID.String()[:8])
		fmt.Printf("Muscle:   %s\n", e.PrimaryMuscleGroup)
		if e.SecondaryMuscleGroup != nil {
			fmt.Printf("Also:     %s\n", *e.SecondaryMuscleGroup)
		}
		if e.Notes != nil {
			fmt.Printf("Notes:    %s\n", *e.Notes)
		}
		fmt.Printf("Created:  %s\n", e.CreatedAt.Format("2006-01-02 15:04"))
		return nil
	},
}

var exerciseUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update exercise fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		e, err := resolveExercise(userID, args[0])
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("muscle") {
			e.PrimaryMuscleGroup = exerciseMuscle
		}
		if cmd.Flags().Changed("secondary") {
			e.WithSecondaryMuscleGroup(exerciseSecondary)
		}
		if cmd.Flags().Changed("notes") {
			e.WithNotes(exerciseNotes)
		}
		if err := validate.Struct(e); err != nil {
			return err
		}

		if err := repo.UpdateExercise(e); err != nil {
			return fmt.Errorf("failed to update exercise: %w", err)
		}

		color.Green("✓ Updated %s", e.Name)
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an exercise (logs keep their snapshot)",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		e, err := resolveExercise(userID, args[0])
		if err != nil {
			return err
		}

		if err := repo.DeleteExercise(e.ID, userID); err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}

		color.Yellow("✗ Deleted %s", e.Name)
		return nil
	},
}

func init() {
	exerciseAddCmd.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "primary muscle group")
	exerciseAddCmd.Flags().StringVar(&exerciseSecondary, "secondary", "", "secondary muscle group")
	exerciseAddCmd.Flags().StringVar(&exerciseNotes, "notes", "", "exercise notes")
	_ = exerciseAddCmd.MarkFlagRequired("muscle")

	exerciseUpdateCmd.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "primary muscle group")
	exerciseUpdateCmd.Flags().StringVar(&exerciseSecondary, "secondary", "", "secondary muscle group")
	exerciseUpdateCmd.Flags().StringVar(&exerciseNotes, "notes", "", "exercise notes")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseShowCmd)
	exerciseCmd.AddCommand(exerciseUpdateCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
