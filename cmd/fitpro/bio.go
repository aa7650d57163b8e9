// ABOUTME: CLI commands for biometric entries (height/weight over time).
// ABOUTME: Supports add with backdating, list with BMI, and delete.
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
	bioHeight float64
	bioWeight float64
	bioAt     string
)

var bioCmd = &cobra.Command{
	Use:   "bio",
	Short: "Track biometric entries",
	Long: `Track height and weight over time, separate from the profile.

Either field can be recorded alone; BMI shows where both are known
(height carries forward). Use --at to backdate an entry.

EXAMPLES:

  fitpro bio add --weight 82.5
  fitpro bio add --height 178 --weight 82.5 --at 2026-01-15
  fitpro bio list`,
}

var bioAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a biometric entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("height") && !cmd.Flags().Changed("weight") {
			return fmt.Errorf("provide --height, --weight, or both")
		}

		b := models.NewBiometricEntry(userID)
		if cmd.Flags().Changed("height") {
			b.WithHeight(bioHeight)
		}
		if cmd.Flags().Changed("weight") {
			b.WithWeight(bioWeight)
		}
		if bioAt != "" {
			t, err := parseTime(bioAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", bioAt)
			}
			b.WithRecordedAt(t)
		}
		if err := validate.Struct(b); err != nil {
			return err
		}

		if err := repo.AddBiometricEntry(b); err != nil {
			return fmt.Errorf("failed to add biometric entry: %w", err)
		}

		color.Green("✓ Added biometric entry")
		var parts []string
		if b.HeightCm != nil {
			parts = append(parts, fmt.Sprintf("%.1f cm", *b.HeightCm))
		}
		if b.WeightKg != nil {
			parts = append(parts, fmt.Sprintf("%.1f kg", *b.WeightKg))
		}
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(b.ID.String()[:8]),
			strings.Join(parts, ", "))
		return nil
	},
}

var bioListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List biometric entries, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		entries, err := repo.ListBiometricEntries(userID)
		if err != nil {
			return fmt.Errorf("failed to list biometric entries: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No biometric entries found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, b := range entries {
			height := "      -"
			if b.HeightCm != nil {
				height = fmt.Sprintf("%5.1fcm", *b.HeightCm)
			}
			weight := "      -"
			if b.WeightKg != nil {
				weight = fmt.Sprintf("%5.1fkg", *b.WeightKg)
			}
			fmt.Printf("%s %s %s %s\n",
				faint.Sprint(b.ID.String()[:8]),
				faint.Sprint(b.RecordedAt.Format("2006-01-02 15:04")),
				height, weight)
		}
		return nil
	},
}

var bioDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a biometric entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		entries, err := repo.ListBiometricEntries(userID)
		if err != nil {
			return fmt.Errorf("failed to list biometric entries: %w", err)
		}

		for _, b := range entries {
			if b.ID.String() == args[0] || (len(args[0]) >= 4 &&
				strings.HasPrefix(b.ID.String(), args[0])) {
				if err := repo.DeleteBiometricEntry(b.ID, userID); err != nil {
					return fmt.Errorf("failed to delete biometric entry: %w", err)
				}
				color.Yellow("✗ Deleted biometric entry")
				return nil
			}
		}
		return fmt.Errorf("biometric entry not found: %s", args[0])
	},
}

func init() {
	bioAddCmd.Flags().Float64Var(&bioHeight, "height", 0, "height in cm")
	bioAddCmd.Flags().Float64Var(&bioWeight, "weight", 0, "weight in kg")
	bioAddCmd.Flags().StringVar(&bioAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")

	bioCmd.AddCommand(bioAddCmd)
	bioCmd.AddCommand(bioListCmd)
	bioCmd.AddCommand(bioDeleteCmd)
	rootCmd.AddCommand(bioCmd)
}
