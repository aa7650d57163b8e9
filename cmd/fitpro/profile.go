// ABOUTME: CLI commands for managing the user profile.
// ABOUTME: Profile is an upsert; set overwrites, show displays with BMI.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fitpro/fitpro/internal/models"
	"github.com/fitpro/fitpro/internal/validate"
)

var (
	profileName   string
	profileAge    int
	profileHeight float64
	profileWeight float64
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
	Long: `Manage your user profile (name, age, height, weight).

Each user has at most one profile; 'set' creates or replaces it.

EXAMPLES:

  fitpro profile set --name Alice --age 30 --height 170 --weight 65
  fitpro profile show`,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		p := models.NewProfile(userID, profileName, profileAge, profileHeight, profileWeight)
		if err := validate.Struct(p); err != nil {
			return err
		}

		if err := repo.SaveProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		color.Green("✓ Profile saved")
		fmt.Printf("  %s, %d — %.1f cm, %.1f kg\n", p.Name, p.Age, p.HeightCm, p.WeightKg)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := currentUser()
		if err != nil {
			return err
		}

		p, err := repo.GetProfile(userID)
		if err != nil {
			return fmt.Errorf("no profile found: run 'fitpro profile set' first")
		}

		bmi := p.WeightKg / ((p.HeightCm / 100) * (p.HeightCm / 100))
		fmt.Printf("Name:    %s\n", p.Name)
		fmt.Printf("Age:     %d\n", p.Age)
		fmt.Printf("Height:  %.1f cm\n", p.HeightCm)
		fmt.Printf("Weight:  %.1f kg\n", p.WeightKg)
		fmt.Printf("BMI:     %.1f\n", bmi)
		fmt.Printf("Updated: %s\n", p.UpdatedAt.Format("2006-01-02 15:04"))
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age in years")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "weight in kg")
	_ = profileSetCmd.MarkFlagRequired("name")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
