// ABOUTME: CLI commands for the user profile.
// ABOUTME: Show and update name, birth date, and pregnancy settings.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/bloom/internal/models"
	"github.com/spf13/cobra"
)

var (
	profileName     string
	profileDOB      string
	profilePregnant bool
	profileDueDate  string
	profileClear    bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		u := currentUser
		fmt.Printf("%s (@%s)\n", color.New(color.Bold).Sprint(u.Name), u.Username)
		fmt.Printf("  Email: %s\n", u.Email)
		if u.DateOfBirth != nil {
			fmt.Printf("  Date of birth: %s\n", *u.DateOfBirth)
		}
		if u.IsPregnant && u.PregnancyDueDate != nil {
			fmt.Printf("  Pregnant, due %s\n", *u.PregnancyDueDate)
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Long: `Update profile fields. Only the flags you pass change.

Examples:
  bloom profile set --name "Anna K"
  bloom profile set --dob 1990-05-15
  bloom profile set --pregnant --due-date 2025-11-01
  bloom profile set --not-pregnant`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch models.UserPatch

		if profileName != "" {
			patch.Name = &profileName
		}
		if profileDOB != "" {
			dob, err := models.ParseDate(profileDOB)
			if err != nil {
				return err
			}
			patch.DateOfBirth = &dob
		}
		if profilePregnant {
			t := true
			patch.IsPregnant = &t
			if profileDueDate == "" {
				return fmt.Errorf("--pregnant requires --due-date")
			}
		}
		if profileDueDate != "" {
			due, err := models.ParseDate(profileDueDate)
			if err != nil {
				return err
			}
			patch.PregnancyDueDate = &due
		}
		if profileClear {
			f := false
			patch.IsPregnant = &f
		}

		updated, err := db.UpdateUser(currentUser.ID, patch)
		if err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		currentUser = updated

		color.Green("✓ Profile updated")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileSetCmd.Flags().StringVar(&profileDOB, "dob", "", "date of birth (YYYY-MM-DD)")
	profileSetCmd.Flags().BoolVar(&profilePregnant, "pregnant", false, "mark as pregnant")
	profileSetCmd.Flags().StringVar(&profileDueDate, "due-date", "", "pregnancy due date (YYYY-MM-DD)")
	profileSetCmd.Flags().BoolVar(&profileClear, "not-pregnant", false, "clear pregnancy status")
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
