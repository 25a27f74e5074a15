// ABOUTME: CLI command for logging daily wellness data.
// ABOUTME: Steps, water, sleep, and exercise are all optional flags.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/bloom/internal/models"
	"github.com/spf13/cobra"
)

var (
	wellnessDate     string
	wellnessSteps    int
	wellnessWater    float64
	wellnessSleep    float64
	wellnessQuality  int
	wellnessExercise int
	wellnessLimit    int
)

var wellnessCmd = &cobra.Command{
	Use:     "wellness",
	Aliases: []string{"w"},
	Short:   "Log daily wellness data",
	Long: `Log wellness data for a day. All fields are optional; set only
what you tracked.

Examples:
  bloom wellness --steps 8000 --water 2.0
  bloom wellness --sleep 7.5 --quality 4
  bloom wellness --exercise 30 --date 2025-03-14`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := entryDate(wellnessDate)
		if err != nil {
			return err
		}

		entry := models.NewWellnessEntry(currentUser.ID, date)
		if wellnessSteps > 0 {
			entry.WithSteps(wellnessSteps)
		}
		if wellnessWater > 0 {
			entry.WithWaterIntake(wellnessWater)
		}
		if wellnessSleep > 0 && wellnessQuality > 0 {
			entry.WithSleep(wellnessSleep, wellnessQuality)
		} else if wellnessSleep > 0 {
			entry.WithSleepHours(wellnessSleep)
		}
		if wellnessExercise > 0 {
			entry.WithExerciseMinutes(wellnessExercise)
		}

		if err := db.CreateWellness(entry); err != nil {
			return fmt.Errorf("failed to log wellness: %w", err)
		}

		color.Green("✓ Logged wellness for %s", date)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(entry.ID.String()[:8]))

		return nil
	},
}

var wellnessListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent wellness entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := queries.ListWellness(currentUser.ID)
		if err != nil {
			return fmt.Errorf("failed to list wellness entries: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No wellness entries recorded.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range capEntries(entries, wellnessLimit) {
			line := fmt.Sprintf("%s %s", faint.Sprint(w.ID.String()[:8]), w.Date)
			if w.Steps != nil {
				line += fmt.Sprintf("  %d steps", *w.Steps)
			}
			if w.WaterIntakeLiters != nil {
				line += fmt.Sprintf("  %.1fL water", *w.WaterIntakeLiters)
			}
			if w.SleepHours != nil {
				line += fmt.Sprintf("  %.1fh sleep", *w.SleepHours)
			}
			if w.ExerciseMinutes != nil {
				line += fmt.Sprintf("  %dmin exercise", *w.ExerciseMinutes)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	wellnessCmd.Flags().StringVar(&wellnessDate, "date", "", "entry date (YYYY-MM-DD)")
	wellnessCmd.Flags().IntVar(&wellnessSteps, "steps", 0, "step count")
	wellnessCmd.Flags().Float64Var(&wellnessWater, "water", 0, "water intake in liters")
	wellnessCmd.Flags().Float64Var(&wellnessSleep, "sleep", 0, "hours slept")
	wellnessCmd.Flags().IntVar(&wellnessQuality, "quality", 0, "sleep quality 1-5")
	wellnessCmd.Flags().IntVar(&wellnessExercise, "exercise", 0, "minutes of exercise")
	wellnessListCmd.Flags().IntVarP(&wellnessLimit, "limit", "n", 20, "max number of results")
	wellnessCmd.AddCommand(wellnessListCmd)
	rootCmd.AddCommand(wellnessCmd)
}
