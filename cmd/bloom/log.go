// ABOUTME: CLI commands for logging symptoms, moods, and nutrition.
// ABOUTME: Each entry is dated; the date defaults to today.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/bloom/internal/models"
	"github.com/spf13/cobra"
)

var (
	logDate       string
	logNotes      string
	logLimit      int
	mealCalories  int
	nutritionDate string
)

// entryDate resolves the shared --date flag, defaulting to today.
func entryDate(raw string) (models.Date, error) {
	if raw == "" {
		return models.Today(), nil
	}
	return models.ParseDate(raw)
}

var symptomCmd = &cobra.Command{
	Use:     "symptom <type> <severity>",
	Aliases: []string{"s"},
	Short:   "Log a symptom",
	Long: `Log a symptom with severity from 1 (mild) to 5 (severe).

Examples:
  bloom symptom cramps 3
  bloom symptom headache 2 --notes "After lunch"
  bloom symptom fatigue 4 --date 2025-03-14`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		severity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid severity: %s", args[1])
		}

		date, err := entryDate(logDate)
		if err != nil {
			return err
		}

		entry := models.NewSymptomEntry(currentUser.ID, date, args[0], severity)
		if logNotes != "" {
			entry.WithNotes(logNotes)
		}
		// Attach to the in-progress cycle when there is one.
		if current, err := queries.CurrentCycle(currentUser.ID); err == nil {
			entry.WithCycle(current.ID)
		}

		if err := db.CreateSymptom(entry); err != nil {
			return fmt.Errorf("failed to log symptom: %w", err)
		}

		color.Green("✓ Logged %s", args[0])
		fmt.Printf("  %s severity %d/5 on %s\n",
			color.New(color.Faint).Sprint(entry.ID.String()[:8]),
			severity, date)

		return nil
	},
}

var symptomListCmd = &cobra.Command{
	Use:   "symptoms",
	Short: "List recent symptoms",
	RunE: func(cmd *cobra.Command, args []string) error {
		symptoms, err := queries.ListSymptoms(currentUser.ID)
		if err != nil {
			return fmt.Errorf("failed to list symptoms: %w", err)
		}
		if len(symptoms) == 0 {
			fmt.Println("No symptoms recorded.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range capEntries(symptoms, logLimit) {
			notes := ""
			if s.Notes != nil && *s.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*s.Notes, 30))
			}
			fmt.Printf("%s %s %s %d/5%s\n",
				faint.Sprint(s.ID.String()[:8]),
				s.Date, padRight(s.Type, 14), s.Severity, notes)
		}
		return nil
	},
}

var moodCmd = &cobra.Command{
	Use:     "mood <mood> <energy>",
	Aliases: []string{"m"},
	Short:   "Log a mood",
	Long: `Log a mood with energy level from 1 (drained) to 10 (energized).

Examples:
  bloom mood happy 8
  bloom mood anxious 4 --notes "Big meeting"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		energy, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid energy level: %s", args[1])
		}

		date, err := entryDate(logDate)
		if err != nil {
			return err
		}

		entry := models.NewMoodEntry(currentUser.ID, date, args[0], energy)
		if logNotes != "" {
			entry.WithNotes(logNotes)
		}

		if err := db.CreateMood(entry); err != nil {
			return fmt.Errorf("failed to log mood: %w", err)
		}

		color.Green("✓ Logged mood %s", args[0])
		fmt.Printf("  %s energy %d/10 on %s\n",
			color.New(color.Faint).Sprint(entry.ID.String()[:8]),
			energy, date)

		return nil
	},
}

var moodListCmd = &cobra.Command{
	Use:   "moods",
	Short: "List recent moods",
	RunE: func(cmd *cobra.Command, args []string) error {
		moods, err := queries.ListMoods(currentUser.ID)
		if err != nil {
			return fmt.Errorf("failed to list moods: %w", err)
		}
		if len(moods) == 0 {
			fmt.Println("No moods recorded.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range capEntries(moods, logLimit) {
			notes := ""
			if m.Notes != nil && *m.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*m.Notes, 30))
			}
			fmt.Printf("%s %s %s energy %d/10%s\n",
				faint.Sprint(m.ID.String()[:8]),
				m.Date, padRight(m.Mood, 12), m.EnergyLevel, notes)
		}
		return nil
	},
}

var nutritionCmd = &cobra.Command{
	Use:     "nutrition <meal_type> <description>",
	Aliases: []string{"n"},
	Short:   "Log a meal or snack",
	Long: `Log a meal with an optional calorie estimate.

Examples:
  bloom nutrition breakfast "Oatmeal with berries"
  bloom nutrition snack "Trail mix" --calories 250`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := entryDate(nutritionDate)
		if err != nil {
			return err
		}

		description := strings.Join(args[1:], " ")
		entry := models.NewNutritionEntry(currentUser.ID, date, args[0], description)
		if mealCalories > 0 {
			entry.WithCalories(mealCalories)
		}

		if err := db.CreateNutrition(entry); err != nil {
			return fmt.Errorf("failed to log nutrition: %w", err)
		}

		color.Green("✓ Logged %s", args[0])
		fmt.Printf("  %s %s on %s\n",
			color.New(color.Faint).Sprint(entry.ID.String()[:8]),
			truncate(description, 40), date)

		return nil
	},
}

func capEntries[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	symptomCmd.Flags().StringVar(&logDate, "date", "", "entry date (YYYY-MM-DD)")
	symptomCmd.Flags().StringVar(&logNotes, "notes", "", "optional notes")
	moodCmd.Flags().StringVar(&logDate, "date", "", "entry date (YYYY-MM-DD)")
	moodCmd.Flags().StringVar(&logNotes, "notes", "", "optional notes")
	nutritionCmd.Flags().StringVar(&nutritionDate, "date", "", "entry date (YYYY-MM-DD)")
	nutritionCmd.Flags().IntVar(&mealCalories, "calories", 0, "estimated calories")
	symptomListCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "max number of results")
	moodListCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "max number of results")

	rootCmd.AddCommand(symptomCmd)
	rootCmd.AddCommand(symptomListCmd)
	rootCmd.AddCommand(moodCmd)
	rootCmd.AddCommand(moodListCmd)
	rootCmd.AddCommand(nutritionCmd)
}
