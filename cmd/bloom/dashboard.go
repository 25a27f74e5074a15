// ABOUTME: CLI command for the daily dashboard.
// ABOUTME: Today's cycle position, wellness totals, and weekly progress.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/bloom/internal/models"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"d"},
	Short:   "Show today at a glance",
	RunE: func(cmd *cobra.Command, args []string) error {
		today := models.Today()
		stats, err := queries.Dashboard(currentUser.ID, today)
		if err != nil {
			return fmt.Errorf("failed to build dashboard: %w", err)
		}

		bold := color.New(color.Bold)
		fmt.Printf("%s\n\n", bold.Sprintf("Today, %s", today))

		if stats.CycleDay > 0 {
			fmt.Printf("  Cycle     day %d, %s phase\n", stats.CycleDay, stats.CyclePhase)
		} else {
			fmt.Println("  Cycle     no cycles recorded")
		}
		fmt.Printf("  Steps     %d\n", stats.Steps)
		fmt.Printf("  Sleep     %.1fh\n", stats.SleepHours)
		fmt.Printf("  Mood      %s\n", stats.Mood)
		if len(stats.Symptoms) > 0 {
			fmt.Printf("  Symptoms  %s\n", strings.Join(stats.Symptoms, ", "))
		}

		fmt.Printf("\n%s\n", bold.Sprint("This week"))
		fmt.Printf("  Water     %.1fL\n", stats.Weekly.WaterLiters)
		fmt.Printf("  Exercise  %d days\n", stats.Weekly.ExerciseDays)
		fmt.Printf("  Sleep     %.1fh total\n", stats.Weekly.SleepHours)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
