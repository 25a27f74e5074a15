// ABOUTME: CLI commands for menstrual cycle records.
// ABOUTME: Start, end, list, and inspect cycles with derived fields.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/bloom/internal/derive"
	"github.com/harperreed/bloom/internal/models"
	"github.com/harperreed/bloom/internal/store"
	"github.com/spf13/cobra"
)

var (
	cycleFlow      int
	cycleOvulation string
)

var cycleCmd = &cobra.Command{
	Use:     "cycle",
	Aliases: []string{"c"},
	Short:   "Track menstrual cycles",
}

var cycleStartCmd = &cobra.Command{
	Use:   "start [date]",
	Short: "Start a new cycle",
	Long: `Start a new cycle record. The date defaults to today.

Examples:
  bloom cycle start
  bloom cycle start 2025-03-14
  bloom cycle start --flow 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := models.Today()
		if len(args) > 0 {
			var err error
			start, err = models.ParseDate(args[0])
			if err != nil {
				return err
			}
		}

		c := models.NewCycleRecord(currentUser.ID, start)
		if cycleFlow > 0 {
			c.WithFlowIntensity(cycleFlow)
		}

		if err := db.CreateCycle(c); err != nil {
			return fmt.Errorf("failed to start cycle: %w", err)
		}

		color.Green("✓ Started cycle")
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(c.ID.String()[:8]),
			c.StartDate)

		return nil
	},
}

var cycleEndCmd = &cobra.Command{
	Use:   "end [date]",
	Short: "End the current cycle",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		end := models.Today()
		if len(args) > 0 {
			var err error
			end, err = models.ParseDate(args[0])
			if err != nil {
				return err
			}
		}

		current, err := queries.CurrentCycle(currentUser.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no cycle to end")
			}
			return err
		}
		if !current.IsOpen() {
			return fmt.Errorf("current cycle already ended on %s", *current.EndDate)
		}

		length := models.DaysBetween(current.StartDate, end) + 1
		patch := models.CyclePatch{EndDate: &end, Length: &length}
		if cycleOvulation != "" {
			ov, err := models.ParseDate(cycleOvulation)
			if err != nil {
				return err
			}
			patch.OvulationDate = &ov
		}

		updated, err := db.UpdateCycle(current.ID, patch)
		if err != nil {
			return fmt.Errorf("failed to end cycle: %w", err)
		}

		color.Green("✓ Ended cycle")
		fmt.Printf("  %s %s to %s (%d days)\n",
			color.New(color.Faint).Sprint(updated.ID.String()[:8]),
			updated.StartDate, end, length)

		return nil
	},
}

var cycleListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List cycle history",
	RunE: func(cmd *cobra.Command, args []string) error {
		cycles, err := queries.ListCycles(currentUser.ID)
		if err != nil {
			return fmt.Errorf("failed to list cycles: %w", err)
		}

		if len(cycles) == 0 {
			fmt.Println("No cycles recorded.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, c := range cycles {
			end := "ongoing"
			if c.EndDate != nil {
				end = string(*c.EndDate)
			}
			length := ""
			if c.Length != nil {
				length = fmt.Sprintf(" %d days", *c.Length)
			}
			flow := ""
			if c.FlowIntensity != nil {
				flow = faint.Sprintf(" flow %d/5", *c.FlowIntensity)
			}
			fmt.Printf("%s %s to %s%s%s\n",
				faint.Sprint(c.ID.String()[:8]),
				c.StartDate, end, length, flow)
		}

		return nil
	},
}

var cycleCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the current cycle with predictions",
	RunE: func(cmd *cobra.Command, args []string) error {
		today := models.Today()

		current, err := queries.CurrentCycle(currentUser.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				fmt.Println("No cycles recorded.")
				return nil
			}
			return err
		}

		cycles, err := queries.ListCycles(currentUser.ID)
		if err != nil {
			return fmt.Errorf("failed to list cycles: %w", err)
		}

		day := derive.CycleDay(current, today)
		stats := derive.Stats(cycles, today)

		fmt.Printf("Cycle started %s\n", current.StartDate)
		fmt.Printf("  Day %s, %s phase\n",
			color.New(color.Bold).Sprint(strconv.Itoa(day)),
			derive.CyclePhase(day))
		fmt.Printf("  Average length: %d days\n", stats.AverageLength)
		fmt.Printf("  Predicted next start: %s\n", stats.PredictedNextStart)
		fmt.Printf("  Regularity: %.0f%%\n", stats.RegularityScore*100)

		return nil
	},
}

func init() {
	cycleStartCmd.Flags().IntVar(&cycleFlow, "flow", 0, "flow intensity 1-5")
	cycleEndCmd.Flags().StringVar(&cycleOvulation, "ovulation", "", "ovulation date (YYYY-MM-DD)")
	cycleCmd.AddCommand(cycleStartCmd)
	cycleCmd.AddCommand(cycleEndCmd)
	cycleCmd.AddCommand(cycleListCmd)
	cycleCmd.AddCommand(cycleCurrentCmd)
	rootCmd.AddCommand(cycleCmd)
}
