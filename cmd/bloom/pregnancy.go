// ABOUTME: CLI commands for pregnancy tracking.
// ABOUTME: Milestones by gestational week, appointments, and status.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/bloom/internal/derive"
	"github.com/harperreed/bloom/internal/models"
	"github.com/spf13/cobra"
)

var (
	milestoneWeight float64
	milestoneNotes  string
	apptLocation    string
)

var pregnancyCmd = &cobra.Command{
	Use:     "pregnancy",
	Aliases: []string{"p"},
	Short:   "Track pregnancy progress",
}

var pregnancyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show pregnancy week, trimester, and progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !currentUser.IsPregnant || currentUser.PregnancyDueDate == nil {
			fmt.Println("No pregnancy recorded. Set one with:")
			fmt.Println("  bloom profile set --pregnant --due-date YYYY-MM-DD")
			return nil
		}

		today := models.Today()
		week := derive.PregnancyWeek(*currentUser.PregnancyDueDate, today)
		trimester := derive.Trimester(week)
		progress := derive.PregnancyProgress(week)

		fmt.Printf("Week %s of %d\n",
			color.New(color.Bold).Sprint(strconv.Itoa(week)),
			derive.GestationWeeks)
		fmt.Printf("  Trimester %d\n", trimester)
		fmt.Printf("  Progress: %.0f%%\n", progress)
		fmt.Printf("  Due date: %s\n", *currentUser.PregnancyDueDate)

		return nil
	},
}

var milestoneCmd = &cobra.Command{
	Use:   "milestone",
	Short: "Manage pregnancy milestones",
}

var milestoneAddCmd = &cobra.Command{
	Use:   "add <week>",
	Short: "Record a milestone for a gestational week",
	Long: `Record a pregnancy milestone.

Examples:
  bloom pregnancy milestone add 20 --weight 64.5
  bloom pregnancy milestone add 12 --notes "First ultrasound"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		week, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid week: %s", args[0])
		}

		m := models.NewPregnancyMilestone(currentUser.ID, week)
		if milestoneWeight > 0 {
			m.WithWeight(milestoneWeight)
		}
		if milestoneNotes != "" {
			m.WithNotes(milestoneNotes)
		}

		if err := db.CreateMilestone(m); err != nil {
			return fmt.Errorf("failed to add milestone: %w", err)
		}

		color.Green("✓ Added milestone for week %d", week)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(m.ID.String()[:8]))

		return nil
	},
}

var milestoneListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List pregnancy milestones",
	RunE: func(cmd *cobra.Command, args []string) error {
		milestones, err := queries.ListMilestones(currentUser.ID)
		if err != nil {
			return fmt.Errorf("failed to list milestones: %w", err)
		}
		if len(milestones) == 0 {
			fmt.Println("No milestones recorded.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range milestones {
			line := fmt.Sprintf("%s week %d", faint.Sprint(m.ID.String()[:8]), m.Week)
			if m.Weight != nil {
				line += fmt.Sprintf("  %.1fkg", *m.Weight)
			}
			if m.Notes != nil && *m.Notes != "" {
				line += faint.Sprintf("  (%s)", truncate(*m.Notes, 40))
			}
			fmt.Println(line)
			for _, a := range m.Appointments {
				loc := ""
				if a.Location != "" {
					loc = " at " + a.Location
				}
				fmt.Printf("         %s %s%s\n", a.Date, a.Title, loc)
			}
		}
		return nil
	},
}

var appointmentCmd = &cobra.Command{
	Use:   "appointment <week> <title> <date>",
	Short: "Add an appointment to a milestone",
	Long: `Attach an appointment to the milestone for the given week. The
milestone is created if it does not exist yet.

Examples:
  bloom pregnancy appointment 24 "Glucose screening" 2025-06-10
  bloom pregnancy appointment 20 "Anatomy scan" 2025-05-02 --location "City Hospital"`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		week, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid week: %s", args[0])
		}
		date, err := models.ParseDate(args[2])
		if err != nil {
			return err
		}

		appt := models.Appointment{Title: args[1], Date: date, Location: apptLocation}

		milestones, err := queries.ListMilestones(currentUser.ID)
		if err != nil {
			return fmt.Errorf("failed to list milestones: %w", err)
		}

		for _, m := range milestones {
			if m.Week != week {
				continue
			}
			appts := append(append([]models.Appointment{}, m.Appointments...), appt)
			patch := models.MilestonePatch{Appointments: appts}
			if _, err := db.UpdateMilestone(m.ID, patch); err != nil {
				return fmt.Errorf("failed to add appointment: %w", err)
			}
			color.Green("✓ Added appointment to week %d", week)
			return nil
		}

		m := models.NewPregnancyMilestone(currentUser.ID, week).WithAppointment(appt)
		if err := db.CreateMilestone(m); err != nil {
			return fmt.Errorf("failed to add appointment: %w", err)
		}

		color.Green("✓ Added appointment to week %d", week)
		return nil
	},
}

func init() {
	milestoneAddCmd.Flags().Float64Var(&milestoneWeight, "weight", 0, "weight in kilograms")
	milestoneAddCmd.Flags().StringVar(&milestoneNotes, "notes", "", "milestone notes")
	appointmentCmd.Flags().StringVar(&apptLocation, "location", "", "appointment location")
	milestoneCmd.AddCommand(milestoneAddCmd)
	milestoneCmd.AddCommand(milestoneListCmd)
	pregnancyCmd.AddCommand(pregnancyStatusCmd)
	pregnancyCmd.AddCommand(milestoneCmd)
	pregnancyCmd.AddCommand(appointmentCmd)
	rootCmd.AddCommand(pregnancyCmd)
}
