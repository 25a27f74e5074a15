// ABOUTME: CLI commands for daily reminders.
// ABOUTME: Add, list, toggle, delete, and run the reminder scheduler.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/harperreed/bloom/internal/models"
	"github.com/harperreed/bloom/internal/remind"
	"github.com/spf13/cobra"
)

var reminderCmd = &cobra.Command{
	Use:     "reminder",
	Aliases: []string{"r"},
	Short:   "Manage daily reminders",
}

var reminderAddCmd = &cobra.Command{
	Use:   "add <type> <title> <time>",
	Short: "Add a daily reminder",
	Long: `Add a daily reminder. Time is 24-hour HH:MM.

Examples:
  bloom reminder add medication "Prenatal vitamin" 08:00
  bloom reminder add hydration "Drink water" 14:30
  bloom reminder add exercise "Evening walk" 18:00`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := models.NewReminder(currentUser.ID, args[0], args[1], args[2])
		if err := db.CreateReminder(r); err != nil {
			return fmt.Errorf("failed to add reminder: %w", err)
		}

		color.Green("✓ Added reminder")
		fmt.Printf("  %s %s %q at %s\n",
			color.New(color.Faint).Sprint(r.ID.String()[:8]),
			r.Type, r.Title, r.Time)

		return nil
	},
}

var reminderListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		reminders, err := queries.ListReminders(currentUser.ID)
		if err != nil {
			return fmt.Errorf("failed to list reminders: %w", err)
		}
		if len(reminders) == 0 {
			fmt.Println("No reminders set.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range reminders {
			state := "on"
			if !r.IsActive {
				state = faint.Sprint("off")
			}
			fmt.Printf("%s %s %s %s [%s]\n",
				faint.Sprint(r.ID.String()[:8]),
				r.Time, padRight(r.Type, 10), r.Title, state)
		}
		return nil
	},
}

// findReminder resolves an ID prefix against the user's reminders.
func findReminder(prefix string) (*models.Reminder, error) {
	reminders, err := queries.ListReminders(currentUser.ID)
	if err != nil {
		return nil, err
	}
	var match *models.Reminder
	for _, r := range reminders {
		if strings.HasPrefix(r.ID.String(), prefix) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous reminder ID: %s", prefix)
			}
			match = r
		}
	}
	if match == nil {
		return nil, fmt.Errorf("reminder not found: %s", prefix)
	}
	return match, nil
}

var reminderToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Toggle a reminder on or off",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := findReminder(args[0])
		if err != nil {
			return err
		}

		active := !r.IsActive
		updated, err := db.UpdateReminder(r.ID, models.ReminderPatch{IsActive: &active})
		if err != nil {
			return fmt.Errorf("failed to toggle reminder: %w", err)
		}

		state := "off"
		if updated.IsActive {
			state = "on"
		}
		color.Green("✓ Reminder %q is now %s", updated.Title, state)
		return nil
	},
}

var reminderDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a reminder",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := findReminder(args[0])
		if err != nil {
			return err
		}

		deleted, err := db.DeleteReminder(r.ID)
		if err != nil {
			return fmt.Errorf("failed to delete reminder: %w", err)
		}
		if !deleted {
			return fmt.Errorf("reminder not found: %s", args[0])
		}

		color.Green("✓ Deleted reminder %q", r.Title)
		return nil
	},
}

var reminderServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the reminder scheduler",
	Long: `Run the reminder scheduler in the foreground. Active reminders
print to the terminal at their scheduled time. Stop with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		notify := func(r *models.Reminder) {
			color.Yellow("⏰ %s: %s", r.Type, r.Title)
		}
		sched := remind.NewScheduler(queries, currentUser.ID, notify, logger)
		if err := sched.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		fmt.Println("Reminder scheduler running. Press Ctrl-C to stop.")
		<-ctx.Done()
		sched.Stop()
		return nil
	},
}

func init() {
	reminderCmd.AddCommand(reminderAddCmd)
	reminderCmd.AddCommand(reminderListCmd)
	reminderCmd.AddCommand(reminderToggleCmd)
	reminderCmd.AddCommand(reminderDeleteCmd)
	reminderCmd.AddCommand(reminderServeCmd)
	rootCmd.AddCommand(reminderCmd)
}
