// ABOUTME: CLI command for exporting health records.
// ABOUTME: Writes a full JSON snapshot to stdout or a file.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/bloom/internal/store"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all health records as JSON",
	Long: `Export all records for the current user as a JSON snapshot,
suitable for backup.

Examples:
  bloom export                  # Write JSON to stdout
  bloom export -o backup.json   # Save to file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := store.ExportJSON(db, currentUser.ID)
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(data))
			return nil
		}

		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
