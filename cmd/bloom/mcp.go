// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/bloom/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "bloom": {
        "command": "bloom",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_symptom        Record a symptom with severity
  log_mood           Record a mood with energy level
  log_wellness       Record daily wellness data
  log_nutrition      Record a meal or snack
  start_cycle        Start a menstrual cycle record
  end_cycle          Close the current cycle
  add_reminder       Create a daily reminder
  generate_insights  Generate and store insights
  ask_question       Answer a health question

AVAILABLE RESOURCES:

  bloom://dashboard       Today's summary with weekly progress
  bloom://cycle/current   Current cycle with derived fields
  bloom://recent          Recent entries across record types`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(db, currentUser.ID, builder)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
