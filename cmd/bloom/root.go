// ABOUTME: Root Cobra command for bloom CLI.
// ABOUTME: Handles store lifecycle and user setup via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/bloom/internal/config"
	"github.com/harperreed/bloom/internal/insight"
	"github.com/harperreed/bloom/internal/models"
	"github.com/harperreed/bloom/internal/query"
	"github.com/harperreed/bloom/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfg         *config.Config
	db          store.Store
	queries     *query.Queries
	currentUser *models.User
	builder     *insight.Builder
	logger      *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bloom",
	Short: "Personal cycle and wellness tracker",
	Long: `Bloom is a CLI tool for tracking menstrual cycles, symptoms, moods,
nutrition, daily wellness, and pregnancy progress.

WHAT IT TRACKS:

  Cycles       period start/end, flow intensity, ovulation, predictions
  Symptoms     cramps, headaches, fatigue, ... with severity 1-5
  Moods        mood labels with energy level 1-10
  Nutrition    meals and snacks with optional calories
  Wellness     steps, water, sleep, exercise per day
  Pregnancy    milestones by gestational week, appointments, due date

QUICK START:

  $ bloom cycle start                     # Period started today
  $ bloom symptom cramps 3                # Log a symptom
  $ bloom mood calm 7 --notes "Slept in"  # Log mood with notes
  $ bloom wellness --steps 8000 --water 2 # Log today's wellness
  $ bloom dashboard                       # Today at a glance

INSIGHTS:

  $ bloom insights generate   # Generate personalized insights
  $ bloom insights list       # Show stored insights
  $ bloom ask "why am I tired this week?"

  Set GEMINI_API_KEY to enable personalized generation. Without it,
  bloom falls back to general guidance.

REMINDERS:

  $ bloom reminder add medication "Prenatal vitamin" 08:00
  $ bloom reminder serve      # Run the reminder scheduler

MCP INTEGRATION:

  Run 'bloom mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  Records are stored in a local Badger database at
  ~/.local/share/bloom (override with BLOOM_DATA_DIR).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger = cfg.NewLogger()

		db, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}

		currentUser, err = store.EnsureDefaultUser(db)
		if err != nil {
			return fmt.Errorf("failed to set up user: %w", err)
		}

		queries = query.New(db)
		builder = insight.NewBuilder(db, queries, newGenerator(cfg), logger)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

// newGenerator picks the insight backend. Without an API key every call
// fails fast and the builder serves its fallback content.
func newGenerator(cfg *config.Config) insight.Generator {
	if cfg.GeminiAPIKey == "" {
		return insight.Unavailable{}
	}
	return insight.NewGemini(cfg.GeminiAPIKey, cfg.GetGeminiTimeout())
}
