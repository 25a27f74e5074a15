// ABOUTME: CLI commands for generating, listing, and asking about insights.
// ABOUTME: Falls back to general guidance when no generator is configured.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var insightType string

var insightsCmd = &cobra.Command{
	Use:     "insights",
	Aliases: []string{"i"},
	Short:   "Personalized health insights",
}

var insightsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and store new insights",
	RunE: func(cmd *cobra.Command, args []string) error {
		insights, err := builder.GenerateAndStore(cmd.Context(), currentUser.ID)
		if err != nil {
			return fmt.Errorf("failed to generate insights: %w", err)
		}

		color.Green("✓ Generated %d insights", len(insights))
		for _, ins := range insights {
			fmt.Printf("\n%s %s\n  %s\n",
				color.New(color.Faint).Sprint(ins.ID.String()[:8]),
				color.New(color.Bold).Sprint(ins.Type),
				wrap(ins.Content, 72, "  "))
		}

		return nil
	},
}

var insightsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored insights",
	Long: `List stored insights, newest first.

Use --type to filter:
  cycle_prediction, symptom_analysis, health_tip, wellness_tip`,
	RunE: func(cmd *cobra.Command, args []string) error {
		insights, err := queries.ListInsights(currentUser.ID, insightType)
		if err != nil {
			return fmt.Errorf("failed to list insights: %w", err)
		}
		if len(insights) == 0 {
			fmt.Println("No insights stored. Run 'bloom insights generate'.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, ins := range insights {
			fmt.Printf("%s %s %s\n  %s\n",
				faint.Sprint(ins.ID.String()[:8]),
				faint.Sprint(ins.CreatedAt.Format("2006-01-02")),
				color.New(color.Bold).Sprint(ins.Type),
				wrap(ins.Content, 72, "  "))
		}
		return nil
	},
}

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a health question",
	Long: `Ask a free-text question answered against your recent data.

Examples:
  bloom ask "why am I tired this week?"
  bloom ask when is my next period due`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")
		answer, err := builder.Ask(cmd.Context(), currentUser.ID, question)
		if err != nil {
			return fmt.Errorf("failed to answer question: %w", err)
		}

		fmt.Println(wrap(answer, 72, ""))
		return nil
	},
}

// wrap folds text at width, prefixing continuation lines.
func wrap(s string, width int, indent string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}

	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if i > 0 {
			if lineLen+1+len(w) > width {
				b.WriteString("\n" + indent)
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}

func init() {
	insightsListCmd.Flags().StringVarP(&insightType, "type", "t", "", "filter by insight type")
	insightsCmd.AddCommand(insightsGenerateCmd)
	insightsCmd.AddCommand(insightsListCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(askCmd)
}
