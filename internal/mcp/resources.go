// ABOUTME: MCP resource implementations for bloom health records.
// ABOUTME: Provides bloom://dashboard, bloom://cycle/current, and bloom://recent.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/bloom/internal/derive"
	"github.com/harperreed/bloom/internal/models"
	"github.com/harperreed/bloom/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// bloom://dashboard - Today's summary with weekly progress
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "bloom://dashboard",
		Name:        "Daily Dashboard",
		Description: "Cycle day and phase, today's wellness, and weekly progress",
		MIMEType:    "application/json",
	}, s.handleDashboardResource)

	// bloom://cycle/current - The current cycle with derived fields
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "bloom://cycle/current",
		Name:        "Current Cycle",
		Description: "The in-progress menstrual cycle with day, phase, and predictions",
		MIMEType:    "application/json",
	}, s.handleCurrentCycleResource)

	// bloom://recent - Recent entries across all record types
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "bloom://recent",
		Name:        "Recent Health Entries",
		Description: "Recent symptoms, moods, wellness entries, and insights",
		MIMEType:    "application/json",
	}, s.handleRecentResource)
}

func resourceResult(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// Resource handlers

func (s *Server) handleDashboardResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := models.Today()
	stats, err := s.queries.Dashboard(s.userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	result := map[string]interface{}{
		"date":      today,
		"dashboard": stats,
	}
	return resourceResult("bloom://dashboard", result)
}

func (s *Server) handleCurrentCycleResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := models.Today()

	current, err := s.queries.CurrentCycle(s.userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return resourceResult("bloom://cycle/current", map[string]interface{}{
				"message": "No cycles recorded.",
			})
		}
		return nil, fmt.Errorf("failed to load current cycle: %w", err)
	}

	cycles, err := s.queries.ListCycles(s.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cycles: %w", err)
	}

	day := derive.CycleDay(current, today)
	stats := derive.Stats(cycles, today)

	result := map[string]interface{}{
		"cycle":                current,
		"cycle_day":            day,
		"cycle_phase":          derive.CyclePhase(day),
		"average_length":       stats.AverageLength,
		"predicted_next_start": stats.PredictedNextStart,
		"regularity_score":     stats.RegularityScore,
	}
	return resourceResult("bloom://cycle/current", result)
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	symptoms, err := s.queries.ListSymptoms(s.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list symptoms: %w", err)
	}
	moods, err := s.queries.ListMoods(s.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list moods: %w", err)
	}
	wellness, err := s.queries.ListWellness(s.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wellness entries: %w", err)
	}
	insights, err := s.queries.ListInsights(s.userID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list insights: %w", err)
	}

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"symptoms":     capList(symptoms, 10),
		"moods":        capList(moods, 10),
		"wellness":     capList(wellness, 10),
		"insights":     capList(insights, 5),
	}
	return resourceResult("bloom://recent", result)
}

func capList[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
