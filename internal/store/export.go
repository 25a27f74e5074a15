// ABOUTME: JSON export of a user's full record history.
// ABOUTME: One flat collection per entity kind, foreign keys as identifiers.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/bloom/internal/models"
)

// ExportData is the full export format for one user's records.
type ExportData struct {
	Version    string                       `json:"version"`
	ExportedAt time.Time                    `json:"exported_at"`
	Tool       string                       `json:"tool"`
	User       *models.User                 `json:"user"`
	Cycles     []*models.CycleRecord        `json:"cycles"`
	Symptoms   []*models.SymptomEntry       `json:"symptoms"`
	Moods      []*models.MoodEntry          `json:"moods"`
	Nutrition  []*models.NutritionEntry     `json:"nutrition"`
	Wellness   []*models.WellnessEntry      `json:"wellness"`
	Milestones []*models.PregnancyMilestone `json:"milestones"`
	Insights   []*models.Insight            `json:"insights"`
	Reminders  []*models.Reminder           `json:"reminders"`
}

// Export collects all records owned by userID.
func Export(s Store, userID uuid.UUID) (*ExportData, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, fmt.Errorf("export user: %w", err)
	}

	data := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "bloom",
		User:       user,
	}

	if data.Cycles, err = s.CyclesByUser(userID); err != nil {
		return nil, fmt.Errorf("export cycles: %w", err)
	}
	if data.Symptoms, err = s.SymptomsByUser(userID); err != nil {
		return nil, fmt.Errorf("export symptoms: %w", err)
	}
	if data.Moods, err = s.MoodsByUser(userID); err != nil {
		return nil, fmt.Errorf("export moods: %w", err)
	}
	if data.Nutrition, err = s.NutritionByUser(userID); err != nil {
		return nil, fmt.Errorf("export nutrition: %w", err)
	}
	if data.Wellness, err = s.WellnessByUser(userID); err != nil {
		return nil, fmt.Errorf("export wellness: %w", err)
	}
	if data.Milestones, err = s.MilestonesByUser(userID); err != nil {
		return nil, fmt.Errorf("export milestones: %w", err)
	}
	if data.Insights, err = s.InsightsByUser(userID); err != nil {
		return nil, fmt.Errorf("export insights: %w", err)
	}
	if data.Reminders, err = s.RemindersByUser(userID); err != nil {
		return nil, fmt.Errorf("export reminders: %w", err)
	}

	return data, nil
}

// ExportJSON exports all of a user's records as indented JSON.
func ExportJSON(s Store, userID uuid.UUID) ([]byte, error) {
	data, err := Export(s, userID)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}
