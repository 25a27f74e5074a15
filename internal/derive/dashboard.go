// ABOUTME: Dashboard snapshot assembled from query-layer results.
// ABOUTME: Pure computation; callers supply the already-selected records.
package derive

import "github.com/harperreed/bloom/internal/models"

// WeeklyProgress holds rolling 7-day wellness aggregates.
type WeeklyProgress struct {
	WaterLiters  float64 `json:"water_liters"`
	ExerciseDays int     `json:"exercise_days"`
	SleepHours   float64 `json:"sleep_hours"`
}

// DashboardStats is the at-a-glance summary shown on the dashboard.
type DashboardStats struct {
	CycleDay   int            `json:"cycle_day"`
	CyclePhase Phase          `json:"cycle_phase"`
	Steps      int            `json:"steps"`
	SleepHours float64        `json:"sleep_hours"`
	Mood       string         `json:"mood"`
	Symptoms   []string       `json:"symptoms"`
	Weekly     WeeklyProgress `json:"weekly_progress"`
}

// Dashboard computes the daily summary. currentCycle may be nil (no
// history yet), in which case cycle day and phase report zero values.
func Dashboard(
	currentCycle *models.CycleRecord,
	todayWellness []*models.WellnessEntry,
	todaySymptoms []*models.SymptomEntry,
	todayMoods []*models.MoodEntry,
	weekWellness []*models.WellnessEntry,
	asOf models.Date,
) DashboardStats {
	stats := DashboardStats{Mood: "neutral"}

	if currentCycle != nil {
		stats.CycleDay = CycleDay(currentCycle, asOf)
		stats.CyclePhase = CyclePhase(stats.CycleDay)
	}

	// Today's totals sum across all of the day's entries, not just the
	// first one.
	stats.Steps = int(WeeklyAggregate(todayWellness, Steps, Sum))
	stats.SleepHours = WeeklyAggregate(todayWellness, SleepHours, Sum)

	if len(todayMoods) > 0 {
		stats.Mood = todayMoods[0].Mood
	}
	for _, s := range todaySymptoms {
		stats.Symptoms = append(stats.Symptoms, s.Type)
	}

	stats.Weekly = WeeklyProgress{
		WaterLiters:  WeeklyAggregate(weekWellness, WaterLiters, Sum),
		ExerciseDays: int(WeeklyAggregate(weekWellness, ExerciseMinutes, CountPositive)),
		SleepHours:   WeeklyAggregate(weekWellness, SleepHours, Sum),
	}

	return stats
}
