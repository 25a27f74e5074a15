// ABOUTME: Generic fold over wellness entries for rolling aggregates.
// ABOUTME: Absent measurements read as zero here, at aggregation time only.
package derive

import "github.com/harperreed/bloom/internal/models"

// Selector extracts a numeric measurement from a wellness entry.
// Selectors in this package map absent optional fields to 0; that is an
// aggregation-time default and does not change what the store records.
type Selector func(*models.WellnessEntry) float64

// Combiner folds one measurement into the running aggregate.
type Combiner func(acc, v float64) float64

// Sum adds each measurement to the aggregate.
func Sum(acc, v float64) float64 {
	return acc + v
}

// CountPositive counts entries whose measurement is greater than zero.
func CountPositive(acc, v float64) float64 {
	if v > 0 {
		return acc + 1
	}
	return acc
}

// WeeklyAggregate folds a window of wellness entries (typically the last
// 7 days, but any caller-selected window works) into a single number.
// An empty window yields 0, never an error.
func WeeklyAggregate(entries []*models.WellnessEntry, sel Selector, combine Combiner) float64 {
	var acc float64
	for _, e := range entries {
		acc = combine(acc, sel(e))
	}
	return acc
}

// Steps selects the step count, 0 when not recorded.
func Steps(w *models.WellnessEntry) float64 {
	if w.Steps == nil {
		return 0
	}
	return float64(*w.Steps)
}

// WaterLiters selects water intake in liters, 0 when not recorded.
func WaterLiters(w *models.WellnessEntry) float64 {
	if w.WaterIntakeLiters == nil {
		return 0
	}
	return *w.WaterIntakeLiters
}

// SleepHours selects sleep duration in hours, 0 when not recorded.
func SleepHours(w *models.WellnessEntry) float64 {
	if w.SleepHours == nil {
		return 0
	}
	return *w.SleepHours
}

// ExerciseMinutes selects exercise duration, 0 when not recorded.
func ExerciseMinutes(w *models.WellnessEntry) float64 {
	if w.ExerciseMinutes == nil {
		return 0
	}
	return float64(*w.ExerciseMinutes)
}
