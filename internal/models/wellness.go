// ABOUTME: WellnessEntry model for daily activity, hydration, and sleep.
// ABOUTME: All measurements are optional; absent is never coerced to zero.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Sleep quality bounds (1 = poor, 5 = excellent).
const (
	SleepQualityMin = 1
	SleepQualityMax = 5
)

// WellnessEntry records daily wellness measurements. A single date may
// carry multiple entries; aggregation folds over all of them.
type WellnessEntry struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Date              Date
	Steps             *int
	WaterIntakeLiters *float64
	SleepHours        *float64
	SleepQuality      *int
	ExerciseMinutes   *int
	CreatedAt         time.Time
}

// NewWellnessEntry creates an empty wellness entry for the given date.
func NewWellnessEntry(userID uuid.UUID, date Date) *WellnessEntry {
	return &WellnessEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		CreatedAt: time.Now(),
	}
}

// WithSteps sets the step count.
func (w *WellnessEntry) WithSteps(steps int) *WellnessEntry {
	w.Steps = &steps
	return w
}

// WithWaterIntake sets water intake in liters.
func (w *WellnessEntry) WithWaterIntake(liters float64) *WellnessEntry {
	w.WaterIntakeLiters = &liters
	return w
}

// WithSleep sets sleep duration and quality.
func (w *WellnessEntry) WithSleep(hours float64, quality int) *WellnessEntry {
	w.SleepHours = &hours
	w.SleepQuality = &quality
	return w
}

// WithSleepHours sets sleep duration only.
func (w *WellnessEntry) WithSleepHours(hours float64) *WellnessEntry {
	w.SleepHours = &hours
	return w
}

// WithExerciseMinutes sets exercise duration.
func (w *WellnessEntry) WithExerciseMinutes(minutes int) *WellnessEntry {
	w.ExerciseMinutes = &minutes
	return w
}

// WellnessPatch describes a partial update to a WellnessEntry.
type WellnessPatch struct {
	Date              *Date
	Steps             *int
	WaterIntakeLiters *float64
	SleepHours        *float64
	SleepQuality      *int
	ExerciseMinutes   *int
}
