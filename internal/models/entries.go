// ABOUTME: Daily journal entry models: symptoms, moods, nutrition.
// ABOUTME: All are append-mostly histories keyed by calendar date.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Severity bounds for symptoms (1 = mild, 5 = severe).
const (
	SeverityMin = 1
	SeverityMax = 5
)

// Energy level bounds for moods (1 = exhausted, 10 = energized).
const (
	EnergyMin = 1
	EnergyMax = 10
)

// SymptomEntry records a symptom observed on a date. CycleID is a
// non-owning back-reference to the cycle it occurred in; it may dangle
// if the cycle is later removed and readers must tolerate that.
type SymptomEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CycleID   *uuid.UUID
	Date      Date
	Type      string
	Severity  int
	Notes     *string
	CreatedAt time.Time
}

// NewSymptomEntry creates a symptom entry for the given date.
func NewSymptomEntry(userID uuid.UUID, date Date, symptomType string, severity int) *SymptomEntry {
	return &SymptomEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		Type:      symptomType,
		Severity:  severity,
		CreatedAt: time.Now(),
	}
}

// WithCycle links the symptom to a cycle.
func (s *SymptomEntry) WithCycle(cycleID uuid.UUID) *SymptomEntry {
	s.CycleID = &cycleID
	return s
}

// WithNotes sets notes on the symptom.
func (s *SymptomEntry) WithNotes(notes string) *SymptomEntry {
	s.Notes = &notes
	return s
}

// SymptomPatch describes a partial update to a SymptomEntry.
type SymptomPatch struct {
	Date     *Date
	Type     *string
	Severity *int
	Notes    *string
}

// MoodEntry records mood and energy for a date.
type MoodEntry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        Date
	Mood        string
	EnergyLevel int
	Notes       *string
	CreatedAt   time.Time
}

// NewMoodEntry creates a mood entry for the given date.
func NewMoodEntry(userID uuid.UUID, date Date, mood string, energyLevel int) *MoodEntry {
	return &MoodEntry{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Mood:        mood,
		EnergyLevel: energyLevel,
		CreatedAt:   time.Now(),
	}
}

// WithNotes sets notes on the mood entry.
func (m *MoodEntry) WithNotes(notes string) *MoodEntry {
	m.Notes = &notes
	return m
}

// MoodPatch describes a partial update to a MoodEntry.
type MoodPatch struct {
	Date        *Date
	Mood        *string
	EnergyLevel *int
	Notes       *string
}

// NutritionEntry records a meal on a date. Calories absent means
// "not counted", which is distinct from zero calories.
type NutritionEntry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        Date
	MealType    string
	Description string
	Calories    *int
	CreatedAt   time.Time
}

// NewNutritionEntry creates a nutrition entry for the given date.
func NewNutritionEntry(userID uuid.UUID, date Date, mealType, description string) *NutritionEntry {
	return &NutritionEntry{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		MealType:    mealType,
		Description: description,
		CreatedAt:   time.Now(),
	}
}

// WithCalories sets the calorie count.
func (n *NutritionEntry) WithCalories(calories int) *NutritionEntry {
	n.Calories = &calories
	return n
}

// NutritionPatch describes a partial update to a NutritionEntry.
type NutritionPatch struct {
	Date        *Date
	MealType    *string
	Description *string
	Calories    *int
}
